package logDecoder

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/topicfoundry/topicfoundry/pkg/contractStore/inMemoryContractStore"
	"github.com/topicfoundry/topicfoundry/pkg/contracts"
	"github.com/topicfoundry/topicfoundry/pkg/util"
	"go.uber.org/zap"
)

// LogDecoder resolves raw logs against every contract in the store and
// decodes the matching event's arguments.
type LogDecoder struct {
	store  *inMemoryContractStore.InMemoryContractStore
	logger *zap.Logger
}

func NewLogDecoder(store *inMemoryContractStore.InMemoryContractStore, logger *zap.Logger) *LogDecoder {
	return &LogDecoder{
		store:  store,
		logger: logger,
	}
}

// Decode finds the event whose ID matches the log's topic0 and decodes both
// the indexed topics and the data section. Logs with no topics cannot be
// matched; anonymous events are out of reach by construction.
func (ld *LogDecoder) Decode(lg *RawLog) (*DecodedLog, error) {
	if len(lg.Topics) == 0 {
		return nil, errors.New("log has no topics, cannot resolve an event")
	}
	topicHash := common.HexToHash(lg.Topics[0])

	contract, event := ld.findEvent(topicHash)
	if event == nil {
		return nil, errors.Errorf("no loaded ABI declares an event with topic0 %s", topicHash.Hex())
	}

	ld.logger.Sugar().Debugw("Decoding log",
		zap.String("address", lg.Address),
		zap.String("contract", contract.Name),
		zap.String("event", event.Name),
	)

	decoded := &DecodedLog{
		Address:   common.HexToAddress(lg.Address).String(),
		LogIndex:  lg.LogIndex,
		Contract:  contract.Name,
		EventName: event.RawName,
		Arguments: make([]Argument, len(event.Inputs)),
	}

	for i, input := range event.Inputs {
		decoded.Arguments[i] = Argument{
			Name:    input.Name,
			Type:    input.Type.String(),
			Indexed: input.Indexed,
		}
	}

	if err := ld.decodeTopics(decoded, event, lg.Topics[1:]); err != nil {
		return nil, err
	}
	if err := ld.decodeData(decoded, contract, event, lg.Data); err != nil {
		return nil, err
	}
	return decoded, nil
}

// findEvent scans stored contracts for an event matching the topic hash.
func (ld *LogDecoder) findEvent(topicHash common.Hash) (*contracts.Contract, *abi.Event) {
	var matched *abi.Event
	contract := util.Find(ld.store.ListContracts(), func(c *contracts.Contract) bool {
		parsed, err := c.GetAbi()
		if err != nil {
			ld.logger.Sugar().Debugw("Skipping contract with unparseable ABI",
				zap.String("contract", c.Name),
				zap.Error(err),
			)
			return false
		}
		event, err := parsed.EventByID(topicHash)
		if err != nil {
			return false
		}
		matched = event
		return true
	})
	return contract, matched
}

// decodeTopics assigns topic values to the indexed arguments in order.
func (ld *LogDecoder) decodeTopics(decoded *DecodedLog, event *abi.Event, topics []string) error {
	topicIdx := 0
	for i, input := range event.Inputs {
		if !input.Indexed {
			continue
		}
		if topicIdx >= len(topics) {
			return errors.Errorf("event %s expects %d indexed topics, log has %d",
				event.RawName, countIndexed(event), len(topics))
		}
		value, err := parseTopicValue(input, topics[topicIdx])
		if err != nil {
			ld.logger.Sugar().Errorw("Failed to parse indexed topic value",
				zap.String("event", event.RawName),
				zap.String("param", input.Name),
				zap.Error(err),
			)
		} else {
			decoded.Arguments[i].Value = value
		}
		topicIdx++
	}
	return nil
}

// decodeData unpacks the non-indexed argument section into OutputData.
func (ld *LogDecoder) decodeData(decoded *DecodedLog, contract *contracts.Contract, event *abi.Event, data string) error {
	data = strings.TrimPrefix(data, "0x")
	if len(data) == 0 {
		return nil
	}

	byteData, err := hex.DecodeString(data)
	if err != nil {
		return errors.Wrap(err, "failed to decode log data hex")
	}

	parsed, err := contract.GetAbi()
	if err != nil {
		return err
	}

	outputData := make(map[string]interface{})
	if err := parsed.UnpackIntoMap(outputData, event.Name, byteData); err != nil {
		return errors.Wrapf(err, "failed to unpack data for event %s", event.RawName)
	}
	decoded.OutputData = outputData

	for i, input := range event.Inputs {
		if input.Indexed {
			continue
		}
		if value, ok := outputData[input.Name]; ok {
			decoded.Arguments[i].Value = value
		}
	}
	return nil
}

// parseTopicValue converts one 32-byte topic to a Go value based on the ABI
// argument type. Dynamic types (string, bytes) arrive as their keccak hash,
// so their hex is passed through untouched.
func parseTopicValue(argument abi.Argument, value string) (interface{}, error) {
	valueBytes, err := hexutil.Decode(value)
	if err != nil {
		return nil, err
	}
	switch argument.Type.T {
	case abi.IntTy, abi.UintTy:
		return abi.ReadInteger(argument.Type, valueBytes)
	case abi.BoolTy:
		return readBool(valueBytes)
	case abi.AddressTy:
		return common.HexToAddress(value), nil
	default:
		return value, nil
	}
}

var errBadBool = fmt.Errorf("abi: improperly encoded boolean value")

// readBool converts a 32-byte word to a boolean. Valid encodings have all
// bytes except the last set to zero, and the last set to 0 or 1.
func readBool(word []byte) (bool, error) {
	if len(word) != 32 {
		return false, errBadBool
	}
	for _, b := range word[:31] {
		if b != 0 {
			return false, errBadBool
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errBadBool
	}
}

func countIndexed(event *abi.Event) int {
	count := 0
	for _, input := range event.Inputs {
		if input.Indexed {
			count++
		}
	}
	return count
}
