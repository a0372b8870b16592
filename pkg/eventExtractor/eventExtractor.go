// Package eventExtractor walks ABI item arrays and forges event metadata:
// canonical signatures, topic0 hashes, and ordered parameter layouts.
package eventExtractor

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/topicfoundry/topicfoundry/pkg/abiFetcher"
	"github.com/topicfoundry/topicfoundry/pkg/contracts"
	"github.com/topicfoundry/topicfoundry/pkg/types"
	"github.com/topicfoundry/topicfoundry/pkg/util"
	"go.uber.org/zap"
)

// abiInput mirrors one entry of an ABI item's "inputs" array.
type abiInput struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Indexed    bool       `json:"indexed"`
	Components []abiInput `json:"components"`
}

// abiItem mirrors one entry of an ABI array. Only events are of interest;
// functions, constructors and errors are skipped.
type abiItem struct {
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Anonymous bool       `json:"anonymous"`
	Inputs    []abiInput `json:"inputs"`
}

type EventExtractor struct {
	logger *zap.Logger
}

func NewEventExtractor(logger *zap.Logger) *EventExtractor {
	return &EventExtractor{
		logger: logger,
	}
}

// ExtractContract loads one ABI file and forges the events it declares.
func (ee *EventExtractor) ExtractContract(path string) (*contracts.Contract, error) {
	rawAbi, err := abiFetcher.LoadAbi(path)
	if err != nil {
		return nil, err
	}

	contractName := abiFetcher.ContractName(path)
	events, err := ee.ExtractEvents(filepath.Base(path), contractName, rawAbi)
	if err != nil {
		return nil, err
	}

	contract := &contracts.Contract{
		Name:   contractName,
		File:   filepath.Base(path),
		RawAbi: rawAbi,
		Events: events,
	}
	ee.verifyTopics(contract)
	return contract, nil
}

// ExtractEvents walks the raw ABI array in declaration order and builds an
// event model for every type=="event" item.
func (ee *EventExtractor) ExtractEvents(file string, contractName string, rawAbi json.RawMessage) ([]*types.Event, error) {
	var items []abiItem
	if err := json.Unmarshal(rawAbi, &items); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ABI items for %s", file)
	}

	events := make([]*types.Event, 0)
	for _, item := range items {
		if item.Type != "event" {
			continue
		}

		signature := EventSignature(item.Name, item.Inputs)
		event := &types.Event{
			File:      file,
			Contract:  contractName,
			Name:      item.Name,
			Anonymous: item.Anonymous,
			Signature: signature,
			Topic0:    util.Topic0(signature),
			Inputs: util.Map(item.Inputs, func(in abiInput, i int) *types.EventParam {
				name := in.Name
				if name == "" {
					name = fmt.Sprintf("arg%d", i)
				}
				return &types.EventParam{
					Name:     name,
					Type:     CanonicalType(in),
					Indexed:  in.Indexed,
					Position: i,
				}
			}),
		}
		events = append(events, event)

		ee.logger.Sugar().Debugw("Extracted event",
			zap.String("file", file),
			zap.String("event", event.Name),
			zap.String("topic0", event.Topic0),
		)
	}
	return events, nil
}

// verifyTopics cross-checks computed topic0 hashes against go-ethereum's own
// event IDs when the ABI parses cleanly. A mismatch would mean the signature
// canonicalization drifted from the ABI encoding rules.
func (ee *EventExtractor) verifyTopics(contract *contracts.Contract) {
	parsed, err := contract.GetAbi()
	if err != nil {
		ee.logger.Sugar().Debugw("Skipping topic verification, ABI did not parse",
			zap.String("contract", contract.Name),
			zap.Error(err),
		)
		return
	}
	for _, event := range contract.Events {
		if event.Anonymous {
			continue
		}
		if _, err := parsed.EventByID(common.HexToHash(event.Topic0)); err != nil {
			ee.logger.Sugar().Warnw("Computed topic0 not found in parsed ABI",
				zap.String("contract", contract.Name),
				zap.String("event", event.Name),
				zap.String("signature", event.Signature),
				zap.String("topic0", event.Topic0),
			)
		}
	}
}

// EventSignature builds the canonical signature hashed into topic0:
// EventName(type1,type2,...).
func EventSignature(name string, inputs []abiInput) string {
	canonical := util.Map(inputs, func(in abiInput, _ int) string {
		return CanonicalType(in)
	})
	return fmt.Sprintf("%s(%s)", name, strings.Join(canonical, ","))
}

// CanonicalType resolves an ABI input to its canonical Solidity type:
// uint/int shorthands widen to 256 bits and tuples expand to a parenthesized
// component list, with any array suffix preserved.
func CanonicalType(in abiInput) string {
	base := in.Type
	suffix := ""
	if idx := strings.Index(in.Type, "["); idx >= 0 {
		base = in.Type[:idx]
		suffix = in.Type[idx:]
	}

	switch base {
	case "uint":
		base = "uint256"
	case "int":
		base = "int256"
	case "tuple":
		components := util.Map(in.Components, func(c abiInput, _ int) string {
			return CanonicalType(c)
		})
		base = fmt.Sprintf("(%s)", strings.Join(components, ","))
	}
	return base + suffix
}
