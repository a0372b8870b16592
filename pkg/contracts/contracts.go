package contracts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/topicfoundry/topicfoundry/pkg/types"
)

// Contract is one loaded ABI file with the events forged from it.
type Contract struct {
	// Name is the contract name, derived from the file's base name
	Name string
	// File is the base name of the source ABI file
	File string
	// RawAbi is the normalized ABI item array
	RawAbi json.RawMessage
	// Events are the extracted event models, in declaration order
	Events []*types.Event

	parsedAbi *abi.ABI
}

// GetAbi parses the raw ABI with go-ethereum, caching the result. Needed for
// log decoding; plain metadata generation never calls it.
func (c *Contract) GetAbi() (*abi.ABI, error) {
	if c.parsedAbi != nil {
		return c.parsedAbi, nil
	}
	parsed, err := abi.JSON(strings.NewReader(string(c.RawAbi)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI for contract %s: %w", c.Name, err)
	}
	c.parsedAbi = &parsed
	return c.parsedAbi, nil
}
