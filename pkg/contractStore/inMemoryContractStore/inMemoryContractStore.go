package inMemoryContractStore

import (
	"sort"
	"strings"

	"github.com/topicfoundry/topicfoundry/pkg/contracts"
	"github.com/topicfoundry/topicfoundry/pkg/types"
	"go.uber.org/zap"
)

// InMemoryContractStore holds the contracts loaded for one invocation so each
// ABI file is read and parsed once, however many artifacts get generated.
type InMemoryContractStore struct {
	contracts map[string]*contracts.Contract
	order     []string
	logger    *zap.Logger
}

func NewInMemoryContractStore(logger *zap.Logger) *InMemoryContractStore {
	return &InMemoryContractStore{
		contracts: make(map[string]*contracts.Contract),
		logger:    logger,
	}
}

// AddContract registers a loaded contract. A contract with the same name
// replaces the previous one in place.
func (ics *InMemoryContractStore) AddContract(contract *contracts.Contract) {
	name := strings.ToLower(contract.Name)
	if _, ok := ics.contracts[name]; !ok {
		ics.order = append(ics.order, name)
	}
	ics.contracts[name] = contract
}

func (ics *InMemoryContractStore) GetContractByName(name string) *contracts.Contract {
	contract, ok := ics.contracts[strings.ToLower(name)]
	if !ok {
		ics.logger.Sugar().Debugw("Contract not found", zap.String("name", name))
		return nil
	}
	return contract
}

// ListContracts returns the stored contracts sorted by name.
func (ics *InMemoryContractStore) ListContracts() []*contracts.Contract {
	names := make([]string, len(ics.order))
	copy(names, ics.order)
	sort.Strings(names)

	out := make([]*contracts.Contract, 0, len(names))
	for _, name := range names {
		out = append(out, ics.contracts[name])
	}
	return out
}

// ListContractsInLoadOrder returns the stored contracts in the order they
// were added, which for CLI runs is the expanded (path-sorted) file order.
func (ics *InMemoryContractStore) ListContractsInLoadOrder() []*contracts.Contract {
	out := make([]*contracts.Contract, 0, len(ics.order))
	for _, name := range ics.order {
		out = append(out, ics.contracts[name])
	}
	return out
}

// ListEvents flattens all stored contracts' events, contracts sorted by name,
// events in ABI declaration order.
func (ics *InMemoryContractStore) ListEvents() []*types.Event {
	events := make([]*types.Event, 0)
	for _, contract := range ics.ListContracts() {
		events = append(events, contract.Events...)
	}
	return events
}
