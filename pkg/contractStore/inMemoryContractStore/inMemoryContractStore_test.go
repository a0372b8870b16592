package inMemoryContractStore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topicfoundry/topicfoundry/pkg/contracts"
	"github.com/topicfoundry/topicfoundry/pkg/types"
	"go.uber.org/zap"
)

func contractWithEvents(name string, eventNames ...string) *contracts.Contract {
	events := make([]*types.Event, 0, len(eventNames))
	for _, en := range eventNames {
		events = append(events, &types.Event{Contract: name, Name: en})
	}
	return &contracts.Contract{
		Name:   name,
		File:   name + ".json",
		Events: events,
	}
}

func Test_InMemoryContractStore(t *testing.T) {
	t.Run("Should look up contracts case-insensitively", func(t *testing.T) {
		store := NewInMemoryContractStore(zap.NewNop())
		store.AddContract(contractWithEvents("MyToken", "Transfer"))

		assert.NotNil(t, store.GetContractByName("mytoken"))
		assert.NotNil(t, store.GetContractByName("MyToken"))
		assert.Nil(t, store.GetContractByName("other"))
	})

	t.Run("Should list contracts sorted by name", func(t *testing.T) {
		store := NewInMemoryContractStore(zap.NewNop())
		store.AddContract(contractWithEvents("zebra"))
		store.AddContract(contractWithEvents("alpha"))
		store.AddContract(contractWithEvents("mango"))

		listed := store.ListContracts()
		require.Len(t, listed, 3)
		assert.Equal(t, "alpha", listed[0].Name)
		assert.Equal(t, "mango", listed[1].Name)
		assert.Equal(t, "zebra", listed[2].Name)
	})

	t.Run("Should list contracts in the order they were added", func(t *testing.T) {
		store := NewInMemoryContractStore(zap.NewNop())
		store.AddContract(contractWithEvents("zebra"))
		store.AddContract(contractWithEvents("alpha"))
		store.AddContract(contractWithEvents("mango"))

		listed := store.ListContractsInLoadOrder()
		require.Len(t, listed, 3)
		assert.Equal(t, "zebra", listed[0].Name)
		assert.Equal(t, "alpha", listed[1].Name)
		assert.Equal(t, "mango", listed[2].Name)
	})

	t.Run("Should replace a contract added under the same name", func(t *testing.T) {
		store := NewInMemoryContractStore(zap.NewNop())
		store.AddContract(contractWithEvents("token", "Transfer"))
		store.AddContract(contractWithEvents("token", "Transfer", "Approval"))

		require.Len(t, store.ListContracts(), 1)
		assert.Len(t, store.GetContractByName("token").Events, 2)
	})

	t.Run("Should flatten events across contracts in contract order", func(t *testing.T) {
		store := NewInMemoryContractStore(zap.NewNop())
		store.AddContract(contractWithEvents("pool", "Swap", "Sync"))
		store.AddContract(contractWithEvents("erc20", "Transfer"))

		events := store.ListEvents()
		require.Len(t, events, 3)
		assert.Equal(t, "Transfer", events[0].Name)
		assert.Equal(t, "Swap", events[1].Name)
		assert.Equal(t, "Sync", events[2].Name)
	})
}
