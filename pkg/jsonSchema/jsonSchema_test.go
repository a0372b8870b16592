package jsonSchema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topicfoundry/topicfoundry/pkg/types"
)

func swapEvent() *types.Event {
	return &types.Event{
		File:      "pool.json",
		Contract:  "pool",
		Name:      "Swap",
		Signature: "Swap(address,uint256,bool,bytes32,uint256[])",
		Topic0:    "0x0000000000000000000000000000000000000000000000000000000000000001",
		Inputs: []*types.EventParam{
			{Name: "trader", Type: "address", Indexed: true, Position: 0},
			{Name: "amount", Type: "uint256", Indexed: false, Position: 1},
			{Name: "isBuy", Type: "bool", Indexed: false, Position: 2},
			{Name: "orderId", Type: "bytes32", Indexed: true, Position: 3},
			{Name: "fills", Type: "uint256[]", Indexed: false, Position: 4},
		},
	}
}

func Test_ForEvent(t *testing.T) {
	schema := ForEvent(swapEvent())

	t.Run("Should carry the schema dialect and identity", func(t *testing.T) {
		assert.Equal(t, SchemaDialect, schema.SchemaDialect)
		assert.Equal(t, "pool.Swap", schema.Title)
		assert.Equal(t, "object", schema.Type)
		assert.False(t, schema.AdditionalProperties)
	})

	t.Run("Should include the common log envelope properties", func(t *testing.T) {
		for _, key := range []string{"block_number", "block_time", "tx_hash", "log_index", "address", "topic0"} {
			require.Contains(t, schema.Properties, key)
		}
		assert.Equal(t, "integer", schema.Properties["block_number"].Type)
		assert.Equal(t, "date-time", schema.Properties["block_time"].Format)
	})

	t.Run("Should key param properties by column name", func(t *testing.T) {
		require.Contains(t, schema.Properties, "idx_trader")
		require.Contains(t, schema.Properties, "data_amount")
		require.Contains(t, schema.Properties, "data_isbuy")
		require.Contains(t, schema.Properties, "idx_orderid")
		require.Contains(t, schema.Properties, "data_fills")
	})

	t.Run("Should map Solidity types to JSON Schema types", func(t *testing.T) {
		assert.Equal(t, "string", schema.Properties["idx_trader"].Type)
		assert.Equal(t, "boolean", schema.Properties["data_isbuy"].Type)

		amount := schema.Properties["data_amount"]
		assert.Equal(t, "string", amount.Type)
		assert.Equal(t, `^-?\d+$`, amount.Pattern)

		fills := schema.Properties["data_fills"]
		assert.Equal(t, "array", fills.Type)
		require.NotNil(t, fills.Items)
		assert.Equal(t, "string", fills.Items.Type)
	})
}

func Test_NewManifest(t *testing.T) {
	manifest := NewManifest([]*types.Event{swapEvent()})

	t.Run("Should stamp the manifest version", func(t *testing.T) {
		assert.Equal(t, "topicfoundry.v1", manifest.Version)
	})

	t.Run("Should pair event identity with its schema", func(t *testing.T) {
		require.Len(t, manifest.Events, 1)
		entry := manifest.Events[0]
		assert.Equal(t, "pool.json", entry.File)
		assert.Equal(t, "pool", entry.Contract)
		assert.Equal(t, "Swap", entry.Event)
		assert.Equal(t, "Swap(address,uint256,bool,bytes32,uint256[])", entry.Signature)
		require.NotNil(t, entry.Schema)
		assert.Equal(t, "pool.Swap", entry.Schema.Title)
	})

	t.Run("Should render envelope fields first and params in declaration order", func(t *testing.T) {
		encoded, err := json.Marshal(ForEvent(swapEvent()))
		require.NoError(t, err)

		rendered := string(encoded)
		keys := []string{
			`"block_number"`, `"block_time"`, `"tx_hash"`, `"log_index"`, `"address"`, `"topic0"`,
			`"idx_trader"`, `"data_amount"`, `"data_isbuy"`, `"idx_orderid"`, `"data_fills"`,
		}
		last := -1
		for _, key := range keys {
			pos := strings.Index(rendered, key)
			require.GreaterOrEqual(t, pos, 0, key)
			assert.Greater(t, pos, last, "%s out of order", key)
			last = pos
		}
	})

	t.Run("Should serialize with the expected field names", func(t *testing.T) {
		encoded, err := json.Marshal(manifest)
		require.NoError(t, err)
		assert.Contains(t, string(encoded), `"version":"topicfoundry.v1"`)
		assert.Contains(t, string(encoded), `"$schema":"https://json-schema.org/draft/2020-12/schema"`)
		assert.Contains(t, string(encoded), `"additionalProperties":false`)
	})
}
