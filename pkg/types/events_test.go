package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EventParam_ColumnName(t *testing.T) {
	tests := []struct {
		name     string
		param    EventParam
		expected string
	}{
		{
			name:     "indexed param gets idx_ prefix",
			param:    EventParam{Name: "from", Type: "address", Indexed: true, Position: 0},
			expected: "idx_from",
		},
		{
			name:     "data param gets data_ prefix",
			param:    EventParam{Name: "value", Type: "uint256", Position: 2},
			expected: "data_value",
		},
		{
			name:     "mixed case is lowered",
			param:    EventParam{Name: "orderId", Type: "bytes32", Indexed: true, Position: 1},
			expected: "idx_orderid",
		},
		{
			name:     "unnamed param falls back to its position",
			param:    EventParam{Type: "uint256", Position: 3},
			expected: "data_arg3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.param.ColumnName())
		})
	}
}

func Test_Event_TableName(t *testing.T) {
	event := &Event{Contract: "MyToken", Name: "Transfer"}
	assert.Equal(t, "mytoken_transfer", event.TableName())
}

func Test_Event_IndexedCount(t *testing.T) {
	event := &Event{
		Inputs: []*EventParam{
			{Name: "from", Indexed: true},
			{Name: "to", Indexed: true},
			{Name: "value"},
		},
	}
	assert.Equal(t, 2, event.IndexedCount())

	assert.Equal(t, 0, (&Event{}).IndexedCount())
}
