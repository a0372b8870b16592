package types

import (
	"fmt"
	"strings"
)

// EventParam is a single input of an event definition, in declaration order.
type EventParam struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Indexed  bool   `json:"indexed"`
	Position int    `json:"position"`
}

// ColumnName is the storage column derived for this parameter. Indexed
// parameters get an idx_ prefix, data parameters a data_ prefix. Unnamed
// parameters fall back to their declared position.
func (ep *EventParam) ColumnName() string {
	name := ep.Name
	if name == "" {
		name = fmt.Sprintf("arg%d", ep.Position)
	}
	prefix := "data_"
	if ep.Indexed {
		prefix = "idx_"
	}
	return strings.ToLower(prefix + name)
}

// Event is the metadata forged for one event definition of one ABI file.
type Event struct {
	File      string        `json:"file"`
	Contract  string        `json:"contract"`
	Name      string        `json:"name"`
	Anonymous bool          `json:"anonymous"`
	Signature string        `json:"signature"`
	Topic0    string        `json:"topic0"`
	Inputs    []*EventParam `json:"inputs"`
}

// TableName is the per-event table identifier shared by all SQL targets.
func (e *Event) TableName() string {
	return strings.ToLower(fmt.Sprintf("%s_%s", e.Contract, e.Name))
}

// IndexedCount returns how many inputs are indexed, which is the number of
// non-topic0 entries an eth_getLogs topics array has for this event.
func (e *Event) IndexedCount() int {
	count := 0
	for _, input := range e.Inputs {
		if input.Indexed {
			count++
		}
	}
	return count
}
