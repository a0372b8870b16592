// Package logFilter builds eth_getLogs filter stubs for forged events. The
// stubs carry the known topic0 plus placeholders for each indexed argument
// and the contract address, to be filled in by the caller.
package logFilter

import (
	"github.com/topicfoundry/topicfoundry/pkg/types"
)

const (
	AddressPlaceholder = "<contract_address_if_known>"
	TopicPlaceholder   = "<topic for indexed arg>"
)

// Filter is the shape handed to eth_getLogs.
type Filter struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
}

// Stub pairs an event name with its filter.
type Stub struct {
	Event  string  `json:"event"`
	Filter *Filter `json:"filter"`
}

// ForEvent builds the filter stub for one event: topics[0] is the topic0
// hash, followed by one placeholder slot per indexed argument.
func ForEvent(event *types.Event) *Stub {
	topics := make([]string, 0, 1+event.IndexedCount())
	topics = append(topics, event.Topic0)
	for i := 0; i < event.IndexedCount(); i++ {
		topics = append(topics, TopicPlaceholder)
	}

	return &Stub{
		Event: event.Name,
		Filter: &Filter{
			Address: AddressPlaceholder,
			Topics:  topics,
		},
	}
}
