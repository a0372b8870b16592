// Package logDecoder decodes captured Ethereum event logs against the loaded
// ABIs, turning raw topics and data hex into named, typed arguments.
package logDecoder

// RawLog is one captured log, as serialized by eth_getLogs.
type RawLog struct {
	// Address is the contract address that emitted the event
	Address string `json:"address"`
	// Topics holds topic0 plus one entry per indexed argument
	Topics []string `json:"topics"`
	// Data is the hex-encoded non-indexed argument section
	Data string `json:"data"`
	// LogIndex is the position of the log in its block
	LogIndex uint64 `json:"logIndex"`
}

// Argument is a single decoded event parameter.
type Argument struct {
	// Name is the parameter name from the ABI
	Name string `json:"name"`
	// Type is the Solidity type of the parameter
	Type string `json:"type"`
	// Value is the decoded value; nil when the value could not be parsed
	Value interface{} `json:"value"`
	// Indexed indicates whether the parameter traveled as a topic
	Indexed bool `json:"indexed"`
}

// DecodedLog is the structured form of one raw log.
type DecodedLog struct {
	// Address is the emitting contract address, checksummed
	Address string `json:"address"`
	// LogIndex is carried through from the raw log
	LogIndex uint64 `json:"logIndex"`
	// Contract is the store contract whose ABI matched
	Contract string `json:"contract"`
	// EventName is the matched event's name
	EventName string `json:"eventName"`
	// Arguments are the event parameters in declaration order
	Arguments []Argument `json:"arguments"`
	// OutputData maps non-indexed parameter names to decoded values
	OutputData map[string]interface{} `json:"outputData,omitempty"`
}
