// Package jsonSchema renders a JSON Schema (draft 2020-12) per forged event,
// plus the combined manifest document the json subcommand emits.
package jsonSchema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/topicfoundry/topicfoundry/pkg/types"
)

const (
	SchemaDialect   = "https://json-schema.org/draft/2020-12/schema"
	ManifestVersion = "topicfoundry.v1"

	// decimalPattern matches the string encoding used for 256-bit integers,
	// which overflow every native JSON number representation.
	decimalPattern = `^-?\d+$`
)

// Property is one JSON Schema property definition.
type Property struct {
	Type    string    `json:"type"`
	Format  string    `json:"format,omitempty"`
	Pattern string    `json:"pattern,omitempty"`
	Items   *Property `json:"items,omitempty"`
}

// Schema is the JSON Schema document for one event's table rows. It
// serializes through its own MarshalJSON so properties render in envelope
// order followed by parameter declaration order.
type Schema struct {
	SchemaDialect        string
	Title                string
	Type                 string
	Properties           map[string]*Property
	AdditionalProperties bool

	propertyOrder []string
}

// ManifestEntry pairs one event's identity with its schema.
type ManifestEntry struct {
	File      string  `json:"file"`
	Contract  string  `json:"contract"`
	Event     string  `json:"event"`
	Signature string  `json:"signature"`
	Topic0    string  `json:"topic0"`
	Schema    *Schema `json:"schema"`
}

// Manifest is the combined document covering all loaded events.
type Manifest struct {
	Version string           `json:"version"`
	Events  []*ManifestEntry `json:"events"`
}

// ForEvent builds the JSON Schema for one event. Rows carry the common log
// envelope fields plus one property per event parameter, keyed like the DDL
// columns.
func ForEvent(event *types.Event) *Schema {
	props := map[string]*Property{
		"block_number": {Type: "integer"},
		"block_time":   {Type: "string", Format: "date-time"},
		"tx_hash":      {Type: "string"},
		"log_index":    {Type: "integer"},
		"address":      {Type: "string"},
		"topic0":       {Type: "string"},
	}
	order := append([]string{}, envelopeColumns...)

	for _, param := range event.Inputs {
		key := param.ColumnName()
		if _, exists := props[key]; !exists {
			order = append(order, key)
		}
		props[key] = propertyForType(param.Type)
	}

	return &Schema{
		SchemaDialect:        SchemaDialect,
		Title:                fmt.Sprintf("%s.%s", event.Contract, event.Name),
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: false,
		propertyOrder:        order,
	}
}

// envelopeColumns are the common log fields, in render order.
var envelopeColumns = []string{"block_number", "block_time", "tx_hash", "log_index", "address", "topic0"}

// MarshalJSON renders the schema with properties in envelope-then-declaration
// order rather than Go's alphabetical map order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	order := s.propertyOrder
	if len(order) == 0 {
		order = make([]string, 0, len(s.Properties))
		for key := range s.Properties {
			order = append(order, key)
		}
		sort.Strings(order)
	}

	var buf bytes.Buffer
	buf.WriteString(`{"$schema":`)
	if err := encodeTo(&buf, s.SchemaDialect); err != nil {
		return nil, err
	}
	buf.WriteString(`,"title":`)
	if err := encodeTo(&buf, s.Title); err != nil {
		return nil, err
	}
	buf.WriteString(`,"type":`)
	if err := encodeTo(&buf, s.Type); err != nil {
		return nil, err
	}
	buf.WriteString(`,"properties":{`)
	for i, key := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeTo(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeTo(&buf, s.Properties[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteString(`},"additionalProperties":`)
	buf.WriteString(strconv.FormatBool(s.AdditionalProperties))
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeTo(buf *bytes.Buffer, v interface{}) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}

// NewManifest builds the combined manifest for all events.
func NewManifest(events []*types.Event) *Manifest {
	entries := make([]*ManifestEntry, 0, len(events))
	for _, event := range events {
		entries = append(entries, &ManifestEntry{
			File:      event.File,
			Contract:  event.Contract,
			Event:     event.Name,
			Signature: event.Signature,
			Topic0:    event.Topic0,
			Schema:    ForEvent(event),
		})
	}
	return &Manifest{
		Version: ManifestVersion,
		Events:  entries,
	}
}

func propertyForType(solType string) *Property {
	switch {
	case strings.HasSuffix(solType, "]"):
		// arrays are stored as JSON; elements kept as strings
		return &Property{Type: "array", Items: &Property{Type: "string"}}
	case solType == "uint256" || solType == "int256":
		return &Property{Type: "string", Pattern: decimalPattern}
	case solType == "bool":
		return &Property{Type: "boolean"}
	default:
		// address, bytes, bytes32 and anything exotic travel as strings
		return &Property{Type: "string"}
	}
}
