// Package dictionary writes the CSV data dictionary: one row per event
// parameter across all loaded contracts.
package dictionary

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/topicfoundry/topicfoundry/pkg/types"
)

var header = []string{"contract", "event", "signature", "topic0", "position", "param", "type", "indexed"}

// Write renders the dictionary for all events to w.
func Write(w io.Writer, events []*types.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write dictionary header")
	}

	for _, event := range events {
		for _, param := range event.Inputs {
			indexed := "0"
			if param.Indexed {
				indexed = "1"
			}
			row := []string{
				event.Contract,
				event.Name,
				event.Signature,
				event.Topic0,
				strconv.Itoa(param.Position),
				param.Name,
				param.Type,
				indexed,
			}
			if err := cw.Write(row); err != nil {
				return errors.Wrapf(err, "failed to write dictionary row for %s.%s", event.Contract, event.Name)
			}
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush dictionary")
}
