// Package abiFetcher loads contract ABI definitions from disk, accepting the
// formats ABIs show up in the wild: a bare JSON array, a compiler artifact
// with an "abi" field, or an Etherscan API response whose "result" field is a
// JSON-encoded array string.
package abiFetcher

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// LoadAbi reads an ABI file and normalizes it to the raw JSON array of ABI
// items, whatever wrapper the file uses.
func LoadAbi(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ABI file %s", path)
	}
	return NormalizeAbi(data, path)
}

// NormalizeAbi extracts the ABI item array from raw file contents.
func NormalizeAbi(data []byte, path string) (json.RawMessage, error) {
	var asArray []json.RawMessage
	if err := json.Unmarshal(data, &asArray); err == nil {
		return json.RawMessage(data), nil
	}

	var asObject struct {
		Abi    json.RawMessage `json:"abi"`
		Result string          `json:"result"`
	}
	if err := json.Unmarshal(data, &asObject); err != nil {
		return nil, errors.Errorf("unrecognized ABI format: %s", path)
	}

	if len(asObject.Abi) > 0 {
		if err := json.Unmarshal(asObject.Abi, &asArray); err == nil {
			return asObject.Abi, nil
		}
	}
	if asObject.Result != "" {
		if err := json.Unmarshal([]byte(asObject.Result), &asArray); err == nil {
			return json.RawMessage(asObject.Result), nil
		}
	}
	return nil, errors.Errorf("unrecognized ABI format: %s", path)
}

// ExpandPaths resolves glob patterns and literal file paths to a sorted,
// de-duplicated list of ABI files. At least one file must match.
func ExpandPaths(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid glob pattern %s", pattern)
		}
		if len(matches) == 0 {
			if info, statErr := os.Stat(pattern); statErr == nil && !info.IsDir() {
				matches = []string{pattern}
			}
		}
		for _, m := range matches {
			seen[m] = true
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, errors.New("no ABI files found")
	}
	return paths, nil
}

// ContractName derives the contract name from an ABI file path: the base name
// without its extension.
func ContractName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
