package abiFetcher

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topicfoundry/topicfoundry/internal/testUtils"
)

func Test_LoadAbi(t *testing.T) {
	t.Run("Should accept a bare ABI array", func(t *testing.T) {
		dir := t.TempDir()
		path := testUtils.WriteAbiFile(t, dir, "erc20.json", testUtils.Erc20Abi)

		raw, err := LoadAbi(path)
		require.NoError(t, err)
		assertItemCount(t, raw, 3)
	})

	t.Run("Should unwrap a compiler artifact's abi field", func(t *testing.T) {
		dir := t.TempDir()
		path := testUtils.WriteAbiFile(t, dir, "artifact.json", testUtils.HardhatArtifact)

		raw, err := LoadAbi(path)
		require.NoError(t, err)
		assertItemCount(t, raw, 3)
	})

	t.Run("Should decode an Etherscan result string", func(t *testing.T) {
		dir := t.TempDir()
		path := testUtils.WriteAbiFile(t, dir, "etherscan.json", testUtils.EtherscanResponse)

		raw, err := LoadAbi(path)
		require.NoError(t, err)
		assertItemCount(t, raw, 1)
	})

	t.Run("Should reject unrecognized shapes with the file name", func(t *testing.T) {
		dir := t.TempDir()
		path := testUtils.WriteAbiFile(t, dir, "bogus.json", `{"something":"else"}`)

		_, err := LoadAbi(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unrecognized ABI format")
		assert.Contains(t, err.Error(), "bogus.json")
	})

	t.Run("Should reject non-JSON content", func(t *testing.T) {
		dir := t.TempDir()
		path := testUtils.WriteAbiFile(t, dir, "notjson.json", "not json at all")

		_, err := LoadAbi(path)
		assert.Error(t, err)
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := LoadAbi(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func Test_ExpandPaths(t *testing.T) {
	t.Run("Should expand globs sorted and de-duplicated", func(t *testing.T) {
		dir := t.TempDir()
		b := testUtils.WriteAbiFile(t, dir, "b.json", testUtils.Erc20Abi)
		a := testUtils.WriteAbiFile(t, dir, "a.json", testUtils.Erc20Abi)

		paths, err := ExpandPaths([]string{
			filepath.Join(dir, "*.json"),
			a, // literal path already covered by the glob
		})
		require.NoError(t, err)
		assert.Equal(t, []string{a, b}, paths)
	})

	t.Run("Should accept a literal path without glob characters", func(t *testing.T) {
		dir := t.TempDir()
		path := testUtils.WriteAbiFile(t, dir, "only.json", testUtils.Erc20Abi)

		paths, err := ExpandPaths([]string{path})
		require.NoError(t, err)
		assert.Equal(t, []string{path}, paths)
	})

	t.Run("Should fail when nothing matches", func(t *testing.T) {
		_, err := ExpandPaths([]string{filepath.Join(t.TempDir(), "*.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no ABI files found")
	})
}

func Test_ContractName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"abis/MyToken.json", "MyToken"},
		{"MyToken.abi.json", "MyToken.abi"},
		{"/tmp/x/pool", "pool"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContractName(tt.path))
		})
	}
}

func assertItemCount(t *testing.T, raw json.RawMessage, expected int) {
	t.Helper()
	var items []json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Len(t, items, expected)
}
