package testUtils

import (
	"os"
	"path/filepath"
	"testing"
)

// Erc20Abi is a minimal ERC20 ABI in bare-array form: two events plus a
// function entry that extraction must skip.
const Erc20Abi = `[
  {
    "type": "event",
    "name": "Transfer",
    "anonymous": false,
    "inputs": [
      {"name": "from", "type": "address", "indexed": true},
      {"name": "to", "type": "address", "indexed": true},
      {"name": "value", "type": "uint256", "indexed": false}
    ]
  },
  {
    "type": "event",
    "name": "Approval",
    "anonymous": false,
    "inputs": [
      {"name": "owner", "type": "address", "indexed": true},
      {"name": "spender", "type": "address", "indexed": true},
      {"name": "value", "type": "uint256", "indexed": false}
    ]
  },
  {
    "type": "function",
    "name": "balanceOf",
    "inputs": [{"name": "owner", "type": "address"}],
    "outputs": [{"name": "", "type": "uint256"}],
    "stateMutability": "view"
  }
]`

// HardhatArtifact wraps the ERC20 ABI the way compiler artifacts do.
const HardhatArtifact = `{
  "contractName": "Token",
  "abi": ` + Erc20Abi + `,
  "bytecode": "0x"
}`

// EtherscanResponse wraps an ABI the way the Etherscan getabi endpoint does:
// the result field is a JSON-encoded array string.
const EtherscanResponse = `{
  "status": "1",
  "message": "OK",
  "result": "[{\"type\":\"event\",\"name\":\"Ping\",\"anonymous\":false,\"inputs\":[{\"name\":\"sender\",\"type\":\"address\",\"indexed\":true}]}]"
}`

// Known topic0 hashes for the fixture events.
const (
	TransferTopic0 = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
	ApprovalTopic0 = "0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925"
)

// WriteAbiFile drops ABI content into dir under the given name and returns
// the full path.
func WriteAbiFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write ABI fixture %s: %v", name, err)
	}
	return path
}
