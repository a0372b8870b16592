package util

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Find returns the first item matching the predicate, or nil.
func Find[T any](items []*T, predicate func(*T) bool) *T {
	for _, item := range items {
		if predicate(item) {
			return item
		}
	}
	return nil
}

// Map applies fn to every item of the slice.
func Map[A any, B any](items []A, fn func(A, int) B) []B {
	out := make([]B, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// Topic0 computes the keccak256 hash of a canonical event signature,
// 0x-prefixed lowercase hex.
func Topic0(signature string) string {
	return hexutil.Encode(crypto.Keccak256([]byte(signature)))
}
