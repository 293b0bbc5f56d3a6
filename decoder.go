package huffman

import (
	"fmt"
	"math"
	"unsafe"
)

// maxDecodedBytes bounds the output of a single-symbol decode.  It is at
// least the largest heap allocation the platform supports.
const maxDecodedBytes = min(uint64(1)<<48, uint64(math.MaxInt))

// Decode recovers the message encoded in result by walking result.Tree: each
// 0 bit descends to the left child, each 1 bit to the right child, and
// reaching a leaf emits its symbol and returns to the root.
//
// Decode either returns the whole message or fails without output.  Bits
// that lead off the tree fail with ErrDeadEnd, bits that stop in the middle
// of a codeword fail with ErrTruncated, and a symbol count that disagrees
// with result.Count fails with ErrCountMismatch.  No other cross-checking
// between the tree and the bits is performed.
//
func Decode[S Symbol](result *Result[S]) ([]S, error) {
	if result == nil || result.Tree == nil {
		return nil, ErrNoTree
	}
	if result.Count < 0 {
		return nil, fmt.Errorf("negative count %d: %w", result.Count, ErrCountMismatch)
	}

	root, bits := result.Tree, result.Bits
	if root.IsLeaf() {
		return decodeSingle(root, bits, result.Count)
	}

	// Every codeword of a tree with two or more leaves is at least one bit
	// long.
	if result.Count > bits.Len() {
		return nil, fmt.Errorf("expected %d symbols from %d bits: %w", result.Count, bits.Len(), ErrCountMismatch)
	}

	out := make([]S, 0, result.Count)
	node := root
	start := 0
	for index := 0; index < bits.Len(); index++ {
		if bits.Bit(index) {
			node = node.Right
		} else {
			node = node.Left
		}

		if node == nil {
			return nil, fmt.Errorf("bit %d: %w", index, ErrDeadEnd)
		}
		if !node.IsLeaf() {
			continue
		}
		if len(node.Key) != 1 {
			return nil, fmt.Errorf("leaf reached at bit %d covers %d symbols: %w", index, len(node.Key), ErrMalformedTree)
		}

		out = append(out, node.Key[0])
		node = root
		start = index + 1
	}

	if node != root {
		return nil, fmt.Errorf("codeword starting at bit %d of %d: %w", start, bits.Len(), ErrTruncated)
	}
	if len(out) != result.Count {
		return nil, fmt.Errorf("decoded %d symbols, expected %d: %w", len(out), result.Count, ErrCountMismatch)
	}
	return out, nil
}

// DecodeString is a convenience wrapper around Decode for Results produced
// by EncodeString.
func DecodeString(result *Result[rune]) (string, error) {
	runes, err := Decode(result)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// decodeSingle handles a tree whose root is a leaf.  Its only codeword is
// empty, so any bit at all leads off the tree.
func decodeSingle[S Symbol](root *Node[S], bits Code, count int) ([]S, error) {
	if bits.Len() != 0 {
		return nil, fmt.Errorf("bit 0: %w", ErrDeadEnd)
	}
	if len(root.Key) != 1 {
		return nil, fmt.Errorf("root leaf covers %d symbols: %w", len(root.Key), ErrMalformedTree)
	}
	if size := uint64(unsafe.Sizeof(root.Key[0])); size != 0 && uint64(count) > maxDecodedBytes/size {
		return nil, fmt.Errorf("count %d is too large to decode: %w", count, ErrCountMismatch)
	}

	out := make([]S, count)
	for index := range out {
		out[index] = root.Key[0]
	}
	return out, nil
}
