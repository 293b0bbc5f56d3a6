package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Result holds an encoded message together with everything needed to
// decode it.
type Result[S Symbol] struct {
	// Bits holds the concatenated codewords of the message.
	Bits Code

	// Dictionary maps each symbol of the alphabet to its codeword.
	Dictionary Dictionary[S]

	// Tree is the root of the Huffman tree.  It alone is sufficient to
	// decode Bits; Dictionary is kept for re-encoding.
	Tree *Node[S]

	// Count is the number of symbols encoded in Bits.  When the alphabet
	// has a single symbol its codeword is empty, and Count is the only
	// record of the message length.
	Count int
}

// Encode builds a Huffman code for input and encodes input with it.
//
// Encode returns ErrEmptyInput if input is empty, and never fails otherwise.
//
func Encode[S Symbol](input []S) (*Result[S], error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	root := buildTree(countFrequencies(input))
	dict := deriveDictionary(root)
	bits, err := dict.Encode(input)
	assert.Assertf(err == nil, "Dictionary does not cover its own input: %v", err)

	return &Result[S]{
		Bits:       bits,
		Dictionary: dict,
		Tree:       root,
		Count:      len(input),
	}, nil
}

// EncodeString is a convenience wrapper around Encode that treats each rune
// of str as one symbol.
func EncodeString(str string) (*Result[rune], error) {
	return Encode([]rune(str))
}

// Reencode encodes a different message with this Result's Huffman code.  The
// returned Result shares Tree and Dictionary with this one.
//
// If input contains a symbol outside this code's alphabet, the error wraps
// ErrUnknownSymbol.
//
func (r *Result[S]) Reencode(input []S) (*Result[S], error) {
	bits, err := r.Dictionary.Encode(input)
	if err != nil {
		return nil, err
	}
	return &Result[S]{
		Bits:       bits,
		Dictionary: r.Dictionary,
		Tree:       r.Tree,
		Count:      len(input),
	}, nil
}

// Dump writes a programmer-readable debugging dump of this Result to the
// given writer.
func (r *Result[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Result{\n")
	fmt.Fprintf(&buf, "\tCount = %d\n", r.Count)
	fmt.Fprintf(&buf, "\tBits = %s\n", r.Bits)
	r.Dictionary.dumpEntries(&buf)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// TreeString renders the Huffman tree of this Result.
func (r *Result[S]) TreeString() string {
	return r.Tree.TreeString()
}
