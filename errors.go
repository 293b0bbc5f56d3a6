package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned by Encode when given no symbols.  There is
	// no Huffman tree for an empty alphabet.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrUnknownSymbol is returned when encoding a symbol that has no
	// codeword in the Dictionary.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrNoTree is returned by Decode when the Result has no tree.
	ErrNoTree = errors.New("huffman: no tree")

	// ErrDeadEnd is returned by Decode when a bit leads to a missing child.
	ErrDeadEnd = errors.New("huffman: bit leads to a missing child")

	// ErrMalformedTree is returned by Decode when a leaf does not cover
	// exactly one symbol.
	ErrMalformedTree = errors.New("huffman: malformed tree")

	// ErrTruncated is returned when the bits end in the middle of a
	// codeword.
	ErrTruncated = errors.New("huffman: truncated bit sequence")

	// ErrCountMismatch is returned by Decode when the number of decoded
	// symbols differs from Result.Count.
	ErrCountMismatch = errors.New("huffman: symbol count mismatch")
)
