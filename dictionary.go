package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Dictionary maps each symbol of an alphabet to its codeword.  It is built
// once from a Huffman tree and is read-only afterward.
type Dictionary[S Symbol] struct {
	codes map[S]Code
}

// deriveDictionary walks the tree rooted at root and records the path to
// every leaf, appending 0 for each left edge and 1 for each right edge.  The
// root's own path is empty, so a tree consisting of a single leaf gives that
// leaf the empty codeword.
//
// Since only leaves receive codewords and every leaf is reached by its own
// root-to-leaf path, no codeword is a prefix of another.
//
func deriveDictionary[S Symbol](root *Node[S]) Dictionary[S] {
	codes := make(map[S]Code, len(root.Key))

	stack := []pathItem[S]{{node: root}}

	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack[last] = pathItem[S]{}
		stack = stack[:last]

		node := top.node
		if node.IsLeaf() {
			symbol := node.Symbol()
			_, dupe := codes[symbol]
			assert.Assertf(!dupe, "symbol %s appears in more than one leaf", formatSymbol(symbol))
			codes[symbol] = top.path
			continue
		}

		assert.Assertf(node.Left != nil && node.Right != nil, "branch %v does not have exactly two children", node)
		stack = append(stack,
			pathItem[S]{node: node.Right, path: top.path.With(true)},
			pathItem[S]{node: node.Left, path: top.path.With(false)})
	}

	return Dictionary[S]{codes: codes}
}

// Len returns the number of symbols in this Dictionary.
func (d Dictionary[S]) Len() int {
	return len(d.codes)
}

// Lookup returns the codeword for symbol.  The second return value is false
// if symbol is not in this Dictionary.
func (d Dictionary[S]) Lookup(symbol S) (Code, bool) {
	hc, found := d.codes[symbol]
	if !found {
		return Code{}, false
	}
	return hc.Clone(), true
}

// Symbols returns every symbol in this Dictionary, ordered by codeword.
func (d Dictionary[S]) Symbols() []S {
	sorted := d.sorted()
	out := make([]S, len(sorted))
	for index, item := range sorted {
		out[index] = item.symbol
	}
	return out
}

// Encode concatenates the codewords for every symbol of input.  If any
// symbol is missing from this Dictionary, no bits are returned and the error
// wraps ErrUnknownSymbol.
func (d Dictionary[S]) Encode(input []S) (Code, error) {
	var out Code
	for index, symbol := range input {
		hc, found := d.codes[symbol]
		if !found {
			return Code{}, fmt.Errorf("symbol %s at index %d: %w", formatSymbol(symbol), index, ErrUnknownSymbol)
		}
		out.AppendCode(hc)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of this Dictionary to the
// given writer.
func (d Dictionary[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Dictionary{\n")
	d.dumpEntries(&buf)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (d Dictionary[S]) dumpEntries(buf *bytes.Buffer) {
	for _, item := range d.sorted() {
		fmt.Fprintf(buf, "\tEncode(%s) = %s\n", formatSymbol(item.symbol), item.code)
	}
}

func (d Dictionary[S]) sorted() byCode[S] {
	list := make(byCode[S], 0, len(d.codes))
	for symbol, hc := range d.codes {
		list = append(list, symbolAndCode[S]{symbol, hc})
	}
	list.Sort()
	return list
}

type pathItem[S Symbol] struct {
	node *Node[S]
	path Code
}

// type symbolAndCode + type byCode {{{

type symbolAndCode[S Symbol] struct {
	symbol S
	code   Code
}

type byCode[S Symbol] []symbolAndCode[S]

func (list byCode[S]) Sort() {
	sort.Sort(list)
}

func (list byCode[S]) Len() int {
	return len(list)
}

func (list byCode[S]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode[S]) Less(i, j int) bool {
	return list[i].code.less(list[j].code)
}

var _ sort.Interface = byCode[rune](nil)

// }}}
