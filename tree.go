package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// countFrequencies returns one leaf per distinct symbol of input, weighted by
// its number of occurrences.  Leaves are returned in order of first
// appearance.
func countFrequencies[S Symbol](input []S) []*Node[S] {
	indexBySymbol := make(map[S]int)
	leaves := make([]*Node[S], 0)
	for _, symbol := range input {
		if index, found := indexBySymbol[symbol]; found {
			leaves[index].Weight++
			continue
		}
		indexBySymbol[symbol] = len(leaves)
		leaves = append(leaves, newLeaf(symbol, 1))
	}
	return leaves
}

// buildTree builds a Huffman tree from the given leaves and returns its
// root.
//
// The two lightest nodes are repeatedly merged into a new branch, with the
// first one popped as the left child, until a single node remains.  A single
// leaf is its own root.
//
func buildTree[S Symbol](leaves []*Node[S]) *Node[S] {
	assert.Assertf(len(leaves) != 0, "buildTree called with no leaves")

	q := newNodeQueue(leaves)
	for q.Len() > 1 {
		a := q.popMin()
		b := q.popMin()
		q.insert(newBranch(a, b))
	}
	return q.popMin()
}
