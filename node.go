package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/xlab/treeprint"
)

// Node is a node of a Huffman tree.  A leaf covers exactly one symbol; a
// branch owns exactly two children and covers the symbols of both.
//
// A tree is never modified after Encode returns it.
//
type Node[S Symbol] struct {
	// Key lists the symbols under this node, left subtree first.  It is
	// a debugging label only; lookups never consult it.
	Key []S

	// Weight is the total number of occurrences of the symbols under
	// this node.
	Weight int

	Left  *Node[S]
	Right *Node[S]
}

func newLeaf[S Symbol](symbol S, weight int) *Node[S] {
	return &Node[S]{Key: []S{symbol}, Weight: weight}
}

func newBranch[S Symbol](left *Node[S], right *Node[S]) *Node[S] {
	key := make([]S, 0, len(left.Key)+len(right.Key))
	key = append(key, left.Key...)
	key = append(key, right.Key...)
	return &Node[S]{
		Key:    key,
		Weight: left.Weight + right.Weight,
		Left:   left,
		Right:  right,
	}
}

// IsLeaf returns true iff this node has no children.
func (n *Node[S]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Symbol returns the symbol of a leaf.
func (n *Node[S]) Symbol() S {
	assert.Assertf(n.IsLeaf(), "Symbol called on a branch with key %s", formatKey(n.Key))
	assert.Assertf(len(n.Key) == 1, "leaf has %d symbols, expected 1", len(n.Key))
	return n.Key[0]
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (n *Node[S]) Depth() int {
	var maxDepth int
	stack := []depthItem[S]{{n, 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > maxDepth {
			maxDepth = top.depth
		}
		for _, child := range [2]*Node[S]{top.node.Left, top.node.Right} {
			if child != nil {
				stack = append(stack, depthItem[S]{child, top.depth + 1})
			}
		}
	}
	return maxDepth
}

// String returns a short description of this node.
func (n *Node[S]) String() string {
	return fmt.Sprintf("%s:%d", formatKey(n.Key), n.Weight)
}

// TreeString renders the tree rooted at this node, one node per line.  Each
// child is labeled with the bit of the edge leading to it.
func (n *Node[S]) TreeString() string {
	root := treeprint.NewWithRoot(n.String())
	var stack []printItem[S]
	pushChildren := func(node *Node[S], tree treeprint.Tree) {
		// Right first, so that the left child is printed first.
		if node.Right != nil {
			stack = append(stack, printItem[S]{node.Right, tree, "1 " + node.Right.String()})
		}
		if node.Left != nil {
			stack = append(stack, printItem[S]{node.Left, tree, "0 " + node.Left.String()})
		}
	}

	pushChildren(n, root)
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.IsLeaf() {
			top.parent.AddNode(top.label)
			continue
		}
		pushChildren(top.node, top.parent.AddBranch(top.label))
	}
	return root.String()
}

type depthItem[S Symbol] struct {
	node  *Node[S]
	depth int
}

type printItem[S Symbol] struct {
	node   *Node[S]
	parent treeprint.Tree
	label  string
}

var _ fmt.Stringer = (*Node[rune])(nil)
