package huffman

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// nodeQueue holds tree nodes in ascending order by Weight.  Nodes of equal
// Weight are kept in arrival order, so the queue is deterministic.
//
// A nodeQueue is owned by a single tree build and is never shared.
//
type nodeQueue[S Symbol] struct {
	list byWeight[S]
}

// newNodeQueue returns a queue holding the given nodes.  Nodes of equal
// Weight keep their relative order from the argument.
func newNodeQueue[S Symbol](nodes []*Node[S]) *nodeQueue[S] {
	list := make(byWeight[S], len(nodes))
	copy(list, nodes)
	list.Sort()
	return &nodeQueue[S]{list: list}
}

func (q *nodeQueue[S]) Len() int {
	return len(q.list)
}

// insert adds node after every queued node whose Weight is less than or
// equal to node.Weight.
func (q *nodeQueue[S]) insert(node *Node[S]) {
	index := sort.Search(len(q.list), func(i int) bool {
		return q.list[i].Weight > node.Weight
	})
	q.list = append(q.list, nil)
	copy(q.list[index+1:], q.list[index:])
	q.list[index] = node
}

// popMin removes and returns the first node with the lowest Weight.
func (q *nodeQueue[S]) popMin() *Node[S] {
	assert.Assertf(len(q.list) != 0, "popMin called on an empty nodeQueue")
	node := q.list[0]
	q.list[0] = nil
	q.list = q.list[1:]
	return node
}

// type byWeight {{{

type byWeight[S Symbol] []*Node[S]

func (list byWeight[S]) Len() int {
	return len(list)
}

func (list byWeight[S]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byWeight[S]) Less(i, j int) bool {
	return list[i].Weight < list[j].Weight
}

func (list byWeight[S]) Sort() {
	sort.Stable(list)
}

var _ sort.Interface = byWeight[rune](nil)

// }}}
