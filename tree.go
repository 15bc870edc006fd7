package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.  A nil
// Node stands for the empty tree built from an empty FrequencyTable.
type Node interface {
	// Freq returns the total number of occurrences of all symbols under
	// this node.
	Freq() uint64

	isNode()
}

// Leaf is a Node that carries one Symbol.
type Leaf struct {
	Symbol Symbol
	Count  uint64
}

// Internal is a Node with exactly two children.  Its frequency is the sum of
// its children's frequencies.
type Internal struct {
	Count uint64
	Left  Node
	Right Node
}

// Freq returns the number of occurrences of the leaf's Symbol.
func (leaf *Leaf) Freq() uint64 { return leaf.Count }

// Freq returns the sum of both children's frequencies.
func (node *Internal) Freq() uint64 { return node.Count }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// BuildTree constructs the Huffman tree for the given FrequencyTable.
//
// The two nodes of least frequency are merged repeatedly until one remains.
// Ties are broken by sequence number: leaves are numbered in ascending
// Symbol order and each merged node takes the next number, so the tree is a
// pure function of the table.  The first node popped becomes the left child.
//
// A table with one entry yields a lone *Leaf.  An empty table yields nil.
// Entries with a zero count are ignored.
//
func BuildTree(freq FrequencyTable) Node {
	symbols := freq.Symbols()
	h := nodeHeap{list: make([]seqNode, 0, len(symbols))}
	var seq uint32
	for _, symbol := range symbols {
		count := freq[symbol]
		if count == 0 {
			continue
		}
		h.list = append(h.list, seqNode{&Leaf{Symbol: symbol, Count: count}, seq})
		seq++
	}

	if h.Len() == 0 {
		return nil
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(seqNode)
		b := heap.Pop(&h).(seqNode)

		sum := a.node.Freq() + b.node.Freq()
		assert.Assertf(sum >= a.node.Freq(), "frequency overflow: %d + %d", a.node.Freq(), b.node.Freq())

		heap.Push(&h, seqNode{&Internal{Count: sum, Left: a.node, Right: b.node}, seq})
		seq++
	}

	root := heap.Pop(&h).(seqNode)
	return root.node
}

// type seqNode + type nodeHeap {{{

type seqNode struct {
	node Node
	seq  uint32
}

type nodeHeap struct {
	list []seqNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := a.node.Freq(), b.node.Freq()
	if af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(seqNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = seqNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
