package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// RenderTree writes a human-readable drawing of the tree to w.  Right
// subtrees are drawn above their parent and left subtrees below it; internal
// nodes are labelled "(INT, freq)" and leaves "('sym', freq)".  A nil tree
// writes nothing.
//
// For the text "abracadabra":
//
//     │           ┌── ('r', 2)
//     │       ┌── (INT, 4)
//     │       │   └── ('b', 2)
//     │   ┌── (INT, 6)
//     │   │   │   ┌── ('d', 1)
//     │   │   └── (INT, 2)
//     │   │       └── ('c', 1)
//     └── (INT, 11)
//         └── ('a', 5)
//
func RenderTree(w io.Writer, root Node) error {
	if root == nil {
		return nil
	}
	var buf bytes.Buffer
	renderNode(&buf, root, "", true)
	_, err := buf.WriteTo(w)
	return err
}

func renderNode(buf *bytes.Buffer, node Node, prefix string, isLeft bool) {
	internal, _ := node.(*Internal)

	if internal != nil && internal.Right != nil {
		if isLeft {
			renderNode(buf, internal.Right, prefix+"│   ", false)
		} else {
			renderNode(buf, internal.Right, prefix+"    ", false)
		}
	}

	buf.WriteString(prefix)
	if isLeft {
		buf.WriteString("└── ")
	} else {
		buf.WriteString("┌── ")
	}
	buf.WriteString(nodeLabel(node))
	buf.WriteByte('\n')

	if internal != nil && internal.Left != nil {
		if isLeft {
			renderNode(buf, internal.Left, prefix+"    ", true)
		} else {
			renderNode(buf, internal.Left, prefix+"│   ", true)
		}
	}
}

func nodeLabel(node Node) string {
	if leaf, ok := node.(*Leaf); ok {
		return fmt.Sprintf("(%s, %d)", formatSymbol(leaf.Symbol), leaf.Count)
	}
	return fmt.Sprintf("(INT, %d)", node.Freq())
}
