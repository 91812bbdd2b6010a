package chunk

import (
	"strings"

	"github.com/cognicore/canon/pkg/canon/pos"
)

// RootLabel labels the node that holds a whole sentence.
const RootLabel = "S"

// Node is either a leaf holding one tagged token (no Label, no Children) or a
// phrase with a label and ordered children.
type Node struct {
	Label    string
	Token    pos.TaggedToken
	Children []*Node
}

// Leaf returns a leaf node for tt.
func Leaf(tt pos.TaggedToken) *Node {
	return &Node{Token: tt}
}

// IsLeaf reports whether n holds a token.
func (n *Node) IsLeaf() bool {
	return n.Label == "" && len(n.Children) == 0
}

// Leaves returns the tagged tokens under n, left to right.
func (n *Node) Leaves() []pos.TaggedToken {
	var out []pos.TaggedToken
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.IsLeaf() {
			out = append(out, cur.Token)
			continue
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
	return out
}

// String renders n in bracketed form: "(S (NP london/NN bridge/NN) is/VBZ)".
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.Token.Text)
		b.WriteByte('/')
		b.WriteString(n.Token.Tag)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Label)
	for _, c := range n.Children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteByte(')')
}

// Flatten turns a parse into a flat list of chunks: each direct child of root
// that is a leaf gives its token text, each phrase gives its leaves' texts
// joined by single spaces.
func Flatten(root *Node) []string {
	if root == nil {
		return nil
	}
	if root.IsLeaf() {
		return []string{root.Token.Text}
	}
	out := make([]string, 0, len(root.Children))
	for _, child := range root.Children {
		if child.IsLeaf() {
			out = append(out, child.Token.Text)
			continue
		}
		leaves := child.Leaves()
		words := make([]string, len(leaves))
		for i, tt := range leaves {
			words[i] = tt.Text
		}
		out = append(out, strings.Join(words, " "))
	}
	return out
}
