// Package generics parses nested generic type notation such as
// "Ns.PagedResultDto<Ns.Dictionary<System.String,Ns.BookDto>>" into a tree
// of type nodes that can be flattened into registry references or
// reassembled with a per-node mapping.
package generics

import (
	"strconv"
	"strings"
)

// NodeID indexes a node inside a Tree.
type NodeID int

// NoParent is the parent index of the root node.
const NoParent NodeID = -1

// Mapper rewrites the data of a single node during reassembly.
type Mapper func(data string) string

// Identity returns the node data unchanged.
func Identity(data string) string { return data }

// Node is a single type name inside a generic expression.
type Node struct {
	Data     string
	Parent   NodeID
	Children []NodeID
	Index    int // position among the parent's children
}

// Tree is an arena of nodes; node 0 is always the root.
type Tree struct {
	nodes  []Node
	mapper Mapper
}

// Parse builds a Tree from a generic type string. Unbalanced closing
// brackets are clamped at the root rather than rejected.
func Parse(typ string) *Tree {
	return ParseWithMapper(typ, nil)
}

// ParseWithMapper is Parse with a default mapper used by String.
func ParseWithMapper(typ string, mapper Mapper) *Tree {
	if mapper == nil {
		mapper = Identity
	}

	fragments := strings.Split(typ, "<")
	t := &Tree{mapper: mapper}
	root := t.add(strings.TrimSpace(fragments[0]), NoParent)

	cursor := root
	last := len(fragments) - 1
	for i := 1; i <= last; i++ {
		cursor = t.walkFragment(fragments[i], cursor, i < last)
	}

	return t
}

// walkFragment consumes the text between two '<' characters. Names are
// attached to the active parent, each '>' pops the cursor one level, and
// when the fragment is followed by another '<' the last name opened becomes
// the new active parent.
func (t *Tree) walkFragment(fragment string, cursor NodeID, opens bool) NodeID {
	var name strings.Builder
	lastAdded := NoParent

	emit := func() {
		data := strings.TrimSpace(name.String())
		name.Reset()
		if data == "" {
			return
		}
		lastAdded = t.add(data, cursor)
	}

	for _, r := range fragment {
		switch r {
		case ',':
			emit()
			lastAdded = NoParent
		case '>':
			emit()
			lastAdded = NoParent
			if parent := t.nodes[cursor].Parent; parent != NoParent {
				cursor = parent
			}
		default:
			name.WriteRune(r)
		}
	}
	emit()

	if opens && lastAdded != NoParent {
		return lastAdded
	}
	return cursor
}

func (t *Tree) add(data string, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	node := Node{Data: data, Parent: parent}
	if parent != NoParent {
		node.Index = len(t.nodes[parent].Children)
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	}
	t.nodes = append(t.nodes, node)
	return id
}

// Root returns the root node id.
func (t *Tree) Root() NodeID { return 0 }

// Node returns a copy of the node with the given id.
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// ToGenerics pairs the root, rendered with positional placeholders, with
// its fully reassembled arguments: "A<B<C>,D>" becomes
// ["A<T0,T1>", "B<C>", "D"].
func (t *Tree) ToGenerics() []string {
	root := t.nodes[t.Root()]
	out := []string{WithPlaceholders(root.Data, len(root.Children))}
	for _, child := range root.Children {
		var b strings.Builder
		t.format(child, Identity, &b)
		out = append(out, b.String())
	}
	return out
}

// Refs flattens the tree depth-first into every reference it mentions.
// Nodes with children are rendered with positional placeholders, so
// "A<B<C>,D>" yields ["A<T0,T1>", "B<T0>", "C", "D"].
func (t *Tree) Refs() []string {
	var out []string
	t.collect(t.Root(), &out)
	return out
}

func (t *Tree) collect(id NodeID, out *[]string) {
	node := t.nodes[id]
	*out = append(*out, WithPlaceholders(node.Data, len(node.Children)))
	for _, child := range node.Children {
		t.collect(child, out)
	}
}

// WithPlaceholders renders name with arity positional placeholders. The
// placeholders are joined without a space to match the type registry keys.
func WithPlaceholders(name string, arity int) string {
	if arity == 0 {
		return name
	}
	params := make([]string, arity)
	for i := range params {
		params[i] = "T" + strconv.Itoa(i)
	}
	return name + "<" + strings.Join(params, ",") + ">"
}

// String reassembles the bracket notation using the tree's mapper.
func (t *Tree) String() string {
	return t.Format(t.mapper)
}

// Format reassembles the bracket notation, applying mapper to every node.
// Arguments are joined with ", ".
func (t *Tree) Format(mapper Mapper) string {
	if mapper == nil {
		mapper = Identity
	}
	var b strings.Builder
	t.format(t.Root(), mapper, &b)
	return b.String()
}

func (t *Tree) format(id NodeID, mapper Mapper, b *strings.Builder) {
	node := t.nodes[id]
	b.WriteString(mapper(node.Data))
	for i, child := range node.Children {
		if i == 0 {
			b.WriteByte('<')
		} else {
			b.WriteString(", ")
		}
		t.format(child, mapper, b)
	}
	if len(node.Children) > 0 {
		b.WriteByte('>')
	}
}
