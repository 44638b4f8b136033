package generics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Structure(t *testing.T) {
	tree := Parse("A<B<C>,D>")
	require.Equal(t, 4, tree.Len())

	root := tree.Node(tree.Root())
	assert.Equal(t, "A", root.Data)
	assert.Equal(t, NoParent, root.Parent)
	require.Len(t, root.Children, 2)

	b := tree.Node(root.Children[0])
	d := tree.Node(root.Children[1])
	assert.Equal(t, "B", b.Data)
	assert.Equal(t, 0, b.Index)
	assert.Equal(t, "D", d.Data)
	assert.Equal(t, 1, d.Index)
	assert.Equal(t, tree.Root(), d.Parent)

	require.Len(t, b.Children, 1)
	c := tree.Node(b.Children[0])
	assert.Equal(t, "C", c.Data)
	assert.Equal(t, root.Children[0], c.Parent)
}

func TestToGenerics(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"User", []string{"User"}},
		{"List<User>", []string{"List<T0>", "User"}},
		{"Dictionary<string,int>", []string{"Dictionary<T0,T1>", "string", "int"}},
		{"Dictionary<string, int>", []string{"Dictionary<T0,T1>", "string", "int"}},
		{"A<B<C>,D>", []string{"A<T0,T1>", "B<C>", "D"}},
		{"A<B,C<D>>", []string{"A<T0,T1>", "B", "C<D>"}},
		{"A<B<C<D>>>", []string{"A<T0>", "B<C<D>>"}},
		{"A<B<C,D>>", []string{"A<T0>", "B<C, D>"}},
		{
			"Volo.Abp.Application.Dtos.PagedResultDto<Acme.Books.BookDto>",
			[]string{"Volo.Abp.Application.Dtos.PagedResultDto<T0>", "Acme.Books.BookDto"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input).ToGenerics())
		})
	}
}

func TestRefs(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"User", []string{"User"}},
		{"List<User>", []string{"List<T0>", "User"}},
		{"A<B<C>,D>", []string{"A<T0,T1>", "B<T0>", "C", "D"}},
		{"A<B,C<D>>", []string{"A<T0,T1>", "B", "C<T0>", "D"}},
		{"A<B<C<D>>>", []string{"A<T0>", "B<T0>", "C<T0>", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input).Refs())
		})
	}
}

func TestToGenerics_HeadArity(t *testing.T) {
	// the head placeholder count always equals the top-level argument count
	inputs := []string{"X<A>", "X<A,B>", "X<A<B>,C,D<E,F>>", "X<A<B<C>>,D>"}
	for _, input := range inputs {
		tree := Parse(input)
		head := tree.ToGenerics()[0]
		arity := len(tree.Node(tree.Root()).Children)
		assert.Equal(t, WithPlaceholders("X", arity), head, input)
		assert.Equal(t, arity, strings.Count(head, "T"), input)
	}
}

func TestFormat(t *testing.T) {
	upper := func(s string) string { return strings.ToUpper(s) }

	tests := []struct {
		input    string
		mapper   Mapper
		expected string
	}{
		{"a", nil, "a"},
		{"List<User>", nil, "List<User>"},
		{"A<B<C>,D>", nil, "A<B<C>, D>"},
		{"a<b,c<d>>", upper, "A<B, C<D>>"},
		{"x.y.Outer<x.y.Inner<x.Leaf>>", func(s string) string { return s[strings.LastIndex(s, ".")+1:] }, "Outer<Inner<Leaf>>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input).Format(tt.mapper))
		})
	}
}

func TestParseWithMapper_String(t *testing.T) {
	tree := ParseWithMapper("list<item>", strings.ToUpper)
	assert.Equal(t, "LIST<ITEM>", tree.String())
	assert.Equal(t, "list<item>", tree.Format(Identity))
}

func TestParse_UnbalancedClosers(t *testing.T) {
	tree := Parse("A<B>>>")
	assert.Equal(t, []string{"A<T0>", "B"}, tree.ToGenerics())
	assert.Equal(t, "A<B>", tree.String())
}

func TestWithPlaceholders(t *testing.T) {
	assert.Equal(t, "Name", WithPlaceholders("Name", 0))
	assert.Equal(t, "Name<T0>", WithPlaceholders("Name", 1))
	assert.Equal(t, "Name<T0,T1,T2>", WithPlaceholders("Name", 3))
}
