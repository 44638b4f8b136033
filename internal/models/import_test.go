package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImport_AddDeduplicatesAndSorts(t *testing.T) {
	imp := NewImport("./models", ImportKeywordType).
		AddSpecifiers("ZetaDto", "AlphaDto", "ZetaDto").
		AddRefs("Acme.ZetaDto", "Acme.AlphaDto", "Acme.AlphaDto")

	assert.Equal(t, []string{"AlphaDto", "ZetaDto"}, imp.Specifiers)
	assert.Equal(t, []string{"Acme.AlphaDto", "Acme.ZetaDto"}, imp.Refs)
}

func TestImport_MergeSameKey(t *testing.T) {
	a := NewImport("../books/models", ImportKeywordType).AddSpecifiers("BookDto").AddRefs("Acme.Books.BookDto")
	b := NewImport("../books/models", ImportKeywordType).AddSpecifiers("AuthorDto", "BookDto").AddRefs("Acme.Books.AuthorDto")

	assert.True(t, a.Merge(b))
	assert.Equal(t, []string{"AuthorDto", "BookDto"}, a.Specifiers)
	assert.Equal(t, []string{"Acme.Books.AuthorDto", "Acme.Books.BookDto"}, a.Refs)
}

func TestImport_MergeDifferentKey(t *testing.T) {
	a := NewImport("./models", ImportKeywordType).AddSpecifiers("A")
	b := NewImport("./models", ImportKeywordValue).AddSpecifiers("B")

	assert.False(t, a.Merge(b))
	assert.False(t, a.Merge(nil))
	assert.Equal(t, []string{"A"}, a.Specifiers)
}

func TestImport_MergeCommutativeAndIdempotent(t *testing.T) {
	build := func() (*Import, *Import) {
		x := NewImport("p", ImportKeywordType).AddSpecifiers("B", "A").AddRefs("r2")
		y := NewImport("p", ImportKeywordType).AddSpecifiers("C", "A").AddRefs("r1", "r2")
		return x, y
	}

	x1, y1 := build()
	x1.Merge(y1)

	x2, y2 := build()
	y2.Merge(x2)

	assert.Equal(t, x1.Specifiers, y2.Specifiers)
	assert.Equal(t, x1.Refs, y2.Refs)

	before := x1.Clone()
	x1.Merge(x1.Clone())
	assert.Equal(t, before, x1)
}

func TestImport_MergeAlias(t *testing.T) {
	a := NewImport("p", ImportKeywordValue)
	b := NewImport("p", ImportKeywordValue)
	b.Alias = "core"

	a.Merge(b)
	assert.Equal(t, "core", a.Alias)
}

func TestImport_Clone(t *testing.T) {
	orig := NewImport("p", ImportKeywordType).AddSpecifiers("A")
	clone := orig.Clone()
	clone.AddSpecifiers("B")

	assert.Equal(t, []string{"A"}, orig.Specifiers)
	assert.Equal(t, orig.Key(), clone.Key())
}
