package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"System.String", "string"},
		{"System.Guid", "string"},
		{"System.DateTime", "string"},
		{"System.Int32", "number"},
		{"System.Decimal", "number"},
		{"System.Boolean", "boolean"},
		{"System.Void", "void"},
		{"System.Object", "any"},
		{"Acme.BookStore.Books.BookDto", "BookDto"},
		{"BookDto", "BookDto"},
		{"System.Int32?", "number?"},
		{"[Acme.Books.BookDto]", "[BookDto]"},
		{"[Acme.Books.BookDto]?", "[BookDto]?"},
		{"Acme.Books.BookDto[]", "BookDto[]"},
		{"Volo.Abp.Application.Dtos.PagedResultDto<Acme.Books.BookDto>", "PagedResultDto<BookDto>"},
		{"{System.String:System.Int32}", "Record<string, number>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Simplify(tt.input))
		})
	}
}

func TestSimplify_IdempotentOnPrimitives(t *testing.T) {
	for _, p := range []string{String, Number, Boolean, Void, Any} {
		once := Simplify(p)
		assert.Equal(t, p, once)
		assert.Equal(t, once, Simplify(once))
	}
}

func TestNormalizeTypeAnnotations(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"T", "T"},
		{"[T]?", "T[]"},
		{"[T]", "T[]"},
		{"string?", "string"},
		{"[[T]]", "T[][]"},
		{"T[]", "T[]"},
		{"PagedResultDto<[BookDto]>", "PagedResultDto<BookDto[]>"},
		{"Record<string, [number?]>", "Record<string, number[]>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTypeAnnotations(tt.input))
		})
	}
}

func TestAdapt(t *testing.T) {
	tests := []struct {
		input      string
		adapted    string
		annotation string
	}{
		{"System.String", "string", "string"},
		{"System.String?", "string?", "string"},
		{"[Acme.Books.BookDto]", "[BookDto]", "BookDto[]"},
		{
			"Volo.Abp.Application.Dtos.PagedResultDto<Acme.Books.BookDto>",
			"PagedResultDto<BookDto>",
			"PagedResultDto<BookDto>",
		},
		{
			"Acme.Shared.Pair<System.Guid,Acme.Shared.Wrapper<Acme.Books.BookDto>>",
			"Pair<string, Wrapper<BookDto>>",
			"Pair<string, Wrapper<BookDto>>",
		},
		{"{System.String:[System.Int32]}", "Record<string, [number]>", "Record<string, number[]>"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.adapted, Adapt(tt.input))
			assert.Equal(t, tt.annotation, AdaptAnnotation(tt.input))
		})
	}
}

func TestSplitDictionary(t *testing.T) {
	key, value := SplitDictionary("{System.String:Acme.Pair<System.Int32,System.String>}")
	assert.Equal(t, "System.String", key)
	assert.Equal(t, "Acme.Pair<System.Int32,System.String>", value)

	key, value = SplitDictionary("{System.String:{System.String:System.Int32}}")
	assert.Equal(t, "System.String", key)
	assert.Equal(t, "{System.String:System.Int32}", value)
}

func TestExtractRefs(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Acme.Books.BookDto", []string{"Acme.Books.BookDto"}},
		{"[Acme.Books.BookDto]?", []string{"Acme.Books.BookDto"}},
		{
			"Volo.Abp.Application.Dtos.PagedResultDto<Acme.Books.BookDto>",
			[]string{"Volo.Abp.Application.Dtos.PagedResultDto<T0>", "Acme.Books.BookDto"},
		},
		{"{System.String:[Acme.Dto]}", []string{"System.String", "Acme.Dto"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractRefs(tt.input))
		})
	}
}

func TestStripGenerics(t *testing.T) {
	assert.Equal(t, "Acme.PagedResultDto", StripGenerics("Acme.PagedResultDto<T0>"))
	assert.Equal(t, "Acme.BookDto", StripGenerics("Acme.BookDto"))
}
