package urltemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"api/app/book",
		"api/app/book/{id}",
		"api/app/book/{id}/chapters/{chapterId:int}",
		"api/{tenant?}/x",
		"api/broken{/x",
		"api/broken}/x",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tmpl, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, input, tmpl.String())
		})
	}
}

func TestSegment_Name(t *testing.T) {
	tmpl, err := Parse("api/{tenant?}/book/{id:guid}/chapters/{ChapterId}")
	require.NoError(t, err)

	var names []string
	for _, s := range tmpl.Segments {
		if name := s.Name(); name != "" {
			names = append(names, name)
		}
	}
	assert.Equal(t, []string{"tenant", "id", "ChapterId"}, names)
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		param    string
		expr     string
		expected string
		count    int
	}{
		{"single", "api/app/book/{id}", "id", "id", "api/app/book/${id}", 1},
		{"case insensitive", "api/app/book/{Id}", "id", "input.id", "api/app/book/${input.id}", 1},
		{"constraint", "api/app/book/{id:guid}", "id", "id", "api/app/book/${id}", 1},
		{"every occurrence", "api/{id}/x/{id}", "id", "id", "api/${id}/x/${id}", 2},
		{"no match", "api/app/book/{id}", "name", "name", "api/app/book/{id}", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Parse(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.count, tmpl.Interpolate(tt.param, tt.expr))
			assert.Equal(t, tt.expected, tmpl.String())
		})
	}
}

func TestInterpolate_Sequential(t *testing.T) {
	tmpl, err := Parse("api/book/{bookId}/chapter/{id}")
	require.NoError(t, err)

	tmpl.Interpolate("id", "id")
	tmpl.Interpolate("bookId", "bookId")

	assert.Equal(t, "api/book/${bookId}/chapter/${id}", tmpl.String())
	for _, s := range tmpl.Segments {
		assert.Nil(t, s.Placeholder)
	}
	assert.True(t, IsInterpolated(tmpl.String()))
	assert.False(t, IsInterpolated("api/book"))
}
