package models

import "sort"

// ImportKeyword selects between value and type-only imports.
type ImportKeyword string

const (
	ImportKeywordValue ImportKeyword = "value"
	ImportKeywordType  ImportKeyword = "type"
)

// ImportKey identifies an import: two imports with the same key are merged.
type ImportKey struct {
	Path    string
	Keyword ImportKeyword
}

// Import is a single import statement of a generated file. Refs are the
// fully qualified source types that caused the import; Specifiers are the
// imported client names. Both are kept sorted and free of duplicates.
type Import struct {
	Path       string        `json:"path"`
	Keyword    ImportKeyword `json:"keyword"`
	Refs       []string      `json:"refs"`
	Specifiers []string      `json:"specifiers"`
	Alias      string        `json:"alias,omitempty"`
}

// NewImport creates an empty import of path.
func NewImport(path string, keyword ImportKeyword) *Import {
	return &Import{
		Path:       path,
		Keyword:    keyword,
		Refs:       make([]string, 0),
		Specifiers: make([]string, 0),
	}
}

// Key returns the identity of the import.
func (i *Import) Key() ImportKey {
	return ImportKey{Path: i.Path, Keyword: i.Keyword}
}

// AddRefs adds source references, ignoring duplicates.
func (i *Import) AddRefs(refs ...string) *Import {
	i.Refs = union(i.Refs, refs)
	return i
}

// AddSpecifiers adds imported names, ignoring duplicates.
func (i *Import) AddSpecifiers(specifiers ...string) *Import {
	i.Specifiers = union(i.Specifiers, specifiers)
	return i
}

// Merge unions the refs and specifiers of other into i. Imports with a
// different key are left untouched and Merge reports false.
func (i *Import) Merge(other *Import) bool {
	if other == nil || i.Key() != other.Key() {
		return false
	}
	i.AddRefs(other.Refs...)
	i.AddSpecifiers(other.Specifiers...)
	if i.Alias == "" || (other.Alias != "" && other.Alias < i.Alias) {
		i.Alias = other.Alias
	}
	return true
}

// Clone returns a deep copy of the import.
func (i *Import) Clone() *Import {
	clone := NewImport(i.Path, i.Keyword)
	clone.Alias = i.Alias
	clone.Refs = append(clone.Refs, i.Refs...)
	clone.Specifiers = append(clone.Specifiers, i.Specifiers...)
	return clone
}

func union(existing, added []string) []string {
	seen := make(map[string]bool, len(existing)+len(added))
	out := make([]string, 0, len(existing)+len(added))
	for _, list := range [][]string{existing, added} {
		for _, s := range list {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
