// Package typemap translates backend type names from the API description
// into client-side type annotations.
package typemap

import (
	"strings"

	"github.com/toyz/proxygen/internal/generics"
)

// Target primitives.
const (
	String  = "string"
	Number  = "number"
	Boolean = "boolean"
	Void    = "void"
	Any     = "any"
)

// NullableMarker suffixes a nullable type in the API description.
const NullableMarker = "?"

var primitives = buildPrimitiveTable(map[string][]string{
	String: {
		"System.String", "System.Guid", "System.DateTime", "System.DateTimeOffset",
		"System.TimeSpan", "System.Char", "System.Uri", "string", "guid", "char",
	},
	Number: {
		"System.Int16", "System.Int32", "System.Int64", "System.UInt16", "System.UInt32",
		"System.UInt64", "System.Byte", "System.SByte", "System.Single", "System.Double",
		"System.Decimal", "number", "int", "long", "short", "byte", "float", "double", "decimal",
	},
	Boolean: {"System.Boolean", "boolean", "bool"},
	Void:    {"System.Void", "void"},
	Any:     {"System.Object", "object", "any"},
})

func buildPrimitiveTable(groups map[string][]string) map[string]string {
	table := make(map[string]string)
	for target, sources := range groups {
		for _, source := range sources {
			table[strings.ToLower(source)] = target
		}
	}
	return table
}

// Simplify maps a single (non-generic) backend type name to its client
// name. Primitive categories map to target primitives; any other name keeps
// only its last namespace segment. A nullability marker and array brackets
// wrapping the name are preserved: "[Acme.BookDto]?" -> "[BookDto]?".
func Simplify(typ string) string {
	typ = strings.TrimSpace(typ)
	if strings.Contains(typ, "<") || isDictionary(typ) {
		return Adapt(typ)
	}

	if strings.HasSuffix(typ, NullableMarker) {
		return Simplify(strings.TrimSuffix(typ, NullableMarker)) + NullableMarker
	}
	if strings.HasPrefix(typ, "[") && strings.HasSuffix(typ, "]") {
		return "[" + Simplify(typ[1:len(typ)-1]) + "]"
	}
	if strings.HasSuffix(typ, "[]") {
		return Simplify(strings.TrimSuffix(typ, "[]")) + "[]"
	}

	if target, ok := primitives[strings.ToLower(typ)]; ok {
		return target
	}
	if i := strings.LastIndex(typ, "."); i >= 0 {
		return typ[i+1:]
	}
	return typ
}

// NormalizeTypeAnnotations rewrites array notation "[T]" to "T[]" and strips
// nullability markers. Clean input is returned unchanged.
func NormalizeTypeAnnotations(typ string) string {
	return rewriteArrays(strings.ReplaceAll(typ, NullableMarker, ""))
}

func rewriteArrays(typ string) string {
	var b strings.Builder
	for i := 0; i < len(typ); i++ {
		if typ[i] == '[' && (i+1 >= len(typ) || typ[i+1] != ']') {
			end := matchingBracket(typ, i)
			if end < 0 {
				b.WriteString(typ[i:])
				break
			}
			b.WriteString(rewriteArrays(typ[i+1 : end]))
			b.WriteString("[]")
			i = end
			continue
		}
		b.WriteByte(typ[i])
	}
	return b.String()
}

func matchingBracket(typ string, open int) int {
	depth := 0
	for i := open; i < len(typ); i++ {
		switch typ[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Adapt simplifies every node of a possibly generic, possibly wrapped type
// expression. Dictionary notation "{K:V}" becomes "Record<K, V>".
// Nullability and array wrappers are kept for NormalizeTypeAnnotations.
func Adapt(typ string) string {
	typ = strings.TrimSpace(typ)
	switch {
	case typ == "":
		return typ
	case strings.HasSuffix(typ, NullableMarker):
		return Adapt(strings.TrimSuffix(typ, NullableMarker)) + NullableMarker
	case isDictionary(typ):
		key, value := SplitDictionary(typ)
		return "Record<" + Adapt(key) + ", " + Adapt(value) + ">"
	case strings.HasPrefix(typ, "[") && strings.HasSuffix(typ, "]"):
		return "[" + Adapt(typ[1:len(typ)-1]) + "]"
	}

	return generics.Parse(typ).Format(Simplify)
}

// AdaptAnnotation is Adapt followed by NormalizeTypeAnnotations: the final
// client annotation of a type.
func AdaptAnnotation(typ string) string {
	return NormalizeTypeAnnotations(Adapt(typ))
}

func isDictionary(typ string) bool {
	return strings.HasPrefix(typ, "{") && strings.HasSuffix(typ, "}")
}

// SplitDictionary splits "{K:V}" into its key and value types. The split is
// made on the first ':' outside of any nested generic or dictionary.
func SplitDictionary(typ string) (key, value string) {
	inner := strings.TrimSuffix(strings.TrimPrefix(typ, "{"), "}")
	depth := 0
	for i, r := range inner {
		switch r {
		case '<', '{', '[':
			depth++
		case '>', '}', ']':
			depth--
		case ':':
			if depth == 0 {
				return strings.TrimSpace(inner[:i]), strings.TrimSpace(inner[i+1:])
			}
		}
	}
	return strings.TrimSpace(inner), ""
}

// FlattenTypes turns a raw type into the list of top-level type strings it
// mentions: dictionaries contribute their key and value, every other type
// contributes itself. Array brackets and nullability markers are removed.
func FlattenTypes(typ string) []string {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return nil
	}
	if isDictionary(typ) {
		key, value := SplitDictionary(typ)
		return append(FlattenTypes(key), FlattenTypes(value)...)
	}

	clean := strings.NewReplacer("[", "", "]", "", NullableMarker, "").Replace(typ)
	return []string{strings.TrimSpace(clean)}
}

// ExtractRefs returns every reference mentioned by a raw type: generic
// containers with positional placeholders and their leaf arguments.
// "{System.String:[Acme.Dto]}" -> ["System.String", "Acme.Dto"].
func ExtractRefs(typ string) []string {
	var refs []string
	for _, flat := range FlattenTypes(typ) {
		if flat == "" {
			continue
		}
		refs = append(refs, generics.Parse(flat).Refs()...)
	}
	return refs
}

// StripGenerics removes the generic argument list from a type name.
func StripGenerics(typ string) string {
	if i := strings.Index(typ, "<"); i >= 0 {
		return typ[:i]
	}
	return typ
}
