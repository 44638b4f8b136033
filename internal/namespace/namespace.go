// Package namespace derives the logical grouping namespace of backend types
// and controllers and computes relative import paths between namespaces.
package namespace

import (
	"strings"

	"github.com/toyz/proxygen/internal/typemap"
	"github.com/toyz/proxygen/internal/utils"
)

const (
	separator       = "."
	controllersPart = "Controllers"
)

// Parse returns the grouping namespace of a fully qualified type or
// controller name. Generic arguments and the type name itself are dropped,
// the solution root namespace is stripped (matched right to left, one
// segment at a time) and a "Controllers" segment directly after the root or
// at the end is removed.
//
//	Parse("Acme.BookStore", "Acme.BookStore.Books.BookDto")                 == "Books"
//	Parse("Acme.BookStore", "Acme.BookStore.Controllers.Books.BookController") == "Books"
//	Parse("Acme.BookStore", "Volo.Abp.Application.Dtos.PagedResultDto<T0>") == "Volo.Abp.Application.Dtos"
func Parse(root, fqName string) string {
	segments := strings.Split(typemap.StripGenerics(fqName), separator)
	ns := segments[:len(segments)-1]

	rootSegments := splitNonEmpty(root)
	for i := len(rootSegments) - 1; i >= 0; i-- {
		suffix := rootSegments[i:]
		if hasPrefix(ns, suffix) {
			ns = ns[len(suffix):]
			if len(ns) > 0 && ns[0] == controllersPart {
				ns = ns[1:]
			}
		}
	}

	if len(ns) > 0 && ns[len(ns)-1] == controllersPart {
		ns = ns[:len(ns)-1]
	}

	return strings.Join(ns, separator)
}

// CalculateRelativePath returns the relative path from the directory of
// namespace from to the directory of namespace to. The common leading
// segments are removed, every remaining segment of from becomes "../" and
// every remaining segment of to becomes a kebab-cased path segment.
// Identical namespaces yield ".".
func CalculateRelativePath(from, to string) string {
	if from == to {
		return "."
	}

	left := splitNonEmpty(from)
	right := splitNonEmpty(to)
	for len(left) > 0 && len(right) > 0 && left[0] == right[0] {
		left = left[1:]
		right = right[1:]
	}

	up := strings.Repeat("../", len(left))
	if up == "" {
		up = "./"
	}

	down := make([]string, len(right))
	for i, segment := range right {
		down[i] = utils.KebabCase(segment)
	}

	return strings.TrimSuffix(up+strings.Join(down, "/"), "/")
}

// Dir returns the directory of a namespace: kebab-cased segments joined
// with "/". The empty namespace is the current directory ".".
func Dir(ns string) string {
	segments := splitNonEmpty(ns)
	if len(segments) == 0 {
		return "."
	}
	for i, segment := range segments {
		segments[i] = utils.KebabCase(segment)
	}
	return strings.Join(segments, "/")
}

// ModelsFile is the file holding every interface of a namespace.
const ModelsFile = "models"

// ModelPath is the path of the models file of namespace ns.
func ModelPath(ns string) string {
	return join(Dir(ns), ModelsFile)
}

// EnumPath is the path of the file of enum name in namespace ns.
func EnumPath(ns, name string) string {
	return join(Dir(ns), EnumFile(name))
}

// EnumFile is the base file name of an enum.
func EnumFile(name string) string {
	return utils.KebabCase(name) + ".enum"
}

// ServicePath is the path of the service file of a controller.
func ServicePath(ns, controllerName string) string {
	return join(Dir(ns), utils.KebabCase(controllerName)+".service")
}

// ModelImportPath is the import path of the models file of namespace to,
// seen from a file in namespace from.
func ModelImportPath(from, to string) string {
	return CalculateRelativePath(from, to) + "/" + ModelsFile
}

// EnumImportPath is the import path of enum name of namespace to, seen from
// a file in namespace from.
func EnumImportPath(from, to, name string) string {
	return CalculateRelativePath(from, to) + "/" + EnumFile(name)
}

func join(dir, file string) string {
	if dir == "." {
		return file
	}
	return dir + "/" + file
}

func splitNonEmpty(ns string) []string {
	var out []string
	for _, segment := range strings.Split(ns, separator) {
		if segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

func hasPrefix(ns, prefix []string) bool {
	if len(prefix) > len(ns) {
		return false
	}
	for i := range prefix {
		if ns[i] != prefix[i] {
			return false
		}
	}
	return true
}
