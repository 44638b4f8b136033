package models

// Optional marks a property or parameter that may be omitted.
const Optional = "?"

// Property is a generated property or method parameter.
type Property struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Optional string   `json:"optional"`          // "" or "?"
	Default  string   `json:"default,omitempty"` // client expression, "" when none
	Refs     []string `json:"refs,omitempty"`    // source references used for import resolution
}

// IsOptional reports whether the property carries the optional marker.
func (p *Property) IsOptional() bool {
	return p.Optional == Optional
}

// Interface is a generated client interface for one source type.
type Interface struct {
	Identifier string      `json:"identifier"`
	Namespace  string      `json:"namespace"`
	Base       string      `json:"base,omitempty"`
	Ref        string      `json:"ref"`
	Properties []*Property `json:"properties"`
}

// Model is the models file of a namespace.
type Model struct {
	Namespace  string       `json:"namespace"`
	Path       string       `json:"path"`
	Imports    []*Import    `json:"imports"`
	Interfaces []*Interface `json:"interfaces"`
}

// NewModel creates an empty model for namespace ns stored at path.
func NewModel(ns, path string) *Model {
	return &Model{
		Namespace:  ns,
		Path:       path,
		Imports:    make([]*Import, 0),
		Interfaces: make([]*Interface, 0),
	}
}

// HasInterface reports whether an interface with identifier exists.
func (m *Model) HasInterface(identifier string) bool {
	for _, iface := range m.Interfaces {
		if iface.Identifier == identifier {
			return true
		}
	}
	return false
}

// AddInterface appends iface unless its identifier is already present.
func (m *Model) AddInterface(iface *Interface) bool {
	if m.HasInterface(iface.Identifier) {
		return false
	}
	m.Interfaces = append(m.Interfaces, iface)
	return true
}

// EnumMember is a single key/value pair of an enum.
type EnumMember struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// EnumDescriptor is a generated client enum.
type EnumDescriptor struct {
	Namespace string       `json:"namespace"`
	Name      string       `json:"name"`
	Path      string       `json:"path"`
	Ref       string       `json:"ref"`
	Members   []EnumMember `json:"members"`
}
