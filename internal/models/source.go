package models

// APIDefinition is the reflection-derived description of a backend's HTTP
// surface and data types.
type APIDefinition struct {
	Modules map[string]ModuleDefinition `json:"modules" validate:"required,dive"`
	Types   TypeRegistry                `json:"types" validate:"required,dive"`
}

// ModuleDefinition is a remote service exposed by the backend.
type ModuleDefinition struct {
	RootPath          string                          `json:"rootPath" validate:"required"`
	RemoteServiceName string                          `json:"remoteServiceName" validate:"required"`
	Controllers       map[string]ControllerDefinition `json:"controllers" validate:"dive"`
}

// ControllerDefinition groups the actions of one backend controller.
type ControllerDefinition struct {
	ControllerName string                      `json:"controllerName" validate:"required"`
	Type           string                      `json:"type" validate:"required"`
	Actions        map[string]ActionDefinition `json:"actions" validate:"dive"`
}

// ActionDefinition is a single HTTP endpoint.
type ActionDefinition struct {
	UniqueName         string                      `json:"uniqueName" validate:"required"`
	Name               string                      `json:"name"`
	HTTPMethod         string                      `json:"httpMethod" validate:"required,httpmethod"`
	URL                string                      `json:"url" validate:"required"`
	ParametersOnMethod []MethodParameterDefinition `json:"parametersOnMethod" validate:"dive"`
	Parameters         []ParameterDefinition       `json:"parameters" validate:"dive"`
	ReturnValue        ReturnValueDefinition       `json:"returnValue"`
}

// MethodParameterDefinition is a parameter of the server-side method.
type MethodParameterDefinition struct {
	Name         string      `json:"name" validate:"required"`
	TypeAsString string      `json:"typeAsString,omitempty"`
	Type         string      `json:"type" validate:"required"`
	TypeSimple   string      `json:"typeSimple" validate:"required"`
	IsOptional   bool        `json:"isOptional"`
	DefaultValue interface{} `json:"defaultValue"`
}

// ParameterDefinition is an HTTP-level parameter together with how the
// framework binds it.
type ParameterDefinition struct {
	NameOnMethod    string        `json:"nameOnMethod" validate:"required"`
	Name            string        `json:"name" validate:"required"`
	JSONName        string        `json:"jsonName,omitempty"`
	Type            string        `json:"type"`
	TypeSimple      string        `json:"typeSimple"`
	IsOptional      bool          `json:"isOptional"`
	DefaultValue    interface{}   `json:"defaultValue"`
	BindingSourceID BindingSource `json:"bindingSourceId"`
	DescriptorName  string        `json:"descriptorName"`
}

// ReturnValueDefinition is the declared return type of an action.
type ReturnValueDefinition struct {
	Type       string `json:"type"`
	TypeSimple string `json:"typeSimple"`
}

// TypeDefinition describes a DTO, enum or generic type definition.
type TypeDefinition struct {
	BaseType         string               `json:"baseType,omitempty"`
	IsEnum           bool                 `json:"isEnum"`
	EnumNames        []string             `json:"enumNames,omitempty"`
	EnumValues       []interface{}        `json:"enumValues,omitempty"`
	GenericArguments []string             `json:"genericArguments,omitempty"`
	Properties       []PropertyDefinition `json:"properties,omitempty" validate:"dive"`
}

// PropertyDefinition is a property of a DTO.
type PropertyDefinition struct {
	Name       string `json:"name" validate:"required"`
	JSONName   string `json:"jsonName,omitempty"`
	Type       string `json:"type" validate:"required"`
	TypeSimple string `json:"typeSimple" validate:"required"`
	IsRequired bool   `json:"isRequired"`
}

// BindingSource classifies how an HTTP parameter is supplied.
type BindingSource string

const (
	BindingSourcePath     BindingSource = "Path"
	BindingSourceQuery    BindingSource = "Query"
	BindingSourceModel    BindingSource = "ModelBinding"
	BindingSourceBody     BindingSource = "Body"
	BindingSourceForm     BindingSource = "Form"
	BindingSourceFormFile BindingSource = "FormFile"
	BindingSourceHeader   BindingSource = "Header"
	BindingSourceCustom   BindingSource = "Custom"
	BindingSourceServices BindingSource = "Services"
)

// TypeRegistry indexes type definitions by fully qualified name.
type TypeRegistry map[string]TypeDefinition

// Lookup returns the definition of ref.
func (r TypeRegistry) Lookup(ref string) (TypeDefinition, bool) {
	def, ok := r[ref]
	return def, ok
}

// IsEnum reports whether ref is a known enum type.
func (r TypeRegistry) IsEnum(ref string) bool {
	def, ok := r[ref]
	return ok && def.IsEnum
}
