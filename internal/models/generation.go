package models

// GeneratedModule is the complete client model of one backend module,
// ready to be rendered into source files.
type GeneratedModule struct {
	Name              string            `json:"name"`
	RootPath          string            `json:"rootPath"`
	RemoteServiceName string            `json:"remoteServiceName"`
	Services          []*Service        `json:"services"`
	Models            []*Model          `json:"models"`
	Enums             []*EnumDescriptor `json:"enums"`
}

// InterfaceCount returns the number of interfaces across all models.
func (m *GeneratedModule) InterfaceCount() int {
	count := 0
	for _, model := range m.Models {
		count += len(model.Interfaces)
	}
	return count
}

// MethodCount returns the number of methods across all services.
func (m *GeneratedModule) MethodCount() int {
	count := 0
	for _, service := range m.Services {
		count += len(service.Methods)
	}
	return count
}
