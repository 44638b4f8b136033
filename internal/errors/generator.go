package errors

import "fmt"

// Errors raised while turning an API description into client models.
// Every constructor interpolates the offending identifier into the message.

// ModuleNotFound is returned when a requested module is absent from the
// module table of the API description.
func ModuleNotFound(name string, available []string) *BaseError {
	err := Newf(ConfigurationErrorCode, "module '%s' was not found in the API description", name).
		WithContext("module", name).
		WithContext("available_modules", available)
	if len(available) > 0 {
		err.WithSuggestion(fmt.Sprintf("Use one of the available modules: %v", available))
	}
	return err.WithSuggestion("Make sure the backend exposes the module as a remote service")
}

// RegistryMissing is returned when the module or type table of the API
// description is absent.
func RegistryMissing(kind string) *BaseError {
	return Newf(ConfigurationErrorCode, "the API description has no %s registry", kind).
		WithContext("registry", kind).
		WithSuggestion("Fetch the description with type information included")
}

// EnumDataMissing is returned when an enum type lacks its names or values.
func EnumDataMissing(ref, field string) *BaseError {
	return Newf(SchemaErrorCode, "enum '%s' has no %s", ref, field).
		WithContext("type_name", ref).
		WithContext("field", field)
}

// EnumDataMismatch is returned when enum names and values differ in length.
func EnumDataMismatch(ref string, names, values int) *BaseError {
	return Newf(SchemaErrorCode, "enum '%s' has %d names but %d values", ref, names, values).
		WithContext("type_name", ref).
		WithContext("names", names).
		WithContext("values", values)
}

// MultipleBodyParameters is returned when an action binds more than one
// parameter to the request body.
func MultipleBodyParameters(action, first, second string) *BaseError {
	return Newf(ValidationErrorCode, "action '%s' binds both '%s' and '%s' to the request body", action, first, second).
		WithContext("action", action).
		WithContext("parameter_name", second).
		WithSuggestion("Combine the body parameters into a single input type")
}

// InvalidURLTemplate is returned when an action URL cannot be tokenized.
func InvalidURLTemplate(url string, cause error) *BaseError {
	return Wrapf(ValidationErrorCode, cause, "invalid url template '%s'", url).
		WithContext("route_path", url)
}

// WrapModuleError attaches the module name to a generation failure.
func WrapModuleError(module string, cause error) *BaseError {
	return Wrap(CodeOf(cause), fmt.Sprintf("failed to generate module '%s'", module), cause).
		WithContext("module", module)
}

// WrapSourceError wraps a failure to obtain the API description.
func WrapSourceError(operation, location string, cause error) *BaseError {
	return Wrapf(SourceErrorCode, cause, "failed to %s API description from '%s'", operation, location).
		WithContext("operation", operation).
		WithContext("location", location)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	return Wrapf(FileSystemErrorCode, cause, "failed to %s file '%s'", operation, path).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	return Wrapf(ConfigurationErrorCode, cause, "failed to %s configuration '%s'", operation, configType).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// InvalidField reports a structurally invalid field of the description.
func InvalidField(namespace, tag, param string) *BaseError {
	msg := fmt.Sprintf("field '%s' failed '%s' validation", namespace, tag)
	if param != "" {
		msg = fmt.Sprintf("field '%s' failed '%s=%s' validation", namespace, tag, param)
	}
	return New(ValidationErrorCode, msg).
		WithContext("field", namespace).
		WithContext("rule", tag)
}
