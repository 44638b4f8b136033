package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/proxygen/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return NewDiagnosticReporterWithWriter(verbose, os.Stderr)
}

// NewDiagnosticReporterWithWriter creates a diagnostic reporter writing to out
func NewDiagnosticReporterWithWriter(verbose bool, out io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
	}
}

// ReportWarning provides user-friendly warning reporting
func (r *DiagnosticReporter) ReportWarning(message string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\nERROR: Proxy Generation Failed\n")
	fmt.Fprintf(r.out, "==============================\n\n")

	var genErr errors.GeneratorError
	if stderrors.As(err, &genErr) {
		r.reportGeneratorError(err, genErr)
	} else {
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
	}

	fmt.Fprintf(r.out, "\n")
}

// reportGeneratorError reports a GeneratorError with the context and
// suggestions gathered along its whole chain
func (r *DiagnosticReporter) reportGeneratorError(err error, genErr errors.GeneratorError) {
	r.printErrorHeader(genErr.ErrorCode())

	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	var multi *errors.MultipleErrors
	if stderrors.As(err, &multi) && multi.Count() > 1 {
		fmt.Fprintf(r.out, "Problems:\n")
		for i, problem := range multi.Errors {
			fmt.Fprintf(r.out, "   %d. %s\n", i+1, problem.Error())
		}
		fmt.Fprintf(r.out, "\n")
	}

	context, suggestions := collectChain(err)
	if len(context) > 0 {
		r.printContext(context)
	}
	if len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	r.printAdditionalHelp(genErr.ErrorCode())

	if r.verbose {
		r.printErrorChain(err)
	}
}

// collectChain merges the context and suggestions of every GeneratorError
// in err's chain. Outer errors win on conflicting context keys.
func collectChain(err error) (map[string]interface{}, []string) {
	context := make(map[string]interface{})
	seen := make(map[string]bool)
	var suggestions []string

	for err != nil {
		if genErr, ok := err.(errors.GeneratorError); ok {
			for key, value := range genErr.Context() {
				if _, exists := context[key]; !exists {
					context[key] = value
				}
			}
			for _, s := range genErr.Suggestions() {
				if !seen[s] {
					seen[s] = true
					suggestions = append(suggestions, s)
				}
			}
		}
		if _, ok := err.(*errors.MultipleErrors); ok {
			break
		}
		err = stderrors.Unwrap(err)
	}
	return context, suggestions
}

// printErrorHeader prints a formatted error header based on error code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var errorTypeStr string

	switch code {
	case errors.ConfigurationErrorCode:
		errorTypeStr = "Configuration Error"
	case errors.SchemaErrorCode:
		errorTypeStr = "Type Schema Error"
	case errors.ValidationErrorCode:
		errorTypeStr = "Validation Error"
	case errors.SourceErrorCode:
		errorTypeStr = "API Description Error"
	case errors.GenerationErrorCode:
		errorTypeStr = "Generation Error"
	case errors.FileSystemErrorCode:
		errorTypeStr = "File System Error"
	default:
		errorTypeStr = "Unknown Error"
	}

	fmt.Fprintf(r.out, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
}

// printContext prints context information, important keys first
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")

	importantKeys := []string{"module", "type_name", "action", "route_path", "field"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), value)
			printed[key] = true
		}
	}

	rest := make([]string, 0, len(context))
	for key := range context {
		if !printed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.out, "\n")
}

// formatContextKey formats context keys to be more readable
func formatContextKey(key string) string {
	switch key {
	case "type_name":
		return "Type"
	case "route_path":
		return "URL"
	case "config_type":
		return "Config"
	default:
		parts := strings.Split(key, "_")
		for i, part := range parts {
			if len(part) > 0 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, " ")
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")

	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.out, "      %s\n", line)
			}
		}
	}

	fmt.Fprintf(r.out, "\n")
}

// printAdditionalHelp prints additional help based on error code
func (r *DiagnosticReporter) printAdditionalHelp(code errors.ErrorCode) {
	switch code {
	case errors.SchemaErrorCode:
		fmt.Fprintf(r.out, "Type Schema Help:\n")
		fmt.Fprintf(r.out, "  - Enum types must carry enumNames and enumValues of equal length\n")
		fmt.Fprintf(r.out, "  - Regenerate the API description with type information included\n\n")

	case errors.SourceErrorCode:
		fmt.Fprintf(r.out, "API Description Help:\n")
		fmt.Fprintf(r.out, "  - The backend serves the description at /api/abp/api-definition\n")
		fmt.Fprintf(r.out, "  - A saved description must be the JSON returned by that endpoint\n\n")

	case errors.ConfigurationErrorCode:
		fmt.Fprintf(r.out, "Configuration Help:\n")
		fmt.Fprintf(r.out, "  - Flags override values from proxygen.yaml\n")
		fmt.Fprintf(r.out, "  - Run with -help to list every option\n\n")
	}

	fmt.Fprintf(r.out, "For more help:\n")
	fmt.Fprintf(r.out, "  - Run with -verbose for more detailed output\n")
}

// printErrorChain prints every error of the chain in verbose mode
func (r *DiagnosticReporter) printErrorChain(err error) {
	fmt.Fprintf(r.out, "\nVerbose Debug Information:\n")
	fmt.Fprintf(r.out, "  Error Code: %s\n", errors.CodeOf(err))
	fmt.Fprintf(r.out, "  Error Chain:\n")

	level := 1
	for err != nil {
		fmt.Fprintf(r.out, "    %d. %s\n", level, err.Error())
		err = stderrors.Unwrap(err)
		level++
	}
}
