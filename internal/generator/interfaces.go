package generator

import "github.com/toyz/proxygen/internal/models"

// ModuleGenerator turns a module of an API description into its client IR
type ModuleGenerator interface {
	GenerateModule(def *models.APIDefinition, name string) (*models.GeneratedModule, error)
	GenerateAll(def *models.APIDefinition, names []string, recorder Recorder) ([]*models.GeneratedModule, error)
}

// Recorder records the name of every fully generated module
type Recorder interface {
	Record(name string) error
}

// Reporter receives progress output. *utils.DiagnosticSystem satisfies it.
type Reporter interface {
	Verbose(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

type silentReporter struct{}

func (silentReporter) Verbose(string, ...interface{}) {}
func (silentReporter) Debug(string, ...interface{})   {}
