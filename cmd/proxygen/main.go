package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/toyz/proxygen/internal/cli"
	"github.com/toyz/proxygen/internal/utils"
)

// moduleList collects -module values, repeated or comma separated
type moduleList []string

func (m *moduleList) String() string {
	return strings.Join(*m, ",")
}

func (m *moduleList) Set(value string) error {
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*m = append(*m, name)
		}
	}
	return nil
}

func main() {
	// Define command-line flags
	var modules moduleList
	var (
		configFlag        = flag.String("config", "", "Path of the YAML config file (defaults to "+cli.DefaultConfigFile+" when present)")
		sourceFlag        = flag.String("source", "", "Path of a saved JSON API description")
		urlFlag           = flag.String("url", "", "Root URL of a running backend to fetch the API description from")
		allFlag           = flag.Bool("all", false, "Generate every module of the API description")
		rootNamespaceFlag = flag.String("root-namespace", "", "Root namespace stripped from every generated namespace")
		registryFlag      = flag.String("registry", "", "File listing the generated modules")
		dumpFlag          = flag.String("dump", "", "Directory receiving the generated model of each module as JSON")
		verboseFlag       = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag         = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag         = flag.Bool("clean", false, "Delete the registry and the dumps of the modules it lists")
		helpFlag          = flag.Bool("help", false, "Show help information")
	)
	flag.Var(&modules, "module", "Module to generate (repeatable, or comma separated)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Proxy Generator\n")
		fmt.Fprintf(os.Stderr, "Reads a backend API description and builds the client model of its modules.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -source api-definition.json -module app          # Generate one module from a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -url https://localhost:44300 -all                # Fetch and generate every module\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config proxygen.yaml -module app,identity       # Use a config file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -source api.json -all -dump ./ir -verbose        # Write the generated model as JSON\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -clean -dump ./ir                                # Forget every generated module\n", os.Args[0])
	}

	flag.Parse()

	// Show help if requested
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	if len(flag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %s\n\n", strings.Join(flag.Args(), " "))
		flag.Usage()
		os.Exit(1)
	}

	reporter := cli.NewDiagnosticReporter(*verboseFlag)

	cfg, err := cli.LoadConfig(*configFlag)
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}

	// Flags override the config file
	if *sourceFlag != "" {
		cfg.Source = *sourceFlag
		cfg.URL = ""
	}
	if *urlFlag != "" {
		cfg.URL = *urlFlag
		cfg.Source = ""
	}
	if len(modules) > 0 {
		cfg.Modules = modules
	}
	if *allFlag {
		cfg.All = true
	}
	if *rootNamespaceFlag != "" {
		cfg.RootNamespace = *rootNamespaceFlag
	}
	if *registryFlag != "" {
		cfg.RegistryFile = *registryFlag
	}
	if *dumpFlag != "" {
		cfg.DumpDir = *dumpFlag
	}
	verbose := *verboseFlag || cfg.Verbose

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if verbose {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Section("Proxy Generator")

	// Handle clean operation
	if *cleanFlag {
		diagnostics.StartProgress("Cleaning generated state")

		removed, err := cli.NewCleaner(cfg).Clean()
		if err != nil {
			diagnostics.EndProgress(false, "")
			reporter.ReportError(err)
			os.Exit(1)
		}

		diagnostics.EndProgress(true, fmt.Sprintf("%d files", len(removed)))
		for _, file := range removed {
			diagnostics.Verbose("Removed %s", file)
		}
		diagnostics.Success("Registry %s has been reset", cfg.RegistryFile)
		return
	}

	if diagnostics.Level() >= utils.DiagnosticVerbose {
		diagnostics.Subsection("Configuration")
		if cfg.URL != "" {
			diagnostics.List("Backend: %s", cfg.URL)
		} else {
			diagnostics.List("Source: %s", cfg.Source)
		}
		if cfg.All {
			diagnostics.List("Modules: all")
		} else {
			diagnostics.List("Modules: %s", strings.Join(cfg.Modules, ", "))
		}
		if cfg.RootNamespace != "" {
			diagnostics.List("Root namespace: %s", cfg.RootNamespace)
		}
		diagnostics.List("Registry: %s", cfg.RegistryFile)
		if cfg.DumpDir != "" {
			diagnostics.List("Dump directory: %s", cfg.DumpDir)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	diagnostics.Subsection("Generation")
	generator := cli.NewGenerator(cfg, diagnostics)
	err = generator.Run(ctx)

	summary := generator.GetSummary()
	if err != nil {
		if summary.ModulesGenerated > 0 {
			reporter.ReportWarning(fmt.Sprintf("%d module(s) completed before the failure remain recorded in %s",
				summary.ModulesGenerated, summary.RegistryFile))
		}
		reporter.ReportError(err)
		stop()
		os.Exit(1)
	}

	stats := map[string]interface{}{
		"Modules generated": summary.ModulesGenerated,
		"Services":          summary.Services,
		"Methods":           summary.Methods,
		"Interfaces":        summary.Interfaces,
		"Enums":             summary.Enums,
		"Run":               summary.RunID,
	}
	diagnostics.Summary("Generation Complete!", stats)

	if verbose && len(summary.DumpedFiles) > 0 {
		diagnostics.Subsection("Dumped Files")
		for _, file := range summary.DumpedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.Success("Generated %s", strings.Join(summary.Modules, ", "))
}
