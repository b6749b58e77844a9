package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dirsight/internal/analyzer"
	"dirsight/internal/config"
	"dirsight/internal/exporter"
	"dirsight/internal/hierarchy"
	"dirsight/internal/logger"
	"dirsight/internal/manifest"
	"dirsight/internal/model"
	"dirsight/internal/ui"
)

const (
	appName    = "Dirsight"
	appVersion = "1.0.0"
	appDesc    = "A Pure Go directory purpose inference tool for source trees"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	rootDir     string
	outputDir   string
	formats     string
	printTree   bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&rootDir, "root", "", "Override project root directory from config")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "", "Comma-separated output formats (excel,markdown,word,json)")
	flag.BoolVar(&printTree, "tree", true, "Print the resolved directory tree to the console")
}

func main() {
	// CRITICAL: Ensure "Press Enter to Exit" runs even on panic or error
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		waitForEnter()
	}()

	// Run the actual application logic
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	// 1. Initialize
	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if rootDir != "" {
		abs, err := filepath.Abs(rootDir)
		if err != nil {
			fmt.Printf("❌ Invalid root directory: %v\n", err)
			return 1
		}
		cfg.Project.RootDir = abs
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
		cfg.EnsureOutputDir()
	}
	if formats != "" {
		cfg.Output.Formats = strings.Split(formats, ",")
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "dirsight.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := runAnalysis(cfg); err != nil {
		logger.Error("Analysis failed: %v", err)
		return 1
	}

	logger.Info("✅ Analysis Complete. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runAnalysis(cfg *config.Config) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseScanning,
		ui.PhaseResolving,
		ui.PhaseGenerating,
	})

	// --- Phase 1: Scanning ---
	logger.Info("Phase 1: Scanning project tree...")
	scanBar := pipeline.NextPhase(100)

	files, err := analyzer.ScanDirectory(cfg.Project.RootDir, cfg.Analysis.ExcludeDirs)
	if err != nil {
		return err
	}
	scanBar.SetTotal(len(files))
	scanBar.Set(len(files))
	scanBar.Finish()
	logger.Info("Found %d files", len(files))

	// Manifests at the project root feed the dependency stage
	deps := manifest.ParseDependencies(cfg.Project.RootDir)
	modules := manifest.ParseModuleBoundaries(cfg.Project.RootDir)
	logger.Info("Parsed %d dependencies, %d module boundaries", len(deps), len(modules))

	// --- Phase 2: Resolving ---
	logger.Info("Phase 2: Resolving directory purposes...")
	resolveBar := pipeline.NextPhase(len(files))

	engineCfg := analyzer.DefaultConfig(cfg.Project.RootDir)
	engineCfg.ContentSampleSize = cfg.Analysis.ContentSampleSize
	engineCfg.OnDirectory = func(path string) {
		resolveBar.Increment()
		resolveBar.Describe(path)
	}

	engine := analyzer.NewEngine(engineCfg)
	records, arch, err := engine.Analyze(files, deps, modules)
	if err != nil {
		return err
	}
	resolveBar.Finish()

	logger.Info("Resolved %d directories", len(records))
	logger.Info("Architecture: %s (%s confidence)", arch.Type, arch.Confidence)

	summary := model.BuildSummary(records, arch, time.Now().Format("2006-01-02"))

	if printTree {
		logger.InfoClean("\n%s", hierarchy.RenderTree(records))
	}

	// --- Phase 3: Reporting ---
	logger.Info("Phase 3: Generating Reports...")
	exporters := exporter.GetExporters(cfg.Output.Formats)

	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		if err := exp.Export(summary, records, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	genBar.Finish()

	pipeline.Finish()

	// Return error if any exports failed
	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	return nil
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                      DIRSIGHT v1.0.0                      ║
║         Directory Purpose Inference for Codebases         ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
