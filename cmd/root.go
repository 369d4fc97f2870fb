package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"localecheck/internal/analyzer"
	"localecheck/internal/config"
	"localecheck/internal/dictionary"
	"localecheck/internal/logging"
	"localecheck/internal/watcher"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	formatFlag         string
	dictFlag           string
	outputFlag         string
	watchFlag          bool
	configFlag         string
	generateConfigFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "localecheck [directory]",
	Short: "Scans front-end sources for localization alert call sites",
	Long: `localecheck walks a TypeScript source tree for the stream/setAlert
call-site idiom, checks every referenced translation key against the
localization dictionary, and reports matched and missing keys.

Examples:
  localecheck ./src                        # Scan a source tree
  localecheck --dict=i18n/en.json ./src    # Use a specific dictionary
  localecheck --format=json ./src          # Emit the JSON report
  localecheck --format=csv -o report.csv . # Write the CSV report to a file
  localecheck --generate-config            # Generate sample config file`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScan,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format (console, json, csv)")
	rootCmd.Flags().StringVarP(&dictFlag, "dict", "d", "", "Path to the localization dictionary JSON")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the rendered report to a file")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch mode for development")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().BoolVar(&generateConfigFlag, "generate-config", false, "Generate sample configuration file")
}

func runScan(cmd *cobra.Command, args []string) {
	if generateConfigFlag {
		generateConfig()
		return
	}

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		color.Red("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if dictFlag != "" {
		cfg.Dictionary.Path = dictFlag
	}
	if outputFlag != "" {
		cfg.Output.OutputFile = outputFlag
	}
	if err := cfg.Validate(); err != nil {
		color.Red("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	root := cfg.Scan.DefaultRoot
	if len(args) > 0 {
		root = args[0]
	}

	// Missing root is the one fatal condition: abort before any scanning,
	// no report files written.
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		color.Red("Error: root directory %s does not exist\n", root)
		os.Exit(1)
	}

	logger := logging.New(cfg.Output.Verbose)
	defer func() { _ = logger.Sync() }()

	dict := loadDictionary(cfg, logger)
	scanner := analyzer.NewScanner(cfg, logger)

	if cfg.Output.Verbose {
		color.Cyan("🔍 Scanning %s for %v call sites...\n", root, cfg.Files.Extensions)
		color.Cyan("📖 Dictionary: %s (%d keys)\n\n", cfg.Dictionary.Path, len(dict))
	} else {
		color.Cyan("🔍 Scanning %s...\n\n", root)
	}

	if err := runOnce(scanner, cfg, root, dict); err != nil {
		color.Red("Scan failed: %v\n", err)
		os.Exit(1)
	}

	if watchFlag {
		watchLoop(scanner, cfg, logger, root, dict)
	}
}

func runOnce(scanner *analyzer.Scanner, cfg *config.Config, root string, dict dictionary.Dictionary) error {
	result, err := scanner.Scan(root, dict)
	if err != nil {
		return err
	}

	reportGen := analyzer.NewReportGeneratorWithConfig(cfg)
	report := reportGen.Generate(result)

	if cfg.Output.OutputFile != "" {
		if err := writeReportToFile(report, cfg.Output.OutputFile); err != nil {
			color.Red("Failed to write report to file: %v\n", err)
		} else {
			color.Green("📄 Report saved to: %s\n", cfg.Output.OutputFile)
		}
	} else {
		fmt.Print(report)
	}

	// Side reports configured independently of the rendered format.
	if cfg.Output.JSONFile != "" {
		if err := writeReportToFile(reportGen.GenerateJSON(result), cfg.Output.JSONFile); err != nil {
			color.Red("Failed to write JSON report: %v\n", err)
		}
	}
	if cfg.Output.CSVFile != "" {
		if err := writeReportToFile(reportGen.GenerateCSV(result), cfg.Output.CSVFile); err != nil {
			color.Red("Failed to write CSV report: %v\n", err)
		}
	}

	return nil
}

func watchLoop(scanner *analyzer.Scanner, cfg *config.Config, logger *zap.Logger, root string, dict dictionary.Dictionary) {
	fw, err := watcher.NewFileWatcher(cfg, logger)
	if err != nil {
		color.Red("Failed to start watch mode: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	handler := func(changed []string) error {
		color.Cyan("\n🔁 Change detected (%d files), rescanning...\n\n", len(changed))
		return runOnce(scanner, cfg, root, dict)
	}

	if err := fw.Watch([]string{root}, handler); err != nil {
		color.Red("Failed to watch %s: %v\n", root, err)
		os.Exit(1)
	}

	color.Cyan("👀 Watching %s for changes (Ctrl+C to stop)\n", root)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
}

// loadDictionary loads the localization dictionary; a missing or
// unparseable document is recoverable and degrades to an empty dictionary.
func loadDictionary(cfg *config.Config, logger *zap.Logger) dictionary.Dictionary {
	if cfg.Dictionary.Path == "" {
		return dictionary.Dictionary{}
	}
	dict, err := dictionary.Load(cfg.Dictionary.Path)
	if err != nil {
		logger.Warn("proceeding with empty dictionary", zap.Error(err))
		color.Yellow("⚠️  Dictionary unavailable, every key will report as missing\n")
	}
	return dict
}

func writeReportToFile(report, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(filePath, []byte(report), 0644)
}

func generateConfig() {
	configPath := ".localecheck.yml"
	if err := config.GenerateConfig(configPath); err != nil {
		color.Red("Failed to generate config file: %v\n", err)
		os.Exit(1)
	}
	color.Green("✅ Generated sample configuration file: %s\n", configPath)
	color.Cyan("📝 Edit this file to customize localecheck behavior\n")
	color.Cyan("🚀 Run 'localecheck --config=%s .' to use it\n", configPath)
}
