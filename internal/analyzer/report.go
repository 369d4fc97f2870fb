package analyzer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"localecheck/internal/config"
	"localecheck/internal/models"

	"github.com/fatih/color"
)

// ReportGenerator handles formatting and displaying scan results
type ReportGenerator struct {
	format string
	config *config.Config
}

// NewReportGenerator creates a new report generator
func NewReportGenerator(format string) *ReportGenerator {
	return &ReportGenerator{
		format: format,
		config: config.DefaultConfig(),
	}
}

func NewReportGeneratorWithConfig(cfg *config.Config) *ReportGenerator {
	return &ReportGenerator{
		format: cfg.Output.Format,
		config: cfg,
	}
}

// Generate creates a formatted report from scan results
func (r *ReportGenerator) Generate(result *models.ScanResult) string {
	switch r.format {
	case "json":
		return r.GenerateJSON(result)
	case "csv":
		return r.GenerateCSV(result)
	default:
		return r.generateConsole(result)
	}
}

// GenerateJSON creates the structured JSON report
func (r *ReportGenerator) GenerateJSON(result *models.ScanResult) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating JSON report: %v", err)
	}
	return string(data)
}

// GenerateCSV creates the flat tabular report, one row per analysis record.
// Fields are RFC 4180 quoted and internal newlines are collapsed to spaces.
func (r *ReportGenerator) GenerateCSV(result *models.ScanResult) string {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	header := []string{"translation_key", "translation_value", "alert_container", "alert_type", "file", "line", "status", "usage_count"}
	_ = w.Write(header)

	for _, rec := range result.Records {
		value := models.MissingValueSentinel
		if rec.TranslationValue != nil {
			value = *rec.TranslationValue
		}
		row := []string{
			collapseNewlines(rec.TranslationKey),
			collapseNewlines(value),
			collapseNewlines(rec.AlertContainer),
			collapseNewlines(rec.AlertType),
			collapseNewlines(rec.File),
			strconv.Itoa(rec.Line),
			string(rec.Status),
			strconv.Itoa(rec.UsageCount),
		}
		_ = w.Write(row)
	}

	w.Flush()
	return buf.String()
}

// collapseNewlines folds internal line breaks (and surrounding whitespace)
// into single spaces so every record stays on one CSV row line.
func collapseNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}

// generateConsole creates a colorized console report
func (r *ReportGenerator) generateConsole(result *models.ScanResult) string {
	var report strings.Builder

	useColors := true
	verbose := false
	showSnippets := false

	if r.config != nil {
		useColors = r.config.Output.Colors
		verbose = r.config.Output.Verbose
		showSnippets = r.config.Output.ShowSnippets
	}

	// Header
	if useColors {
		report.WriteString(color.CyanString("🌐 LocaleCheck Analysis Report\n"))
		report.WriteString(color.WhiteString("═══════════════════════════════════════\n\n"))
	} else {
		report.WriteString("LocaleCheck Analysis Report\n")
		report.WriteString("=======================================\n\n")
	}

	if verbose {
		r.writeRunInfo(&report, result, useColors)
	}

	r.writeSummary(&report, result, useColors)

	if result.Summary.MissingKeys > 0 {
		r.writeMissingKeys(&report, result, useColors)
	} else if result.Summary.UniqueKeys > 0 {
		if useColors {
			report.WriteString(color.GreenString("🎉 Every referenced key has a translation!\n\n"))
		} else {
			report.WriteString("Every referenced key has a translation!\n\n")
		}
	}

	if verbose {
		r.writeMatchedKeys(&report, result, useColors)
	}

	r.writeVocabularies(&report, result, useColors)

	if showSnippets && len(result.Records) > 0 {
		r.writeSnippets(&report, result, useColors)
	}

	// Footer
	if useColors {
		report.WriteString(color.WhiteString("Scan completed in %s\n", result.Duration))
	} else {
		report.WriteString(fmt.Sprintf("Scan completed in %s\n", result.Duration))
	}

	return report.String()
}

func (r *ReportGenerator) writeRunInfo(report *strings.Builder, result *models.ScanResult, useColors bool) {
	if useColors {
		report.WriteString(color.WhiteString("📋 Run:\n"))
		report.WriteString(fmt.Sprintf("   ID: %s\n", color.CyanString(result.Metadata.RunID)))
		report.WriteString(fmt.Sprintf("   Root: %s\n", color.CyanString(result.Metadata.Root)))
		report.WriteString(fmt.Sprintf("   Dictionary: %s (%d keys)\n",
			color.CyanString(result.Metadata.DictionaryPath), result.Metadata.DictionarySize))
	} else {
		report.WriteString("Run:\n")
		report.WriteString(fmt.Sprintf("   ID: %s\n", result.Metadata.RunID))
		report.WriteString(fmt.Sprintf("   Root: %s\n", result.Metadata.Root))
		report.WriteString(fmt.Sprintf("   Dictionary: %s (%d keys)\n",
			result.Metadata.DictionaryPath, result.Metadata.DictionarySize))
	}
	report.WriteString("\n")
}

func (r *ReportGenerator) writeSummary(report *strings.Builder, result *models.ScanResult, useColors bool) {
	if useColors {
		report.WriteString(color.WhiteString("📊 Summary:\n"))
	} else {
		report.WriteString("Summary:\n")
	}
	report.WriteString(fmt.Sprintf("   Files scanned: %d\n", len(result.Files)))
	report.WriteString(fmt.Sprintf("   Call sites found: %d\n", result.Metadata.PatternsFound))
	report.WriteString(fmt.Sprintf("   Unique keys: %d\n", result.Summary.UniqueKeys))
	if useColors {
		report.WriteString(fmt.Sprintf("   Matched: %s   Missing: %s\n",
			color.GreenString("%d", result.Summary.MatchedKeys),
			color.RedString("%d", result.Summary.MissingKeys)))
	} else {
		report.WriteString(fmt.Sprintf("   Matched: %d   Missing: %d\n",
			result.Summary.MatchedKeys, result.Summary.MissingKeys))
	}
	report.WriteString("\n")
}

func (r *ReportGenerator) writeMissingKeys(report *strings.Builder, result *models.ScanResult, useColors bool) {
	if useColors {
		report.WriteString(color.RedString("❌ Missing translations:\n"))
	} else {
		report.WriteString("Missing translations:\n")
	}
	for _, ku := range result.Summary.Missing {
		if useColors {
			report.WriteString(fmt.Sprintf("   %s (used %dx in %s)\n",
				color.YellowString(ku.Key), ku.Count, strings.Join(ku.Files, ", ")))
		} else {
			report.WriteString(fmt.Sprintf("   %s (used %dx in %s)\n",
				ku.Key, ku.Count, strings.Join(ku.Files, ", ")))
		}
	}
	report.WriteString("\n")
}

func (r *ReportGenerator) writeMatchedKeys(report *strings.Builder, result *models.ScanResult, useColors bool) {
	if len(result.Summary.Matched) == 0 {
		return
	}
	if useColors {
		report.WriteString(color.GreenString("✅ Matched translations:\n"))
	} else {
		report.WriteString("Matched translations:\n")
	}
	for _, ku := range result.Summary.Matched {
		report.WriteString(fmt.Sprintf("   %s (used %dx) = %q\n", ku.Key, ku.Count, ku.Value))
	}
	report.WriteString("\n")
}

func (r *ReportGenerator) writeVocabularies(report *strings.Builder, result *models.ScanResult, useColors bool) {
	if len(result.Summary.AlertContainers) == 0 && len(result.Summary.AlertTypes) == 0 {
		return
	}
	if useColors {
		report.WriteString(color.WhiteString("📦 Vocabularies:\n"))
	} else {
		report.WriteString("Vocabularies:\n")
	}
	report.WriteString(fmt.Sprintf("   Alert containers: %s\n", strings.Join(result.Summary.AlertContainers, ", ")))
	report.WriteString(fmt.Sprintf("   Alert types: %s\n", strings.Join(result.Summary.AlertTypes, ", ")))
	report.WriteString("\n")
}

func (r *ReportGenerator) writeSnippets(report *strings.Builder, result *models.ScanResult, useColors bool) {
	if useColors {
		report.WriteString(color.WhiteString("🔍 Call sites:\n"))
	} else {
		report.WriteString("Call sites:\n")
	}
	for _, rec := range result.Records {
		report.WriteString(fmt.Sprintf("   %s:%d %s\n", rec.File, rec.Line, rec.RawSnippet))
	}
	report.WriteString("\n")
}
