package models

type MatchStatus string

const (
	StatusMatched MatchStatus = "MATCHED"
	StatusMissing MatchStatus = "MISSING"
)

// MissingValueSentinel is written in place of a translation value for keys
// absent from the dictionary (CSV output and console detail).
const MissingValueSentinel = "<<MISSING>>"

// CallSitePattern is one recognized stream/setAlert occurrence in a source
// file. Line is 1-based and counted against the comment-stripped text, which
// diverges from original file lines when block comments precede the match.
type CallSitePattern struct {
	TranslationKey string `json:"translation_key"`
	AlertContainer string `json:"alert_container"`
	AlertType      string `json:"alert_type"`
	File           string `json:"file"`
	Line           int    `json:"line"`
	RawSnippet     string `json:"raw_snippet,omitempty"`
}

// AnalysisRecord joins a CallSitePattern with its dictionary lookup outcome.
type AnalysisRecord struct {
	CallSitePattern
	HasTranslation   bool        `json:"has_translation"`
	TranslationValue *string     `json:"translation_value"`
	UsageCount       int         `json:"usage_count"`
	Status           MatchStatus `json:"status"`
}

// KeyUsage summarizes one translation key across the whole scan.
type KeyUsage struct {
	Key   string   `json:"key"`
	Count int      `json:"count"`
	Files []string `json:"files"`
	Value string   `json:"value,omitempty"`
}

type Summary struct {
	UniqueKeys      int        `json:"unique_keys"`
	MatchedKeys     int        `json:"matched_keys"`
	MissingKeys     int        `json:"missing_keys"`
	Matched         []KeyUsage `json:"matched"`
	Missing         []KeyUsage `json:"missing"`
	AlertContainers []string   `json:"alert_containers"`
	AlertTypes      []string   `json:"alert_types"`
}

type RunMetadata struct {
	RunID          string `json:"run_id"`
	Timestamp      string `json:"timestamp"`
	Root           string `json:"root"`
	DictionaryPath string `json:"dictionary_path,omitempty"`
	FilesScanned   int    `json:"files_scanned"`
	PatternsFound  int    `json:"patterns_found"`
	DictionarySize int    `json:"dictionary_size"`
}

// ScanResult is everything one batch run produces.
type ScanResult struct {
	Metadata RunMetadata       `json:"metadata"`
	Files    []string          `json:"files_scanned"`
	Patterns []CallSitePattern `json:"-"`
	Records  []AnalysisRecord  `json:"records"`
	Summary  Summary           `json:"summary"`
	Duration string            `json:"scan_duration"`
}

func NewScanResult() *ScanResult {
	return &ScanResult{
		Files:    make([]string, 0),
		Patterns: make([]CallSitePattern, 0),
		Records:  make([]AnalysisRecord, 0),
	}
}

func (sr *ScanResult) AddPatterns(patterns []CallSitePattern) {
	sr.Patterns = append(sr.Patterns, patterns...)
}
