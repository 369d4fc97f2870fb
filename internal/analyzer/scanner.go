package analyzer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"localecheck/internal/config"
	"localecheck/internal/dictionary"
	"localecheck/internal/extractor"
	"localecheck/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scanner walks a source tree, runs the call-site extractor over every
// matching file, and joins the results with the localization dictionary.
type Scanner struct {
	config    *config.Config
	extractor *extractor.Extractor
	logger    *zap.Logger
}

func NewScanner(cfg *config.Config, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		config:    cfg,
		extractor: extractor.NewWithWindow(cfg.Scan.LookaheadLines),
		logger:    logger,
	}
}

// Scan runs one batch pass over root. Per-file read failures are logged and
// skipped; only a missing root directory is fatal.
func (s *Scanner) Scan(root string, dict dictionary.Dictionary) (*models.ScanResult, error) {
	startTime := time.Now()

	files, err := s.CollectSourceFiles(root)
	if err != nil {
		return nil, err
	}

	result := models.NewScanResult()
	for _, filename := range files {
		patterns, err := s.scanFile(filename)
		if err != nil {
			s.logger.Warn("skipping unreadable file",
				zap.String("path", filename),
				zap.Error(err))
			continue
		}
		result.Files = append(result.Files, filename)
		result.AddPatterns(patterns)
	}

	result.Records, result.Summary = Aggregate(result.Patterns, dict)
	result.Metadata = models.RunMetadata{
		RunID:          uuid.NewString(),
		Timestamp:      startTime.UTC().Format(time.RFC3339),
		Root:           root,
		DictionaryPath: s.config.Dictionary.Path,
		FilesScanned:   len(result.Files),
		PatternsFound:  len(result.Patterns),
		DictionarySize: len(dict),
	}
	result.Duration = time.Since(startTime).String()
	return result, nil
}

func (s *Scanner) scanFile(filename string) ([]models.CallSitePattern, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	patterns := s.extractor.Extract(string(data))
	for i := range patterns {
		patterns[i].File = filename
	}
	return patterns, nil
}

// CollectSourceFiles recursively enumerates source files under root,
// honoring the configured extensions, excluded directories, and file size
// cap. Unlistable subtrees are logged and excluded from the result.
func (s *Scanner) CollectSourceFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root directory %s does not exist: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", root)
	}

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("skipping unlistable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && s.config.ShouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.config.ShouldScanFile(path) {
			return nil
		}

		if fi, err := d.Info(); err == nil {
			if fi.Size() > int64(s.config.Files.MaxFileSize)*1024 {
				s.logger.Debug("skipping oversized file",
					zap.String("path", path),
					zap.Int64("size", fi.Size()))
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}

	return files, nil
}
