package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"localecheck/internal/config"
	"localecheck/internal/dictionary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const idiomSource = `
export class NotifyComponent {
  notify(): void {
    this.translate.stream('errors.network')
      .subscribe(m => this.alerts.setAlert(m, true, 'global-banner', 5000, AlertType.ERROR));
  }
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestScanner(t *testing.T, cfg *config.Config) *Scanner {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewScanner(cfg, zap.NewNop())
}

func TestScanCollectsAndJoins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app", "notify.component.ts"), idiomSource)
	writeFile(t, filepath.Join(root, "app", "plain.ts"), "export const x = 1;\n")

	dict := dictionary.Dictionary{"errors.network": "Network error"}
	result, err := newTestScanner(t, nil).Scan(root, dict)
	require.NoError(t, err)

	assert.Len(t, result.Files, 2)
	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, "errors.network", rec.TranslationKey)
	assert.True(t, rec.HasTranslation)
	assert.Equal(t, filepath.Join(root, "app", "notify.component.ts"), rec.File)

	assert.Equal(t, 2, result.Metadata.FilesScanned)
	assert.Equal(t, 1, result.Metadata.PatternsFound)
	assert.NotEmpty(t, result.Metadata.RunID)
	assert.NotEmpty(t, result.Duration)
}

func TestScanMissingRootFails(t *testing.T) {
	_, err := newTestScanner(t, nil).Scan(filepath.Join(t.TempDir(), "absent"), dictionary.Dictionary{})
	assert.Error(t, err)
}

func TestCollectSkipsExcludedAndNonSource(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.ts"), "")
	writeFile(t, filepath.Join(root, "keep.tsx"), "")
	writeFile(t, filepath.Join(root, "skip.js"), "")
	writeFile(t, filepath.Join(root, "keep.spec.ts"), "")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "index.ts"), "")
	writeFile(t, filepath.Join(root, "dist", "bundle.ts"), "")

	files, err := newTestScanner(t, nil).CollectSourceFiles(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "keep.ts"),
		filepath.Join(root, "keep.tsx"),
	}, files)
}

func TestCollectIncludesTestFilesWhenConfigured(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.spec.ts"), "")

	cfg := config.DefaultConfig()
	cfg.Files.IncludeTests = true
	files, err := newTestScanner(t, cfg).CollectSourceFiles(root)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestCollectHonorsMaxFileSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "big.ts"), string(make([]byte, 2*1024)))

	cfg := config.DefaultConfig()
	cfg.Files.MaxFileSize = 1
	files, err := newTestScanner(t, cfg).CollectSourceFiles(root)
	require.NoError(t, err)
	assert.Empty(t, files)
}
