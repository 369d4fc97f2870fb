package analyzer

import (
	"testing"

	"localecheck/internal/dictionary"
	"localecheck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePatterns() []models.CallSitePattern {
	return []models.CallSitePattern{
		{TranslationKey: "errors.save", AlertContainer: "global-banner", AlertType: "AlertType.ERROR", File: "a.ts", Line: 10},
		{TranslationKey: "errors.save", AlertContainer: "toast", AlertType: "AlertType.ERROR", File: "b.ts", Line: 4},
		{TranslationKey: "info.saved", AlertContainer: "toast", AlertType: "AlertType.INFO", File: "a.ts", Line: 22},
	}
}

func TestAggregateJoinsDictionary(t *testing.T) {
	dict := dictionary.Dictionary{"errors.save": "Saving failed"}

	records, summary := Aggregate(samplePatterns(), dict)
	require.Len(t, records, 3)

	assert.True(t, records[0].HasTranslation)
	require.NotNil(t, records[0].TranslationValue)
	assert.Equal(t, "Saving failed", *records[0].TranslationValue)
	assert.Equal(t, models.StatusMatched, records[0].Status)
	assert.Equal(t, 2, records[0].UsageCount)

	// Key absent from the dictionary.
	assert.False(t, records[2].HasTranslation)
	assert.Nil(t, records[2].TranslationValue)
	assert.Equal(t, models.StatusMissing, records[2].Status)
	assert.Equal(t, 1, records[2].UsageCount)

	assert.Equal(t, 2, summary.UniqueKeys)
	assert.Equal(t, 1, summary.MatchedKeys)
	assert.Equal(t, 1, summary.MissingKeys)
}

func TestAggregateSummaryGroupings(t *testing.T) {
	dict := dictionary.Dictionary{"errors.save": "Saving failed"}

	_, summary := Aggregate(samplePatterns(), dict)

	require.Len(t, summary.Matched, 1)
	assert.Equal(t, "errors.save", summary.Matched[0].Key)
	assert.Equal(t, 2, summary.Matched[0].Count)
	assert.Equal(t, []string{"a.ts", "b.ts"}, summary.Matched[0].Files)
	assert.Equal(t, "Saving failed", summary.Matched[0].Value)

	require.Len(t, summary.Missing, 1)
	assert.Equal(t, "info.saved", summary.Missing[0].Key)
	assert.Equal(t, []string{"a.ts"}, summary.Missing[0].Files)

	assert.Equal(t, []string{"global-banner", "toast"}, summary.AlertContainers)
	assert.Equal(t, []string{"AlertType.ERROR", "AlertType.INFO"}, summary.AlertTypes)
}

func TestAggregateEmptyInputs(t *testing.T) {
	records, summary := Aggregate(nil, dictionary.Dictionary{})
	assert.Empty(t, records)
	assert.Equal(t, 0, summary.UniqueKeys)
	assert.Empty(t, summary.Matched)
	assert.Empty(t, summary.Missing)
}
