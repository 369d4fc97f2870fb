package analyzer

import (
	"sort"

	"localecheck/internal/dictionary"
	"localecheck/internal/models"
)

// Aggregate joins extracted call-site patterns with the localization
// dictionary, producing one AnalysisRecord per pattern plus a run summary.
// Record order follows pattern order: per-file by line, files in scan order.
func Aggregate(patterns []models.CallSitePattern, dict dictionary.Dictionary) ([]models.AnalysisRecord, models.Summary) {
	usage := make(map[string]int)
	filesByKey := make(map[string]map[string]bool)
	containers := make(map[string]bool)
	types := make(map[string]bool)

	for _, p := range patterns {
		usage[p.TranslationKey]++
		if filesByKey[p.TranslationKey] == nil {
			filesByKey[p.TranslationKey] = make(map[string]bool)
		}
		filesByKey[p.TranslationKey][p.File] = true
		containers[p.AlertContainer] = true
		types[p.AlertType] = true
	}

	records := make([]models.AnalysisRecord, 0, len(patterns))
	for _, p := range patterns {
		record := models.AnalysisRecord{
			CallSitePattern: p,
			UsageCount:      usage[p.TranslationKey],
			Status:          models.StatusMissing,
		}
		if value, ok := dict.Lookup(p.TranslationKey); ok {
			v := value
			record.HasTranslation = true
			record.TranslationValue = &v
			record.Status = models.StatusMatched
		}
		records = append(records, record)
	}

	summary := models.Summary{
		Matched:         make([]models.KeyUsage, 0),
		Missing:         make([]models.KeyUsage, 0),
		AlertContainers: sortedKeys(containers),
		AlertTypes:      sortedKeys(types),
	}

	keys := make([]string, 0, len(usage))
	for key := range usage {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		ku := models.KeyUsage{
			Key:   key,
			Count: usage[key],
			Files: sortedKeys(filesByKey[key]),
		}
		if value, ok := dict.Lookup(key); ok {
			ku.Value = value
			summary.Matched = append(summary.Matched, ku)
		} else {
			summary.Missing = append(summary.Missing, ku)
		}
	}

	summary.UniqueKeys = len(keys)
	summary.MatchedKeys = len(summary.Matched)
	summary.MissingKeys = len(summary.Missing)
	return records, summary
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
