package service

import (
	"strconv"

	"github.com/castela0119/Elice-Team5/internal/domain"
	"github.com/castela0119/Elice-Team5/internal/inference"
)

// Decomposition maps the engine's raw nested mappings into typed child
// rows carrying the owning video's id. It is purely structural: score
// ranges, timestamp monotonicity, and duplicates are the engine's
// responsibility, and emission order is unspecified.

// DecomposeScripts converts raw transcript segments. Map keys are the
// engine's timestamps; the engine contract says they are numeric, so
// an unparsable key falls back to 0 rather than failing the ingestion.
func DecomposeScripts(raw map[string]inference.RawScript, videoID uint) []domain.Script {
	scripts := make([]domain.Script, 0, len(raw))
	for ts, entry := range raw {
		timestamp, _ := strconv.ParseFloat(ts, 64)
		scripts = append(scripts, domain.Script{
			VideoID:         videoID,
			Timestamp:       timestamp,
			Content:         entry.Script,
			ImportanceScore: entry.Importance,
		})
	}
	return scripts
}

// DecomposeKeywords converts raw keyword spots. The engine's map key
// is an arbitrary index with no ordering guarantee and is discarded.
func DecomposeKeywords(raw map[string]inference.RawKeyword, videoID uint) []domain.Keyword {
	keywords := make([]domain.Keyword, 0, len(raw))
	for _, entry := range raw {
		keywords = append(keywords, domain.Keyword{
			VideoID:   videoID,
			Timestamp: entry.Timestamp,
			Keyword:   entry.Keyword,
			Score:     entry.Score,
		})
	}
	return keywords
}

// DecomposeFrequencies converts raw word counts, keyed by word.
func DecomposeFrequencies(raw map[string]int64, videoID uint) []domain.Frequency {
	frequencies := make([]domain.Frequency, 0, len(raw))
	for word, count := range raw {
		frequencies = append(frequencies, domain.Frequency{
			VideoID: videoID,
			Keyword: word,
			Count:   count,
		})
	}
	return frequencies
}
