package service

import (
	"testing"

	"github.com/castela0119/Elice-Team5/internal/inference"
)

func TestDecomposeScripts(t *testing.T) {
	raw := map[string]inference.RawScript{
		"0":    {Script: "hello", Importance: 0.9},
		"12.5": {Script: "world", Importance: 0.4},
	}

	scripts := DecomposeScripts(raw, 7)

	if len(scripts) != 2 {
		t.Fatalf("expected 2 scripts, got %d", len(scripts))
	}
	for _, s := range scripts {
		if s.VideoID != 7 {
			t.Errorf("expected video id 7, got %d", s.VideoID)
		}
		switch s.Content {
		case "hello":
			if s.Timestamp != 0 || s.ImportanceScore != 0.9 {
				t.Errorf("unexpected hello segment: %+v", s)
			}
		case "world":
			if s.Timestamp != 12.5 || s.ImportanceScore != 0.4 {
				t.Errorf("unexpected world segment: %+v", s)
			}
		default:
			t.Errorf("unexpected content %q", s.Content)
		}
	}
}

func TestDecomposeScriptsUnparsableTimestamp(t *testing.T) {
	raw := map[string]inference.RawScript{
		"not-a-number": {Script: "x", Importance: 0.1},
	}

	scripts := DecomposeScripts(raw, 1)

	if len(scripts) != 1 {
		t.Fatalf("expected 1 script, got %d", len(scripts))
	}
	if scripts[0].Timestamp != 0 {
		t.Errorf("expected timestamp fallback 0, got %v", scripts[0].Timestamp)
	}
}

func TestDecomposeKeywords(t *testing.T) {
	raw := map[string]inference.RawKeyword{
		"0":  {Timestamp: 0, Keyword: "hello", Score: 0.8},
		"42": {Timestamp: 3, Keyword: "again", Score: 0.2},
	}

	keywords := DecomposeKeywords(raw, 3)

	if len(keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(keywords))
	}
	for _, k := range keywords {
		if k.VideoID != 3 {
			t.Errorf("expected video id 3, got %d", k.VideoID)
		}
		if k.ID != 0 {
			t.Errorf("engine index must not leak into the row id, got %d", k.ID)
		}
	}
}

func TestDecomposeFrequencies(t *testing.T) {
	raw := map[string]int64{"hello": 1, "world": 4}

	frequencies := DecomposeFrequencies(raw, 9)

	if len(frequencies) != 2 {
		t.Fatalf("expected 2 frequencies, got %d", len(frequencies))
	}
	counts := map[string]int64{}
	for _, f := range frequencies {
		if f.VideoID != 9 {
			t.Errorf("expected video id 9, got %d", f.VideoID)
		}
		counts[f.Keyword] = f.Count
	}
	if counts["hello"] != 1 || counts["world"] != 4 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestDecomposeEmptyMappings(t *testing.T) {
	if got := DecomposeScripts(nil, 1); len(got) != 0 {
		t.Errorf("expected no scripts, got %d", len(got))
	}
	if got := DecomposeKeywords(map[string]inference.RawKeyword{}, 1); len(got) != 0 {
		t.Errorf("expected no keywords, got %d", len(got))
	}
	if got := DecomposeFrequencies(map[string]int64{}, 1); len(got) != 0 {
		t.Errorf("expected no frequencies, got %d", len(got))
	}
}
