package models

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCandidatesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadCandidatesDefault(t *testing.T) {
	candidates, err := LoadCandidates("")
	if err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}
	if len(candidates) != 5 {
		t.Errorf("got %d candidates, want 5", len(candidates))
	}
}

func TestLoadCandidatesFromFile(t *testing.T) {
	path := writeCandidatesFile(t, `[
		{"id": 1, "name": "Yes", "color": "#0a0"},
		{"id": 2, "name": "No", "color": "#a00"}
	]`)

	candidates, err := LoadCandidates(path)
	if err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}
	if len(candidates) != 2 || candidates[0].Name != "Yes" || candidates[1].ID != 2 {
		t.Errorf("candidates = %+v", candidates)
	}
}

func TestLoadCandidatesRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{broken`},
		{"empty list", `[]`},
		{"zero id", `[{"id": 0, "name": "X", "color": "#000"}]`},
		{"duplicate id", `[{"id": 1, "name": "A"}, {"id": 1, "name": "B"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCandidatesFile(t, tt.content)
			if _, err := LoadCandidates(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadCandidates("/nonexistent/candidates.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
