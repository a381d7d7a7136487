package ranking

import (
	"testing"

	"github.com/hyperjump/mitsuke/internal/query"
)

func TestFilepathScorer_Score(t *testing.T) {
	weights := DefaultWeights()
	scorer := NewFilepathScorer(weights)

	tests := []struct {
		name    string
		q       string
		relPath string
		want    float64
	}{
		{
			name:    "segment equality fires both awards",
			q:       "auth",
			relPath: "src/auth/login.ts",
			want:    weights.Filepath*0.5 + weights.Filepath*0.8,
		},
		{
			name:    "substring only",
			q:       "auth",
			relPath: "src/oauth2/login.ts",
			want:    weights.Filepath * 0.5,
		},
		{
			name:    "no match",
			q:       "billing",
			relPath: "src/auth/login.ts",
			want:    0,
		},
		{
			name:    "terms contribute independently",
			q:       "src auth",
			relPath: "src/auth/login.ts",
			want:    2 * (weights.Filepath*0.5 + weights.Filepath*0.8),
		},
		{
			name:    "file at the root has no directory signal",
			q:       "auth",
			relPath: "auth.ts",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := scorer.Score(&ScoringContext{
				Query:   query.NewParser().Parse(tt.q),
				Path:    "/home/alex/" + tt.relPath,
				RelPath: tt.relPath,
			})
			if got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilepathScorer_IgnoresDirectoriesAboveRoot(t *testing.T) {
	scorer := NewFilepathScorer(DefaultWeights())

	got, reasons := scorer.Score(&ScoringContext{
		Query:   query.NewParser().Parse("config"),
		Path:    "/home/alex/config-projects/src/login.ts",
		RelPath: "src/login.ts",
	})
	if got != 0 || len(reasons) != 0 {
		t.Errorf("ancestors of the search root must not score, got %v %v", got, reasons)
	}
}
