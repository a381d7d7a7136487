package ranking

import (
	"testing"

	"github.com/hyperjump/mitsuke/internal/query"
)

func scoreCtx(q, path string) *ScoringContext {
	return &ScoringContext{
		Query: query.NewParser().Parse(q),
		Path:  path,
	}
}

func TestFilenameScorer_Score(t *testing.T) {
	weights := DefaultWeights()
	scorer := NewFilenameScorer(weights)

	tests := []struct {
		name string
		q    string
		path string
		want float64
	}{
		{
			name: "exact basename match",
			q:    "makefile",
			path: "/src/Makefile",
			want: weights.Filename,
		},
		{
			name: "match ignoring extension",
			q:    "auth",
			path: "/src/auth.ts",
			want: weights.Filename * 0.9,
		},
		{
			name: "substring containment",
			q:    "auth",
			path: "/src/oauth-client.ts",
			want: weights.Filename * 0.6,
		},
		{
			name: "phrase containment",
			q:    `"user service"`,
			path: "/src/user service.md",
			want: weights.Filename * 1.2,
		},
		{
			name: "no match",
			q:    "billing",
			path: "/src/auth.ts",
			want: 0,
		},
		{
			name: "multiple terms accumulate",
			q:    "auth client",
			path: "/src/oauth-client.ts",
			want: weights.Filename*0.6 + weights.Filename*0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reasons := scorer.Score(scoreCtx(tt.q, tt.path))
			if got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
			if tt.want > 0 && len(reasons) == 0 {
				t.Error("positive score must carry reasons")
			}
		})
	}
}

func TestFilenameScorer_ExactBeatsSubstring(t *testing.T) {
	scorer := NewFilenameScorer(DefaultWeights())

	exact, _ := scorer.Score(scoreCtx("auth", "/src/auth.ts"))
	substring, _ := scorer.Score(scoreCtx("auth", "/src/oauth-client.ts"))
	if exact <= substring {
		t.Errorf("exact stem match (%v) must outscore substring match (%v)", exact, substring)
	}
}
