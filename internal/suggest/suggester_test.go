package suggest

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/astralhq/astral/internal/types"
)

func TestHeuristic_Classify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.InboxItemType
	}{
		{"idea keyword", "app idea: habit garden", types.InboxIdea},
		{"project keyword", "build a chicken coop", types.InboxProject},
		{"launch keyword", "launch the newsletter", types.InboxProject},
		{"note keyword", "remember what dad said about patience", types.InboxNote},
		{"task verb prefix", "call the dentist", types.InboxTask},
		{"buy prefix", "buy new running shoes", types.InboxTask},
		{"no signal", "xyzzy", types.InboxUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Heuristic{}.Suggest(context.Background(), &types.AppState{}, tt.text)
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			if got.Type != tt.want {
				t.Errorf("Suggest(%q).Type = %q, want %q", tt.text, got.Type, tt.want)
			}
			if got.AreaID != nil {
				t.Errorf("Suggest(%q).AreaID = %q, want nil", tt.text, *got.AreaID)
			}
		})
	}
}

// stubEmbedder returns canned vectors, one per input text in order.
type stubEmbedder struct {
	vecs [][]float32
	err  error
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vecs[0], nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vecs[:len(texts)], nil
}

func (s *stubEmbedder) ModelName() string { return "stub" }

func TestSemantic_PicksNearestArea(t *testing.T) {
	st := &types.AppState{
		Areas: []types.Area{
			{ID: "area-health", Name: "Health", Type: types.AreaLife},
			{ID: "area-business", Name: "Business", Type: types.AreaWork},
		},
	}
	// Capture vector aligns with the second area, is orthogonal to the first.
	emb := &stubEmbedder{vecs: [][]float32{
		{0, 1, 0}, // capture
		{1, 0, 0}, // Health
		{0, 0.9, 0.1}, // Business
	}}

	s := NewSemantic(emb)
	got, err := s.Suggest(context.Background(), st, "follow up with the agency")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got.AreaID == nil || *got.AreaID != "area-business" {
		t.Errorf("AreaID = %v, want area-business", got.AreaID)
	}
}

func TestSemantic_BelowFloorSuggestsNothing(t *testing.T) {
	st := &types.AppState{
		Areas: []types.Area{{ID: "area-health", Name: "Health", Type: types.AreaLife}},
	}
	emb := &stubEmbedder{vecs: [][]float32{
		{0, 1, 0},
		{1, 0, 0}, // cosine 0, below the floor
	}}

	got, err := NewSemantic(emb).Suggest(context.Background(), st, "xyzzy")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got.AreaID != nil {
		t.Errorf("AreaID = %q, want nil below similarity floor", *got.AreaID)
	}
}

func TestSemantic_EmbedderFailureDegradesToKeywords(t *testing.T) {
	st := &types.AppState{
		Areas: []types.Area{{ID: "area-health", Name: "Health", Type: types.AreaLife}},
	}
	emb := &stubEmbedder{err: errors.New("rate limited")}

	got, err := NewSemantic(emb).Suggest(context.Background(), st, "call the dentist")
	if err == nil {
		t.Error("Suggest expected error from failed embedder")
	}
	if got.Type != types.InboxTask {
		t.Errorf("Type = %q, want keyword fallback %q", got.Type, types.InboxTask)
	}
	if got.AreaID != nil {
		t.Errorf("AreaID = %v, want nil on embedder failure", got.AreaID)
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"length mismatch", []float32{1, 0}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
