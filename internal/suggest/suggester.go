package suggest

import (
	"context"
	"math"
	"strings"

	"github.com/astralhq/astral/internal/types"
)

// Suggestion is a proposed triage for a raw capture.
type Suggestion struct {
	Type   types.InboxItemType
	AreaID *string
}

// Suggester proposes a triage classification for a raw inbox capture.
type Suggester interface {
	Suggest(ctx context.Context, st *types.AppState, rawText string) (Suggestion, error)
}

// Compile-time interface checks
var (
	_ Suggester = (*Heuristic)(nil)
	_ Suggester = (*Semantic)(nil)
)

// Heuristic classifies captures by surface keywords only. It is the
// fallback when no embedding service is configured.
type Heuristic struct{}

// Suggest implements Suggester.
func (Heuristic) Suggest(_ context.Context, _ *types.AppState, rawText string) (Suggestion, error) {
	return Suggestion{Type: classify(rawText)}, nil
}

// classify guesses the capture type from keywords. Unknown when nothing
// matches; triage always remains a human decision.
func classify(rawText string) types.InboxItemType {
	lower := strings.ToLower(rawText)
	switch {
	case strings.Contains(lower, "idea"):
		return types.InboxIdea
	case strings.Contains(lower, "project") || strings.Contains(lower, "build") || strings.Contains(lower, "launch"):
		return types.InboxProject
	case strings.Contains(lower, "note") || strings.Contains(lower, "remember") || strings.Contains(lower, "thought"):
		return types.InboxNote
	case strings.HasPrefix(lower, "call ") || strings.HasPrefix(lower, "buy ") ||
		strings.HasPrefix(lower, "send ") || strings.HasPrefix(lower, "fix ") ||
		strings.Contains(lower, "todo") || strings.Contains(lower, "to do"):
		return types.InboxTask
	default:
		return types.InboxUnknown
	}
}

// Semantic adds an area suggestion on top of the keyword classifier by
// embedding the capture alongside the area labels and picking the nearest
// area above a similarity floor.
type Semantic struct {
	embedder Embedder

	// MinSimilarity is the cosine floor below which no area is suggested.
	MinSimilarity float64
}

// NewSemantic creates a Semantic suggester backed by the given embedder.
func NewSemantic(e Embedder) *Semantic {
	return &Semantic{
		embedder:      e,
		MinSimilarity: 0.3,
	}
}

// Suggest implements Suggester.
func (s *Semantic) Suggest(ctx context.Context, st *types.AppState, rawText string) (Suggestion, error) {
	out := Suggestion{Type: classify(rawText)}

	if len(st.Areas) == 0 {
		return out, nil
	}

	texts := make([]string, 0, len(st.Areas)+1)
	texts = append(texts, rawText)
	for _, a := range st.Areas {
		texts = append(texts, a.Name+" ("+string(a.Type)+")")
	}

	vecs, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		// A failed embedding call degrades to the keyword result.
		return out, err
	}

	capture := vecs[0]
	best := s.MinSimilarity
	for i, a := range st.Areas {
		if sim := cosine(capture, vecs[i+1]); sim > best {
			best = sim
			id := a.ID
			out.AreaID = &id
		}
	}
	return out, nil
}

// cosine returns cosine similarity between two vectors, 0 on mismatch.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
