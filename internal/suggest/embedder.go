// Package suggest proposes a triage classification for raw inbox captures
// by comparing the capture text against area and goal labels in embedding
// space. It is optional wiring: without an API key the service degrades to
// a keyword heuristic.
package suggest

import "context"

// Embedder defines the interface contract for embedding generation services.
type Embedder interface {
	Embed(ctx context.Context, content string) ([]float32, error)
	EmbedBatch(ctx context.Context, contents []string) ([][]float32, error)
	ModelName() string
}
