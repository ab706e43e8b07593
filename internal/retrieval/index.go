// Package retrieval maintains an in-memory vector index over a corpus of
// guideline documents and answers nearest-neighbor text queries.
//
// The index is process-wide state: it is built lazily, in full, on the first
// query and shared by every subsequent retrieval. Retrieval never returns an
// error; an absent corpus, an embedding failure or an oversized k all degrade
// to smaller or empty output.
package retrieval

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/llm"
)

// chunkSize is the fixed byte length of a guideline chunk. Documents are
// split into contiguous slices with no overlap and no boundary awareness.
const chunkSize = 800

// embedBatchSize caps how many chunks go into one embedding request.
const embedBatchSize = 64

// Embedder is the embedding capability consumed by the index.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Index is a flat (brute-force) squared-L2 nearest-neighbor index over
// guideline chunks. The zero corpus is a valid degraded state in which every
// query answers with an empty string.
type Index struct {
	dataDir  string
	embedder Embedder // may be nil
	log      *zap.Logger

	mu      sync.Mutex
	built   bool
	chunks  []string
	vectors [][]float32
}

// New creates an index over *.md documents in dataDir. embedder may be nil;
// indexing then proceeds with zero vectors so queries stay dimensionally
// valid.
func New(dataDir string, embedder Embedder, log *zap.Logger) *Index {
	return &Index{
		dataDir:  dataDir,
		embedder: embedder,
		log:      log,
	}
}

// Retrieve returns up to k relevant guideline passages as one concatenated
// block, closest first, separated by blank lines. It returns an empty string
// when no corpus exists.
func (ix *Index) Retrieve(ctx context.Context, query string, k int) string {
	ix.ensureBuilt(ctx)

	ix.mu.Lock()
	chunks := ix.chunks
	vectors := ix.vectors
	ix.mu.Unlock()

	if len(chunks) == 0 || k <= 0 {
		return ""
	}

	queryVec := ix.embedOrZero(ctx, []string{query})[0]
	neighbors := nearest(vectors, queryVec, k)

	passages := make([]string, 0, len(neighbors))
	for _, i := range neighbors {
		// Guards k exceeding the corpus size.
		if i >= 0 && i < len(chunks) {
			passages = append(passages, chunks[i])
		}
	}
	return strings.Join(passages, "\n\n")
}

// ensureBuilt performs the one-time lazy corpus build. The mutex makes the
// build happen at most once per process even under concurrent first queries.
func (ix *Index) ensureBuilt(ctx context.Context) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.built {
		return
	}
	ix.built = true

	if _, err := os.Stat(ix.dataDir); os.IsNotExist(err) {
		// No guidelines available: create the location empty and stay in
		// degraded mode permanently.
		if mkErr := os.MkdirAll(ix.dataDir, 0o755); mkErr != nil {
			ix.log.Warn("failed to create guidelines dir", zap.String("dir", ix.dataDir), zap.Error(mkErr))
		}
		ix.log.Info("no guideline corpus found, retrieval disabled", zap.String("dir", ix.dataDir))
		return
	}

	files, err := filepath.Glob(filepath.Join(ix.dataDir, "*.md"))
	if err != nil {
		ix.log.Warn("guideline enumeration failed", zap.Error(err))
		return
	}

	var chunks []string
	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			ix.log.Warn("failed to read guideline document", zap.String("file", f), zap.Error(err))
			continue
		}
		chunks = append(chunks, splitChunks(string(content))...)
	}
	if len(chunks) == 0 {
		ix.log.Info("guideline corpus is empty, retrieval disabled", zap.String("dir", ix.dataDir))
		return
	}

	ix.chunks = chunks
	ix.vectors = ix.embedChunks(ctx, chunks)
	ix.log.Info("guideline index built",
		zap.Int("documents", len(files)), zap.Int("chunks", len(chunks)))
}

// embedChunks embeds the corpus in batches, fanning the batches out
// concurrently. Failed batches fall back to zero vectors.
func (ix *Index) embedChunks(ctx context.Context, chunks []string) [][]float32 {
	vectors := make([][]float32, len(chunks))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := min(start+embedBatchSize, len(chunks))
		g.Go(func() error {
			batch := ix.embedOrZero(gCtx, chunks[start:end])
			copy(vectors[start:end], batch)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; degraded batches are zeroed

	return vectors
}

// embedOrZero embeds texts, substituting zero vectors of the declared
// dimensionality when the capability is absent or fails.
func (ix *Index) embedOrZero(ctx context.Context, texts []string) [][]float32 {
	if ix.embedder != nil {
		vectors, err := ix.embedder.EmbedTexts(ctx, texts)
		if err == nil && len(vectors) == len(texts) {
			return vectors
		}
		if err != nil {
			ix.log.Warn("embedding failed, substituting zero vectors", zap.Error(err))
		}
	}
	vectors := make([][]float32, len(texts))
	for i := range vectors {
		vectors[i] = make([]float32, llm.EmbeddingDim)
	}
	return vectors
}

// splitChunks slices content into fixed-size contiguous chunks, preserving
// in-document order.
func splitChunks(content string) []string {
	var chunks []string
	for start := 0; start < len(content); start += chunkSize {
		end := min(start+chunkSize, len(content))
		chunks = append(chunks, content[start:end])
	}
	return chunks
}

// nearest returns the indices of the k vectors closest to query by squared
// Euclidean distance, closest first.
func nearest(vectors [][]float32, query []float32, k int) []int {
	type candidate struct {
		index int
		dist  float64
	}

	candidates := make([]candidate, 0, len(vectors))
	for i, v := range vectors {
		candidates = append(candidates, candidate{index: i, dist: squaredL2(v, query)})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].dist < candidates[b].dist
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	result := make([]int, 0, k)
	for _, c := range candidates[:k] {
		result = append(result, c.index)
	}
	return result
}

// squaredL2 computes the squared Euclidean distance between two vectors.
// Mismatched dimensions compare over the shorter prefix.
func squaredL2(a, b []float32) float64 {
	n := min(len(a), len(b))
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
