package model

import (
	"log/slog"
	"math"
	"sync"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/Parikshit006/AiCreditScoring/internal/errors"
)

// Classifier wraps the boosted-tree ensemble behind lazy load-on-first-use
// semantics. The artifact path is injected at construction; the artifact is
// read once and treated as immutable afterwards, so concurrent predictions
// need no coordination beyond the load transition itself.
type Classifier struct {
	path string

	mu       sync.RWMutex
	artifact *Artifact

	loadGroup singleflight.Group
}

// NewClassifier creates an unloaded classifier bound to an artifact path.
func NewClassifier(path string) *Classifier {
	return &Classifier{path: path}
}

// EnsureLoaded loads the artifact if it is not resident yet. Concurrent
// callers racing on the first load are collapsed into a single disk read;
// a failed load leaves the classifier unloaded so the next call retries.
func (c *Classifier) EnsureLoaded() (*Artifact, error) {
	c.mu.RLock()
	art := c.artifact
	c.mu.RUnlock()
	if art != nil {
		return art, nil
	}

	v, err, _ := c.loadGroup.Do("load", func() (interface{}, error) {
		c.mu.RLock()
		loaded := c.artifact
		c.mu.RUnlock()
		if loaded != nil {
			return loaded, nil
		}

		art, err := LoadArtifact(c.path)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.artifact = art
		c.mu.Unlock()

		slog.Info("Model artifact loaded", "path", c.path, "trees", len(art.Trees))
		return art, nil
	})
	if err != nil {
		return nil, apperrors.NewModelUnavailableError("Model not loaded", err)
	}

	return v.(*Artifact), nil
}

// Loaded reports whether the artifact is resident, without triggering a load.
func (c *Classifier) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.artifact != nil
}

// Predict returns the positive-class probability of default for one feature
// vector in training column order.
func (c *Classifier) Predict(vector []float64) (float64, error) {
	art, err := c.EnsureLoaded()
	if err != nil {
		return 0, err
	}

	return sigmoid(art.margin(vector)), nil
}

// margin sums the ensemble's raw log-odds output for one vector.
func (a *Artifact) margin(vector []float64) float64 {
	m := a.BaseScore
	for i := range a.Trees {
		tree := &a.Trees[i]
		m += tree.Nodes[tree.leafIndex(vector)].Value
	}
	return m
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
