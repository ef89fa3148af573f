package model

import (
	"fmt"
	"sync"
)

// Attribution maps a canonical feature name to its signed contribution to one
// prediction's margin.
type Attribution map[string]float64

// Explainer produces per-feature additive contributions by decision-path
// attribution: every tree node carries the expected margin of the training
// rows that reach it, and each step down the path charges the change in that
// expectation to the split feature. The per-node expectations stored in the
// artifact are the baseline, so no separate background dataset is consulted
// at inference time. Contributions plus the per-tree root expectations and
// the base score reconstruct the predicted margin exactly.
//
// The explainer binds lazily to the classifier's loaded artifact and rebinds
// if the classifier reloads.
type Explainer struct {
	classifier *Classifier

	mu    sync.Mutex
	bound *Artifact
}

// NewExplainer creates an explainer bound to the given classifier.
func NewExplainer(classifier *Classifier) *Explainer {
	return &Explainer{classifier: classifier}
}

// Explain computes one attribution value per training feature for a single
// feature vector in training column order.
func (e *Explainer) Explain(vector []float64) (Attribution, error) {
	art, err := e.classifier.EnsureLoaded()
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	if e.bound != art {
		e.bound = art
	}
	e.mu.Unlock()

	if len(vector) != len(art.Features) {
		return nil, fmt.Errorf("attribution expects %d features, got %d", len(art.Features), len(vector))
	}

	contrib := make([]float64, len(art.Features))
	for i := range art.Trees {
		attributePath(&art.Trees[i], vector, contrib)
	}

	attribution := make(Attribution, len(art.Features))
	for i, name := range art.Features {
		attribution[name] = contrib[i]
	}
	return attribution, nil
}

// attributePath walks one tree's decision path and accumulates, per split
// feature, the change in expected margin at each step.
func attributePath(t *Tree, vector []float64, contrib []float64) {
	idx := 0
	for !t.Nodes[idx].Leaf {
		node := t.Nodes[idx]
		next := node.Right
		if vector[node.Feature] < node.Threshold {
			next = node.Left
		}
		contrib[node.Feature] += t.Nodes[next].Value - node.Value
		idx = next
	}
}

// Bias returns the attribution baseline: base score plus the summed root
// expectations. Margin(x) == Bias() + sum of contributions for x.
func (e *Explainer) Bias() (float64, error) {
	art, err := e.classifier.EnsureLoaded()
	if err != nil {
		return 0, err
	}

	bias := art.BaseScore
	for i := range art.Trees {
		bias += art.Trees[i].Nodes[0].Value
	}
	return bias, nil
}
