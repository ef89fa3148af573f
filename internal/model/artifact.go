package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// TrainingFeatures is the column order the ensemble was trained on. Artifacts
// whose feature list disagrees with it are rejected at load time.
var TrainingFeatures = []string{
	"RevolvingUtilizationOfUnsecuredLines",
	"age",
	"NumberOfTime30-59DaysPastDueNotWorse",
	"DebtRatio",
	"MonthlyIncome",
	"NumberOfOpenCreditLinesAndLoans",
	"NumberOfTimes90DaysLate",
	"NumberRealEstateLoansOrLines",
	"NumberOfTime60-89DaysPastDueNotWorse",
	"NumberOfDependents",
}

// Node is one decision node of a boosted tree. Value holds the cover-weighted
// expected margin of the training rows reaching the node; the attribution
// engine depends on it, so it is present on internal nodes as well as leaves.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
	Leaf      bool    `json:"leaf"`
}

// Tree is a single regressor of the ensemble, nodes indexed from the root at 0
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Artifact is the serialized form of the trained binary classifier: a
// gradient-boosted tree ensemble in margin (log-odds) space. It is produced
// by the offline training job and read-only at inference time.
type Artifact struct {
	Features  []string `json:"features"`
	BaseScore float64  `json:"base_score"`
	Trees     []Tree   `json:"trees"`
}

// LoadArtifact reads and validates an ensemble artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model artifact: %w", err)
	}
	defer file.Close()

	var art Artifact
	if err := json.NewDecoder(file).Decode(&art); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}

	if err := art.validate(); err != nil {
		return nil, err
	}

	return &art, nil
}

func (a *Artifact) validate() error {
	if len(a.Features) != len(TrainingFeatures) {
		return fmt.Errorf("artifact has %d features, expected %d", len(a.Features), len(TrainingFeatures))
	}
	for i, name := range TrainingFeatures {
		if a.Features[i] != name {
			return fmt.Errorf("artifact feature %d is %q, expected %q", i, a.Features[i], name)
		}
	}
	if len(a.Trees) == 0 {
		return fmt.Errorf("artifact contains no trees")
	}
	for ti, tree := range a.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, node := range tree.Nodes {
			if node.Leaf {
				continue
			}
			if node.Feature < 0 || node.Feature >= len(TrainingFeatures) {
				return fmt.Errorf("tree %d node %d splits on unknown feature %d", ti, ni, node.Feature)
			}
			if node.Left < 0 || node.Left >= len(tree.Nodes) || node.Right < 0 || node.Right >= len(tree.Nodes) {
				return fmt.Errorf("tree %d node %d has out-of-range children", ti, ni)
			}
		}
	}
	return nil
}

// leafIndex walks a tree for one input vector and returns the leaf reached.
// Missing values do not occur: the feature mapper always emits all ten slots.
func (t *Tree) leafIndex(vector []float64) int {
	idx := 0
	for !t.Nodes[idx].Leaf {
		node := t.Nodes[idx]
		if vector[node.Feature] < node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
	return idx
}
