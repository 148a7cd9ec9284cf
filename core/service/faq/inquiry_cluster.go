package faq

import (
	"sort"

	"inquiry_server/core/domain"
)

// =============================================================================
// Fuzzy Clustering Engine (greedy single pass)
// =============================================================================

// EngineConfig holds the clustering knobs.
type EngineConfig struct {
	// SimilarityThreshold is the minimum bigram similarity between a
	// candidate and a cluster representative for the candidate to join.
	SimilarityThreshold float64

	// TopN caps how many clusters are returned after ranking.
	TopN int
}

// DefaultEngineConfig returns the production clustering configuration.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		SimilarityThreshold: 0.3,
		TopN:                10,
	}
}

// Engine clusters candidate questions into FAQ groups.
//
// The pass is greedy and order-dependent: each candidate joins the FIRST
// existing cluster whose representative scores at or above the threshold,
// not the best-scoring one. This mirrors how the feature has always
// behaved; switching to best-match would re-shuffle historical groupings.
type Engine struct {
	config *EngineConfig
}

// NewEngine creates a clustering engine.
func NewEngine(config *EngineConfig) *Engine {
	if config == nil {
		config = DefaultEngineConfig()
	}
	return &Engine{config: config}
}

// Cluster groups candidates and returns the top clusters by member count,
// descending; ties keep cluster-creation order. An empty candidate list
// yields an empty result, never an error.
func (e *Engine) Cluster(candidates []string) []domain.QuestionCluster {
	clusters := make([]domain.QuestionCluster, 0)

	for _, q := range candidates {
		assigned := false
		for i := range clusters {
			if Similarity(q, clusters[i].Representative) >= e.config.SimilarityThreshold {
				clusters[i].Members = append(clusters[i].Members, q)
				clusters[i].Count++
				assigned = true
				break
			}
		}
		if !assigned {
			clusters = append(clusters, domain.QuestionCluster{
				Representative: q,
				Members:        []string{q},
				Count:          1,
			})
		}
	}

	for i := range clusters {
		electRepresentative(&clusters[i])
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Count > clusters[j].Count
	})

	if len(clusters) > e.config.TopN {
		clusters = clusters[:e.config.TopN]
	}
	return clusters
}

// electRepresentative re-elects the most central member once all members
// are known: the member maximizing the sum of pairwise similarities, with a
// tiny length bonus so shorter phrasings win ties. Singleton clusters keep
// their only member.
func electRepresentative(cluster *domain.QuestionCluster) {
	if len(cluster.Members) <= 1 {
		return
	}

	bestIdx := 0
	bestScore := -1.0
	for i, candidate := range cluster.Members {
		score := 0.0
		for j, other := range cluster.Members {
			if i == j {
				continue
			}
			score += Similarity(candidate, other)
		}
		score += 0.001 * (1 - float64(len(candidate))/200)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	cluster.Representative = cluster.Members[bestIdx]
}
