package faq

import (
	"testing"

	"inquiry_server/core/domain"
)

func TestClusterGroupsNearDuplicates(t *testing.T) {
	engine := NewEngine(nil)

	clusters := engine.Cluster([]string{
		"what is the eta for my shipment?",
		"what's the eta on my shipment?",
		"do you accept returns?",
	})

	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2: %+v", len(clusters), clusters)
	}
	if clusters[0].Count != 2 {
		t.Errorf("top cluster count = %d, want 2", clusters[0].Count)
	}
	if clusters[1].Count != 1 || clusters[1].Representative != "do you accept returns?" {
		t.Errorf("unrelated question merged: %+v", clusters[1])
	}
}

func TestClusterFirstMatchWins(t *testing.T) {
	// The third candidate scores above the threshold against both existing
	// clusters but higher against the second; it must still join the first.
	engine := NewEngine(nil)

	clusters := engine.Cluster([]string{
		"abcdef?",
		"fghijk?",
		"cdefgh?",
	})

	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2: %+v", len(clusters), clusters)
	}
	if clusters[0].Count != 2 {
		t.Errorf("first cluster count = %d, want 2 (first match must win)", clusters[0].Count)
	}
	if !containsMember(clusters[0], "cdefgh?") {
		t.Errorf("first cluster missing joined member: %+v", clusters[0])
	}
	if clusters[1].Representative != "fghijk?" {
		t.Errorf("second cluster = %+v, want untouched singleton", clusters[1])
	}
}

func TestClusterRepresentativeReelection(t *testing.T) {
	// The most central phrasing wins the representative slot even when a
	// longer variant arrived first.
	engine := NewEngine(nil)

	clusters := engine.Cluster([]string{
		"what is the eta for my shipment to vietnam?",
		"what is the eta for my shipment?",
		"what is the eta?",
	})

	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1: %+v", len(clusters), clusters)
	}
	if got, want := clusters[0].Representative, "what is the eta for my shipment?"; got != want {
		t.Errorf("representative = %q, want %q", got, want)
	}
	if clusters[0].Count != 3 {
		t.Errorf("count = %d, want 3", clusters[0].Count)
	}
}

func TestClusterSortsByCountDescending(t *testing.T) {
	engine := NewEngine(nil)

	clusters := engine.Cluster([]string{
		"do you accept returns?",
		"what is the eta for my shipment?",
		"what's the eta on my shipment?",
		"could you tell the eta for my shipment?",
	})

	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2: %+v", len(clusters), clusters)
	}
	if clusters[0].Count != 3 || clusters[1].Count != 1 {
		t.Errorf("counts = [%d %d], want [3 1]", clusters[0].Count, clusters[1].Count)
	}
}

func TestClusterTopNTruncation(t *testing.T) {
	engine := NewEngine(&EngineConfig{SimilarityThreshold: 0.3, TopN: 2})

	clusters := engine.Cluster([]string{
		"what is the eta for my shipment?",
		"do you accept returns?",
		"where is your office located?",
	})

	if len(clusters) != 2 {
		t.Errorf("got %d clusters, want 2 after truncation", len(clusters))
	}
}

func TestClusterEmptyInput(t *testing.T) {
	engine := NewEngine(nil)
	if got := engine.Cluster(nil); len(got) != 0 {
		t.Errorf("Cluster(nil) = %+v, want empty", got)
	}
}

func TestExtractAndClusterScenario(t *testing.T) {
	// Five inquiry bodies, three phrasings of the same ETA question: the top
	// cluster must aggregate all three.
	bodies := []string{
		"<p>What is the ETA for my shipment?</p>",
		"What's the ETA on my shipment?\nThanks",
		"Hello\nCould you tell the ETA for my shipment?",
		"Do you accept returns?",
		"Where is your office located?",
	}

	engine := NewEngine(nil)
	clusters := engine.Cluster(ExtractQuestions(bodies))

	if len(clusters) != 3 {
		t.Fatalf("got %d clusters, want 3: %+v", len(clusters), clusters)
	}
	if clusters[0].Count != 3 {
		t.Errorf("top cluster count = %d, want 3: %+v", clusters[0].Count, clusters[0])
	}
}

func containsMember(c domain.QuestionCluster, q string) bool {
	for _, m := range c.Members {
		if m == q {
			return true
		}
	}
	return false
}
