package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tuning knob of the engine. The whole pipeline is a
// pure function of (tabs, events, Config); policy choices like mutual-KNN
// vs. plain thresholding live here rather than in code branches.
type Config struct {
	// EdgeThreshold is the minimum similarity score for a similarity
	// edge. Scores are unnormalized (cosine-or-Jaccard plus the domain
	// bonus) and may exceed 1.0.
	EdgeThreshold float64 `yaml:"edge_threshold"`

	// GroupThreshold is the minimum similarity score for clustering.
	GroupThreshold float64 `yaml:"group_threshold"`

	// DomainBonus is added to the score when both tabs share a nonempty
	// domain.
	DomainBonus float64 `yaml:"domain_bonus"`

	// DomainGroup force-unions tabs sharing a domain before similarity
	// clustering runs.
	DomainGroup bool `yaml:"domain_group"`

	// DomainGroupMin is the minimum bucket size for domain pre-grouping
	// (never effectively below 2).
	DomainGroupMin int `yaml:"domain_group_min"`

	// MutualKNN selects mutual k-nearest-neighbor clustering; when
	// false, any pair above GroupThreshold is unioned directly.
	MutualKNN bool `yaml:"mutual_knn"`

	// KNNK is the candidate-set size for mutual-KNN (0 = unlimited).
	KNNK int `yaml:"knn_k"`

	// DedupeHamming is the maximum simhash Hamming distance for the
	// near-duplicate merge rule.
	DedupeHamming int `yaml:"dedupe_hamming"`

	// KeywordCount is how many keywords to extract per tab.
	KeywordCount int `yaml:"keyword_count"`

	// NavigationPriority makes observed navigation edges replace
	// inferred similarity edges on merge.
	NavigationPriority bool `yaml:"navigation_priority"`
}

// DefaultConfig returns the tuning the thresholds were calibrated for.
func DefaultConfig() Config {
	return Config{
		EdgeThreshold:      0.2,
		GroupThreshold:     0.25,
		DomainBonus:        0.25,
		DomainGroup:        true,
		DomainGroupMin:     2,
		MutualKNN:          true,
		KNNK:               6,
		DedupeHamming:      3,
		KeywordCount:       8,
		NavigationPriority: true,
	}
}

// LoadConfig reads a YAML configuration file using strict parsing.
// Missing file path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig() // Start with defaults

	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open engine config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML syntax error in engine config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.DedupeHamming < 0 || c.DedupeHamming > 64 {
		return fmt.Errorf("dedupe_hamming must be in [0,64], got %d", c.DedupeHamming)
	}
	if c.KNNK < 0 {
		return fmt.Errorf("knn_k must be >= 0, got %d", c.KNNK)
	}
	if c.KeywordCount <= 0 {
		return fmt.Errorf("keyword_count must be > 0, got %d", c.KeywordCount)
	}
	return nil
}
