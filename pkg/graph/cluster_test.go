package graph

import (
	"testing"
)

func clusterConfig() Config {
	cfg := DefaultConfig()
	cfg.DomainGroup = false // tests enable what they exercise
	return cfg
}

func TestClusterDomainPreGrouping(t *testing.T) {
	// Three tabs on one domain, no content signal at all. With the
	// threshold raised beyond the domain bonus, only phase 1 can group
	// them, and it must.
	tabs := []*Tab{
		{ID: "a", Domain: "docs.example.com"},
		{ID: "b", Domain: "docs.example.com"},
		{ID: "c", Domain: "docs.example.com"},
	}
	cfg := DefaultConfig()
	cfg.GroupThreshold = 0.5

	matrix := BuildMatrix(tabs, cfg.DomainBonus)
	groups, groupOf := Cluster(tabs, matrix, cfg)

	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].ID != "group_0" || groups[0].Size != 3 {
		t.Errorf("group = %+v, want group_0 with 3 members", groups[0])
	}
	for _, id := range []string{"a", "b", "c"} {
		if groupOf[id] != "group_0" {
			t.Errorf("groupOf[%s] = %q, want group_0", id, groupOf[id])
		}
	}
}

func TestClusterDomainGroupMin(t *testing.T) {
	// A domain below the minimum bucket size is left alone.
	tabs := []*Tab{
		{ID: "a", Domain: "x.com"},
		{ID: "b", Domain: "y.com"},
	}
	cfg := DefaultConfig()
	cfg.GroupThreshold = 0.5

	groups, _ := Cluster(tabs, BuildMatrix(tabs, cfg.DomainBonus), cfg)
	if len(groups) != 2 {
		t.Errorf("groups = %d, want 2 singletons", len(groups))
	}
}

func TestClusterMutualKNN(t *testing.T) {
	// jaccard(a,b) = 2/3, jaccard(b,c) = 1/3, jaccard(a,c) = 0.
	tabs := []*Tab{
		{ID: "a", Keywords: []string{"rust", "async"}},
		{ID: "b", Keywords: []string{"rust", "async", "tokio"}},
		{ID: "c", Keywords: []string{"tokio"}},
	}
	cfg := clusterConfig()
	cfg.KNNK = 1

	matrix := BuildMatrix(tabs, cfg.DomainBonus)
	groups, groupOf := Cluster(tabs, matrix, cfg)

	// With K=1, b's only candidate is a. c ranks b first, but the
	// feeling is not mutual, so c stays out.
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groupOf["a"] != groupOf["b"] {
		t.Errorf("a and b must share a group")
	}
	if groupOf["c"] == groupOf["a"] {
		t.Errorf("c must not be dragged into a's group")
	}
}

func TestClusterSimpleThreshold(t *testing.T) {
	// Same data, mutuality disabled: the b-c pair above threshold now
	// chains everything into one group.
	tabs := []*Tab{
		{ID: "a", Keywords: []string{"rust", "async"}},
		{ID: "b", Keywords: []string{"rust", "async", "tokio"}},
		{ID: "c", Keywords: []string{"tokio"}},
	}
	cfg := clusterConfig()
	cfg.MutualKNN = false

	groups, _ := Cluster(tabs, BuildMatrix(tabs, cfg.DomainBonus), cfg)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].Size != 3 {
		t.Errorf("group size = %d, want 3", groups[0].Size)
	}
}

func TestClusterGroupIDsFollowDiscoveryOrder(t *testing.T) {
	tabs := []*Tab{
		{ID: "solo1", Keywords: []string{"gardening"}},
		{ID: "pair1", Keywords: []string{"rust", "async"}},
		{ID: "solo2", Keywords: []string{"baking"}},
		{ID: "pair2", Keywords: []string{"rust", "async"}},
	}
	cfg := clusterConfig()

	groups, groupOf := Cluster(tabs, BuildMatrix(tabs, cfg.DomainBonus), cfg)

	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	// Discovery order: solo1 → group_0, pair1 (+pair2) → group_1,
	// solo2 → group_2.
	if groupOf["solo1"] != "group_0" || groupOf["pair1"] != "group_1" ||
		groupOf["solo2"] != "group_2" || groupOf["pair2"] != "group_1" {
		t.Errorf("unexpected group assignment: %v", groupOf)
	}
}

func TestClusterDeterministic(t *testing.T) {
	tabs := func() []*Tab {
		return []*Tab{
			{ID: "a", Domain: "x.com", Keywords: []string{"rust", "async"}},
			{ID: "b", Domain: "x.com", Keywords: []string{"rust", "tokio"}},
			{ID: "c", Domain: "y.com", Keywords: []string{"rust", "async"}},
			{ID: "d", Domain: "z.com", Keywords: []string{"gardening"}},
		}
	}
	cfg := DefaultConfig()

	run := func() map[string]string {
		ts := tabs()
		_, groupOf := Cluster(ts, BuildMatrix(ts, cfg.DomainBonus), cfg)
		return groupOf
	}
	first := run()
	for i := 0; i < 10; i++ {
		again := run()
		for id, gid := range first {
			if again[id] != gid {
				t.Fatalf("run %d: groupOf[%s] = %q, want %q", i, id, again[id], gid)
			}
		}
	}
}
