package graph

import (
	"fmt"
	"sort"

	"github.com/tidwall/btree"
)

// Cluster groups primary tabs using domain affinity plus similarity.
//
// Phase 1 (optional): any domain holding at least max(2, DomainGroupMin)
// tabs is force-unioned, regardless of content similarity.
//
// Phase 2: mutual k-nearest-neighbor union by default: tab i and tab j
// merge only when each ranks the other inside its own top-K candidates at
// or above GroupThreshold. The mutuality requirement keeps one central tab
// from dragging unrelated tabs into its cluster. With MutualKNN disabled,
// any pair at or above GroupThreshold is unioned directly.
//
// Group ids are "group_N" in the order their first member appears in the
// input, so identical input always yields identical groups.
func Cluster(tabs []*Tab, matrix [][]float64, cfg Config) ([]*Group, map[string]string) {
	n := len(tabs)
	uf := newUnionFind(n)

	if cfg.DomainGroup {
		minSize := cfg.DomainGroupMin
		if minSize < 2 {
			minSize = 2
		}
		var buckets btree.Map[string, []int]
		for idx, tab := range tabs {
			if tab.Domain == "" {
				continue
			}
			members, _ := buckets.Get(tab.Domain)
			buckets.Set(tab.Domain, append(members, idx))
		}
		buckets.Scan(func(_ string, members []int) bool {
			if len(members) >= minSize {
				for _, idx := range members[1:] {
					uf.union(members[0], idx)
				}
			}
			return true
		})
	}

	if cfg.MutualKNN {
		neighbors := make([]map[int]struct{}, n)
		for i := 0; i < n; i++ {
			candidates := make([]int, 0, n-1)
			for j := 0; j < n; j++ {
				if j != i && matrix[i][j] >= cfg.GroupThreshold {
					candidates = append(candidates, j)
				}
			}
			// Stable sort: equal scores keep the lower index first.
			sort.SliceStable(candidates, func(a, b int) bool {
				return matrix[i][candidates[a]] > matrix[i][candidates[b]]
			})
			if cfg.KNNK > 0 && len(candidates) > cfg.KNNK {
				candidates = candidates[:cfg.KNNK]
			}
			set := make(map[int]struct{}, len(candidates))
			for _, j := range candidates {
				set[j] = struct{}{}
			}
			neighbors[i] = set
		}
		for i := 0; i < n; i++ {
			for j := range neighbors[i] {
				if _, mutual := neighbors[j][i]; mutual {
					uf.union(i, j)
				}
			}
		}
	} else {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if matrix[i][j] >= cfg.GroupThreshold {
					uf.union(i, j)
				}
			}
		}
	}

	// Collect groups in discovery order: scanning tabs in input order,
	// a class becomes a group the first time any member is seen.
	var groups []*Group
	groupByRoot := make(map[int]*Group)
	groupOf := make(map[string]string, n)
	for idx, tab := range tabs {
		root := uf.find(idx)
		g, ok := groupByRoot[root]
		if !ok {
			g = &Group{ID: fmt.Sprintf("group_%d", len(groups))}
			groupByRoot[root] = g
			groups = append(groups, g)
		}
		g.TabIDs = append(g.TabIDs, tab.ID)
		g.Size++
		groupOf[tab.ID] = g.ID
	}
	return groups, groupOf
}
