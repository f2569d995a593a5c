package graph

// unionFind is a disjoint set over tab indexes, expressed as an
// array-indexed arena (index = position in the input slice) with path
// compression. Index-based unions keep every tie-break defined in terms of
// input order.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[rb] = ra
	}
}

// classes returns the members of every equivalence class keyed by root.
// Member slices are in ascending index order.
func (uf *unionFind) classes() map[int][]int {
	out := make(map[int][]int)
	for i := range uf.parent {
		root := uf.find(i)
		out[root] = append(out[root], i)
	}
	return out
}
