package unionfind

// UnionFind is a weighted quick-union forest with path halving.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// New returns a UnionFind of n singleton sets {0}, {1}, ..., {n-1}.
// It panics if n is negative.
// Complexity: O(n).
func New(n int) *UnionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &UnionFind{parent: parent, size: size, count: n}
}

// Find returns the representative of the set containing x.
// Every visited node is re-pointed to its grandparent (path halving).
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets containing x and y, hanging the smaller tree under
// the larger one. It reports whether a merge happened; unioning elements
// that are already connected changes nothing and returns false.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(x, y int) bool {
	rootX, rootY := uf.Find(x), uf.Find(y)
	if rootX == rootY {
		return false
	}
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	uf.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Size returns the number of elements in the set containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}

// Count returns the current number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Len returns the size of the universe fixed at construction.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}
