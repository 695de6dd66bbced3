package hexgrid

import "sort"

// Components finds all connected components of cells labeled id, according
// to the hexagonal adjacency. Returns a slice of components, each a slice of
// row-major cell indices in BFS discovery order. Components are emitted in
// raster order of their first cell, and BFS uses an explicit queue so stack
// depth stays bounded on large grids.
//
// Time: O(W×H×6). Memory: O(W×H) for visited flags and output.
func (g *Grid) Components(id int) [][]int {
	total := g.Area()
	seen := make([]bool, total)
	var comps [][]int
	var nbuf [6]int

	for start := 0; start < total; start++ {
		if g.Labels[start] != id || seen[start] {
			continue
		}
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.NeighborIndices(u, nbuf[:0]) {
				if g.Labels[v] == id && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// LabelIDs returns the sorted distinct labels present on the grid, excluding
// Unassigned. Complexity: O(W×H + K log K) where K = distinct labels.
func (g *Grid) LabelIDs() []int {
	present := make(map[int]struct{})
	for _, id := range g.Labels {
		if id != Unassigned {
			present[id] = struct{}{}
		}
	}
	ids := make([]int, 0, len(present))
	for id := range present {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
