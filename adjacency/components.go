package adjacency

// Components partitions the keys of m into connected regions. Regions are
// ordered by their smallest cell; cells within a region are in discovery
// order of a breadth-first sweep from that cell.
//
// Time:   O(V + E).
// Memory: O(V) for the seen flags and output.
func (m *Mapping) Components() [][]int {
	seen := make([]bool, len(m.present))
	var comps [][]int

	for c0, ok := range m.present {
		if !ok || seen[c0] {
			continue
		}
		queue := []int{c0}
		seen[c0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range m.lists[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether a and b are keys of the same region.
func (m *Mapping) Connected(a, b int) bool {
	if !m.Has(a) || !m.Has(b) {
		return false
	}
	for _, comp := range m.Components() {
		if contains(comp, a) {
			return contains(comp, b)
		}
	}
	return false
}
