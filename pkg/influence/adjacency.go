package influence

import "sort"

// adjacency is the undirected folded view of the edge list: reciprocal
// directed links collapse into one relation per unordered pair, weights
// summed if both directions exist.
type adjacency map[int64]map[int64]float64

func foldAdjacency(links []Link) adjacency {
	adj := make(adjacency)
	add := func(a, b int64, w float64) {
		if adj[a] == nil {
			adj[a] = make(map[int64]float64)
		}
		adj[a][b] += w
	}
	for _, l := range links {
		if l.SourceID == l.TargetID {
			continue
		}
		add(l.SourceID, l.TargetID, l.Weight)
		add(l.TargetID, l.SourceID, l.Weight)
	}
	return adj
}

// sortedActorIDs returns every actor appearing in the adjacency in
// ascending id order. All core iteration uses this order so that runs are
// deterministic given identical input.
func sortedActorIDs(adj adjacency) []int64 {
	ids := make([]int64, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedNeighborIDs(neighbors map[int64]float64) []int64 {
	ids := make([]int64, 0, len(neighbors))
	for id := range neighbors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
