package influence

import "sort"

// Path is a hop-count shortest path: the node sequence plus the canonical
// edge key for each hop.
type Path struct {
	Nodes    []int64  `json:"nodes"`
	EdgeKeys []string `json:"edge_keys"`
}

// FilterLinks scopes the edge list to what a graph client displays: edges
// below minWeight are dropped, then the node set is limited to the maxNodes
// actors with the greatest total incident weight (ties by ascending id).
// maxNodes <= 0 means no node limit.
func FilterLinks(links []Link, maxNodes int, minWeight float64) []Link {
	filtered := make([]Link, 0, len(links))
	for _, l := range links {
		if l.Weight >= minWeight {
			filtered = append(filtered, l)
		}
	}
	if maxNodes <= 0 {
		return filtered
	}

	strength := make(map[int64]float64)
	for _, l := range filtered {
		strength[l.SourceID] += l.Weight
		strength[l.TargetID] += l.Weight
	}
	if len(strength) <= maxNodes {
		return filtered
	}

	ids := make([]int64, 0, len(strength))
	for id := range strength {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if strength[ids[i]] != strength[ids[j]] {
			return strength[ids[i]] > strength[ids[j]]
		}
		return ids[i] < ids[j]
	})

	keep := make(map[int64]struct{}, maxNodes)
	for _, id := range ids[:maxNodes] {
		keep[id] = struct{}{}
	}

	scoped := filtered[:0]
	for _, l := range filtered {
		if _, ok := keep[l.SourceID]; !ok {
			continue
		}
		if _, ok := keep[l.TargetID]; !ok {
			continue
		}
		scoped = append(scoped, l)
	}
	return scoped
}

// Nodes returns the distinct actor ids of the edge list in ascending order.
func Nodes(links []Link) []int64 {
	return sortedActorIDs(foldAdjacency(links))
}

// Components assigns a cluster index to every node of the edge list using
// an iterative stack traversal. Indices are assigned in ascending order of
// each component's smallest actor id.
func Components(links []Link) map[int64]int {
	adj := foldAdjacency(links)
	clusters := make(map[int64]int, len(adj))
	next := 0

	for _, start := range sortedActorIDs(adj) {
		if _, seen := clusters[start]; seen {
			continue
		}
		stack := []int64{start}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, seen := clusters[node]; seen {
				continue
			}
			clusters[node] = next
			for _, neighbor := range sortedNeighborIDs(adj[node]) {
				if _, seen := clusters[neighbor]; !seen {
					stack = append(stack, neighbor)
				}
			}
		}
		next++
	}
	return clusters
}

// ShortestPath runs a breadth-first search from source to target over the
// given edge set and returns the hop-count shortest path. Edge weights are
// ignored. The second return value is false when no path exists; that is a
// defined result, distinct from any computation failure.
func ShortestPath(links []Link, source, target int64) (Path, bool) {
	adj := foldAdjacency(links)
	if _, ok := adj[source]; !ok {
		return Path{}, false
	}
	if _, ok := adj[target]; !ok {
		return Path{}, false
	}
	if source == target {
		return Path{Nodes: []int64{source}, EdgeKeys: []string{}}, true
	}

	parent := map[int64]int64{source: source}
	queue := []int64{source}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, neighbor := range sortedNeighborIDs(adj[node]) {
			if _, seen := parent[neighbor]; seen {
				continue
			}
			parent[neighbor] = node
			if neighbor == target {
				return assemblePath(parent, source, target), true
			}
			queue = append(queue, neighbor)
		}
	}
	return Path{}, false
}

func assemblePath(parent map[int64]int64, source, target int64) Path {
	nodes := []int64{target}
	for node := target; node != source; node = parent[node] {
		nodes = append(nodes, parent[node])
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	keys := make([]string, 0, len(nodes)-1)
	for i := 0; i+1 < len(nodes); i++ {
		keys = append(keys, EdgeKey(nodes[i], nodes[i+1]))
	}
	return Path{Nodes: nodes, EdgeKeys: keys}
}
