package influence

import "testing"

func chain(ids ...int64) []Link {
	links := make([]Link, 0, len(ids)-1)
	for i := 0; i+1 < len(ids); i++ {
		links = append(links, Link{SourceID: ids[i], TargetID: ids[i+1], Weight: 0.5})
	}
	return links
}

func TestShortestPath_Chain(t *testing.T) {
	links := chain(1, 2, 3, 4, 5)

	path, ok := ShortestPath(links, 1, 5)
	if !ok {
		t.Fatal("expected a path through the chain")
	}
	wantNodes := []int64{1, 2, 3, 4, 5}
	if len(path.Nodes) != len(wantNodes) {
		t.Fatalf("expected %d nodes, got %v", len(wantNodes), path.Nodes)
	}
	for i, n := range wantNodes {
		if path.Nodes[i] != n {
			t.Fatalf("node %d: expected %d, got %d", i, n, path.Nodes[i])
		}
	}
	if len(path.EdgeKeys) != 4 {
		t.Fatalf("expected 4 edge keys, got %v", path.EdgeKeys)
	}
	if path.EdgeKeys[0] != "1-2" || path.EdgeKeys[3] != "4-5" {
		t.Fatalf("unexpected edge keys: %v", path.EdgeKeys)
	}
}

func TestShortestPath_PrefersFewerHops(t *testing.T) {
	// Chain 1..5 plus a direct shortcut 1-5: BFS must take the shortcut.
	links := append(chain(1, 2, 3, 4, 5), Link{SourceID: 1, TargetID: 5, Weight: 0.1})

	path, ok := ShortestPath(links, 1, 5)
	if !ok {
		t.Fatal("expected a path")
	}
	if len(path.EdgeKeys) != 1 {
		t.Fatalf("expected the 1-hop shortcut, got %v", path.Nodes)
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	links := append(chain(1, 2, 3), chain(10, 11)...)

	if _, ok := ShortestPath(links, 1, 11); ok {
		t.Fatal("expected no path between disconnected components")
	}
	// Unknown target behaves the same: a defined no-path result.
	if _, ok := ShortestPath(links, 1, 999); ok {
		t.Fatal("expected no path to an absent node")
	}
}

func TestShortestPath_SameNode(t *testing.T) {
	links := chain(1, 2)
	path, ok := ShortestPath(links, 1, 1)
	if !ok {
		t.Fatal("expected trivial path from a node to itself")
	}
	if len(path.Nodes) != 1 || len(path.EdgeKeys) != 0 {
		t.Fatalf("unexpected trivial path: %+v", path)
	}
}

func TestComponents(t *testing.T) {
	links := append(chain(1, 2, 3), chain(10, 11)...)

	clusters := Components(links)
	if len(clusters) != 5 {
		t.Fatalf("expected 5 labeled nodes, got %d", len(clusters))
	}
	if clusters[1] != clusters[2] || clusters[2] != clusters[3] {
		t.Fatal("chain 1-2-3 must share a cluster")
	}
	if clusters[10] != clusters[11] {
		t.Fatal("pair 10-11 must share a cluster")
	}
	if clusters[1] == clusters[10] {
		t.Fatal("disjoint components must not share a cluster")
	}
}

func TestFilterLinks_MinWeight(t *testing.T) {
	links := []Link{
		{SourceID: 1, TargetID: 2, Weight: 0.9},
		{SourceID: 2, TargetID: 3, Weight: 0.1},
	}
	filtered := FilterLinks(links, 0, 0.5)
	if len(filtered) != 1 || filtered[0].Weight != 0.9 {
		t.Fatalf("expected only the heavy edge, got %v", filtered)
	}
}

func TestFilterLinks_NodeLimit(t *testing.T) {
	// Star around actor 1 plus a weak outlier pair; limiting to 3 nodes
	// keeps the strongest-connected actors.
	links := []Link{
		{SourceID: 1, TargetID: 2, Weight: 0.9},
		{SourceID: 1, TargetID: 3, Weight: 0.8},
		{SourceID: 4, TargetID: 5, Weight: 0.1},
	}
	filtered := FilterLinks(links, 3, 0)
	nodes := Nodes(filtered)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %v", nodes)
	}
	for _, n := range nodes {
		if n == 4 || n == 5 {
			t.Fatalf("outlier pair should have been trimmed, got %v", nodes)
		}
	}
}

func TestShortestPath_ScopedToFilteredSubgraph(t *testing.T) {
	// The path is computed over whatever subgraph is displayed: filtering
	// out the middle edge must break the route.
	links := chain(1, 2, 3)
	links[1].Weight = 0.05

	scoped := FilterLinks(links, 0, 0.1)
	if _, ok := ShortestPath(scoped, 1, 3); ok {
		t.Fatal("expected no path after the connecting edge was filtered out")
	}
}
