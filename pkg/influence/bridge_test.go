package influence

import "testing"

// bridgedTriangles connects two triangles through actor 3 and actor 10.
func bridgedTriangles() []Link {
	links := append(triangle(1, 2, 3, 0.8), triangle(10, 11, 12, 0.8)...)
	return append(links, Link{SourceID: 3, TargetID: 10, Weight: 0.3})
}

func TestDetectBridges_ConnectorQualifies(t *testing.T) {
	links := bridgedTriangles()
	result := DetectCommunities(links, nil, 10)

	bridges := DetectBridges(links, result.Labels, 20)
	if len(bridges) == 0 {
		t.Fatal("expected the connecting actors to qualify as bridges")
	}
	for _, b := range bridges {
		if b.CommunitiesConnected < 2 {
			t.Fatalf("bridge filter violated: %+v", b)
		}
		if b.ActorID != 3 && b.ActorID != 10 {
			t.Fatalf("unexpected bridge actor %d", b.ActorID)
		}
		if b.BetweennessCentrality < 0 || b.BetweennessCentrality > 1 {
			t.Fatalf("centrality out of range: %v", b.BetweennessCentrality)
		}
		if b.BridgeScore < 0 || b.BridgeScore > 100 {
			t.Fatalf("bridge score out of range: %v", b.BridgeScore)
		}
	}
}

func TestDetectBridges_OrderedAndLimited(t *testing.T) {
	links := bridgedTriangles()
	result := DetectCommunities(links, nil, 10)

	bridges := DetectBridges(links, result.Labels, 20)
	for i := 1; i < len(bridges); i++ {
		if bridges[i-1].BridgeScore < bridges[i].BridgeScore {
			t.Fatalf("bridges not ordered descending at %d: %v < %v", i, bridges[i-1].BridgeScore, bridges[i].BridgeScore)
		}
	}

	limited := DetectBridges(links, result.Labels, 1)
	if len(limited) > 1 {
		t.Fatalf("limit not applied, got %d results", len(limited))
	}
}

func TestDetectBridges_NoBridgesInsideOneCommunity(t *testing.T) {
	links := triangle(1, 2, 3, 0.9)
	result := DetectCommunities(links, nil, 10)
	if bridges := DetectBridges(links, result.Labels, 20); len(bridges) != 0 {
		t.Fatalf("expected no bridges in a single community, got %d", len(bridges))
	}
}

func TestDetectBridges_EmptyGraph(t *testing.T) {
	if bridges := DetectBridges(nil, map[int64]int64{}, 20); bridges != nil {
		t.Fatalf("expected nil for empty graph, got %v", bridges)
	}
}
