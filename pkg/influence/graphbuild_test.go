package influence

import (
	"math"
	"testing"
	"time"
)

func TestBuildLinks_LogCompression(t *testing.T) {
	// Three actors fully mutually connected with volume 10, a fourth
	// connected only to actor 1 with volume 100.
	volumes := []VolumeTuple{
		{SourceID: 1, TargetID: 2, RawVolume: 10},
		{SourceID: 1, TargetID: 3, RawVolume: 10},
		{SourceID: 2, TargetID: 3, RawVolume: 10},
		{SourceID: 1, TargetID: 4, RawVolume: 100},
	}

	links := BuildLinks(volumes, nil)
	if len(links) != 4 {
		t.Fatalf("expected 4 links, got %d", len(links))
	}

	byKey := make(map[string]float64)
	for _, l := range links {
		byKey[EdgeKey(l.SourceID, l.TargetID)] = l.Weight
	}

	if w := byKey["1-4"]; w != 1.0 {
		t.Fatalf("max-volume edge must have weight 1.0, got %v", w)
	}
	want := math.Log(11) / math.Log(101)
	if w := byKey["1-2"]; !almostEqual(w, want) {
		t.Fatalf("expected ln(11)/ln(101) = %v, got %v", want, w)
	}
}

func TestBuildLinks_DropsZeroVolume(t *testing.T) {
	volumes := []VolumeTuple{
		{SourceID: 1, TargetID: 2, RawVolume: 5},
		{SourceID: 2, TargetID: 3, RawVolume: 0},
	}
	links := BuildLinks(volumes, nil)
	if len(links) != 1 {
		t.Fatalf("expected zero-volume pair to be dropped, got %d links", len(links))
	}
	if links[0].SourceID != 1 || links[0].TargetID != 2 {
		t.Fatalf("unexpected surviving link: %+v", links[0])
	}
}

func TestBuildLinks_Deterministic(t *testing.T) {
	started := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	volumes := []VolumeTuple{
		{SourceID: 3, TargetID: 1, RawVolume: 7},
		{SourceID: 1, TargetID: 2, RawVolume: 4},
		{SourceID: 2, TargetID: 1, RawVolume: 9},
	}
	calls := []CallRecord{
		{ActorID: 1, StartedAt: started, DurationSeconds: 1800},
		{ActorID: 2, StartedAt: started, DurationSeconds: 1800},
		{ActorID: 3, StartedAt: started, DurationSeconds: 1800},
	}

	first := BuildLinks(volumes, calls)
	second := BuildLinks(volumes, calls)
	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("run mismatch at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBuildLinks_CallCoOccurrence(t *testing.T) {
	started := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	// Two calls: actors 1,2,3 share one, actors 1,2 share another. Actor 4
	// is alone on a third call and must produce no edges.
	calls := []CallRecord{
		{ActorID: 1, StartedAt: started, DurationSeconds: 3600},
		{ActorID: 2, StartedAt: started, DurationSeconds: 3600},
		{ActorID: 3, StartedAt: started, DurationSeconds: 3600},
		{ActorID: 1, StartedAt: started.Add(2 * time.Hour), DurationSeconds: 900},
		{ActorID: 2, StartedAt: started.Add(2 * time.Hour), DurationSeconds: 900},
		{ActorID: 4, StartedAt: started.Add(4 * time.Hour), DurationSeconds: 600},
	}

	links := BuildLinks(nil, calls)

	seen := make(map[string]float64)
	for _, l := range links {
		seen[EdgeKey(l.SourceID, l.TargetID)] = l.Weight
	}
	if len(seen) != 3 {
		t.Fatalf("expected undirected pairs 1-2, 1-3, 2-3, got %v", seen)
	}
	// Pair 1-2 shares two calls, the others one; 1-2 carries the max volume.
	if seen["1-2"] != 1.0 {
		t.Fatalf("expected pair 1-2 at weight 1.0, got %v", seen["1-2"])
	}
	for _, key := range []string{"1-3", "2-3"} {
		if seen[key] >= 1.0 || seen[key] <= 0 {
			t.Fatalf("expected pair %s in (0,1), got %v", key, seen[key])
		}
	}
}

func TestBuildLinks_Empty(t *testing.T) {
	if links := BuildLinks(nil, nil); len(links) != 0 {
		t.Fatalf("expected no links for empty input, got %d", len(links))
	}
}

func TestEdgeKey_Canonical(t *testing.T) {
	if EdgeKey(7, 3) != EdgeKey(3, 7) {
		t.Fatal("edge key must not depend on direction")
	}
	if EdgeKey(3, 7) != "3-7" {
		t.Fatalf("unexpected edge key: %s", EdgeKey(3, 7))
	}
}
