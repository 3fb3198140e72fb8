package influence

import (
	"fmt"
	"testing"
)

func scoresWithUnified(values ...float64) []ActorScore {
	scores := make([]ActorScore, len(values))
	for i, v := range values {
		scores[i] = ActorScore{ActorID: int64(i + 1), UnifiedScore: v}
	}
	return scores
}

func TestAssignRanks_Monotonic(t *testing.T) {
	scores := scoresWithUnified(12.5, 99.1, 45.0, 45.0, 3.3, 88.8)
	ranked := AssignRanks(scores)

	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].UnifiedScore < ranked[i].UnifiedScore {
			t.Fatalf("rank order violated at %d: %v < %v", i, ranked[i-1].UnifiedScore, ranked[i].UnifiedScore)
		}
		if ranked[i].Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, ranked[i].Rank)
		}
	}
}

func TestAssignRanks_TiesByActorID(t *testing.T) {
	scores := []ActorScore{
		{ActorID: 9, UnifiedScore: 50},
		{ActorID: 2, UnifiedScore: 50},
		{ActorID: 5, UnifiedScore: 50},
	}
	ranked := AssignRanks(scores)
	if ranked[0].ActorID != 2 || ranked[1].ActorID != 5 || ranked[2].ActorID != 9 {
		t.Fatalf("ties must break by ascending actor id, got %v %v %v",
			ranked[0].ActorID, ranked[1].ActorID, ranked[2].ActorID)
	}
}

func TestAssignRanks_TopBadges(t *testing.T) {
	values := make([]float64, 12)
	for i := range values {
		values[i] = float64(100 - i)
	}
	ranked := AssignRanks(scoresWithUnified(values...))

	wantTop := []string{
		BadgeKing, BadgeQueen, BadgeQueen,
		BadgeRook, BadgeRook, BadgeRook, BadgeRook, BadgeRook, BadgeRook, BadgeRook,
	}
	for i, want := range wantTop {
		if ranked[i].Badge != want {
			t.Fatalf("rank %d: expected %s, got %s", i+1, want, ranked[i].Badge)
		}
	}
}

func TestAssignRanks_PercentileBadges(t *testing.T) {
	// 110 actors: 100 remain after the top 10. Top 15% of the remainder
	// (ranks 11-25) are Bishops, next tier through 30% (ranks 26-40) are
	// Knights, the rest Pawns.
	values := make([]float64, 110)
	for i := range values {
		values[i] = float64(1000 - i)
	}
	ranked := AssignRanks(scoresWithUnified(values...))

	checks := []struct {
		rank int
		want string
	}{
		{11, BadgeBishop},
		{25, BadgeBishop},
		{26, BadgeKnight},
		{40, BadgeKnight},
		{41, BadgePawn},
		{110, BadgePawn},
	}
	for _, c := range checks {
		if got := ranked[c.rank-1].Badge; got != c.want {
			t.Fatalf("rank %d: expected %s, got %s", c.rank, c.want, got)
		}
	}
}

func TestAssignRanks_StableAcrossRuns(t *testing.T) {
	build := func() []ActorScore {
		scores := make([]ActorScore, 30)
		for i := range scores {
			scores[i] = ActorScore{ActorID: int64(i + 1), UnifiedScore: float64((i * 7) % 11)}
		}
		return scores
	}
	first := AssignRanks(build())
	second := AssignRanks(build())
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("rank output differs at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func ExampleAssignRanks() {
	ranked := AssignRanks([]ActorScore{
		{ActorID: 1, UnifiedScore: 42.0},
		{ActorID: 2, UnifiedScore: 87.5},
	})
	fmt.Println(ranked[0].ActorID, ranked[0].Badge)
	// Output: 2 King
}
