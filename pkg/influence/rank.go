package influence

import "sort"

// Badge titles, assigned by rank and percentile.
const (
	BadgeKing   = "King"
	BadgeQueen  = "Queen"
	BadgeRook   = "Rook"
	BadgeBishop = "Bishop"
	BadgeKnight = "Knight"
	BadgePawn   = "Pawn"
)

// AssignRanks sorts the scores descending by unified score (ties broken by
// ascending actor id), assigns 1-based ranks and badges, and returns the
// same slice. This is a pure function of the final sorted order and must be
// recomputed whenever any score changes.
func AssignRanks(scores []ActorScore) []ActorScore {
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].UnifiedScore != scores[j].UnifiedScore {
			return scores[i].UnifiedScore > scores[j].UnifiedScore
		}
		return scores[i].ActorID < scores[j].ActorID
	})

	remainder := len(scores) - 10
	for i := range scores {
		rank := i + 1
		scores[i].Rank = rank
		scores[i].Badge = badgeForRank(rank, remainder)
	}
	return scores
}

// badgeForRank maps a 1-based rank to its badge. Ranks past 10 fall into
// percentile tiers of the remaining field: top 15% Bishop, top 30% Knight,
// the rest Pawn.
func badgeForRank(rank, remainder int) string {
	switch {
	case rank == 1:
		return BadgeKing
	case rank <= 3:
		return BadgeQueen
	case rank <= 10:
		return BadgeRook
	}

	percentile := float64(rank-10) / float64(remainder)
	switch {
	case percentile <= 0.15:
		return BadgeBishop
	case percentile <= 0.30:
		return BadgeKnight
	default:
		return BadgePawn
	}
}
