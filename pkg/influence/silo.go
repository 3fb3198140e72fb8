package influence

import "sort"

// DetectSilos aggregates edge counts per department: internal edges have
// both endpoints in the department, external edges cross out of it. Every
// department appearing in the map gets a row, including fully inactive ones.
//
// A department with no external connections is maximally isolated; the
// ratio guard below keeps that case from propagating a division by zero.
func DetectSilos(links []Link, departments map[int64]string) []Silo {
	type counts struct {
		internal int
		external int
	}
	byDept := make(map[string]*counts)
	for _, dept := range departments {
		if dept == "" {
			continue
		}
		if byDept[dept] == nil {
			byDept[dept] = &counts{}
		}
	}

	adj := foldAdjacency(links)
	for _, actor := range sortedActorIDs(adj) {
		dept := departments[actor]
		if dept == "" {
			continue
		}
		for _, neighbor := range sortedNeighborIDs(adj[actor]) {
			other := departments[neighbor]
			if other == dept {
				// Counted from both endpoints; halved below.
				byDept[dept].internal++
			} else {
				byDept[dept].external++
			}
		}
	}

	names := make([]string, 0, len(byDept))
	for name := range byDept {
		names = append(names, name)
	}
	sort.Strings(names)

	silos := make([]Silo, 0, len(names))
	for _, name := range names {
		c := byDept[name]
		internal := c.internal / 2
		silos = append(silos, Silo{
			Department:          name,
			InternalConnections: internal,
			ExternalConnections: c.external,
			IsolationScore:      isolationScore(internal, c.external),
			Risk:                siloRisk(internal, c.external),
		})
	}
	return silos
}

func isolationScore(internal, external int) float64 {
	if external == 0 {
		// Covers both "no connections at all" and "internal only".
		return 100
	}
	score := float64(internal) / float64(external) * 20
	if score > 100 {
		return 100
	}
	return score
}

func siloRisk(internal, external int) string {
	if external == 0 {
		if internal > 0 {
			return RiskHigh
		}
		return RiskLow
	}
	ratio := float64(internal) / float64(external)
	switch {
	case ratio > 5:
		return RiskHigh
	case ratio > 2:
		return RiskMedium
	default:
		return RiskLow
	}
}
