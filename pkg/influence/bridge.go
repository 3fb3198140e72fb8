package influence

import "sort"

// DetectBridges finds actors whose neighborhoods span multiple communities.
// The community count includes the actor's own community, so an actor whose
// neighbors all share its community counts 1 and is filtered out. Results
// are ordered descending by bridge score and truncated to limit.
func DetectBridges(links []Link, labels map[int64]int64, limit int) []Bridge {
	if limit <= 0 {
		limit = DefaultConfig().BridgeLimit
	}

	adj := foldAdjacency(links)
	actors := sortedActorIDs(adj)

	maxEdges := 0
	for _, actor := range actors {
		if n := len(adj[actor]); n > maxEdges {
			maxEdges = n
		}
	}
	if maxEdges == 0 {
		return nil
	}

	bridges := make([]Bridge, 0)
	for _, actor := range actors {
		communities := map[int64]struct{}{labels[actor]: {}}
		for neighbor := range adj[actor] {
			communities[labels[neighbor]] = struct{}{}
		}
		connected := len(communities)
		if connected < 2 {
			continue
		}

		centrality := float64(len(adj[actor])) / float64(maxEdges)
		score := float64(connected)*25 + centrality*50
		if score > 100 {
			score = 100
		}

		bridges = append(bridges, Bridge{
			ActorID:               actor,
			CommunitiesConnected:  connected,
			BetweennessCentrality: centrality,
			BridgeScore:           score,
		})
	}

	sort.SliceStable(bridges, func(i, j int) bool {
		if bridges[i].BridgeScore != bridges[j].BridgeScore {
			return bridges[i].BridgeScore > bridges[j].BridgeScore
		}
		return bridges[i].ActorID < bridges[j].ActorID
	})

	if len(bridges) > limit {
		bridges = bridges[:limit]
	}
	return bridges
}
