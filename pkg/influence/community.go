package influence

import (
	"fmt"
	"sort"
)

// Membership strength is a fixed constant in this design, not learned.
const membershipStrength = 0.75

// CommunityDetection is the result of one label-propagation run. Labels
// covers every actor that appears in at least one edge, including actors
// whose final community fell below the minimum size; Communities holds only
// the surviving clusters.
type CommunityDetection struct {
	Labels      map[int64]int64
	Communities []Community
}

// DetectCommunities partitions the actors of the edge list into communities
// using bounded greedy label propagation (a simplified Louvain first phase).
//
// Every actor starts as its own singleton community. Each pass visits actors
// in ascending id order and moves an actor to the neighboring community with
// the strictly greatest accumulated edge weight; ties keep the current
// assignment (first-seen-wins). Passes stop early when nothing moved, or
// after maxIterations regardless. Communities with fewer than 2 members are
// discarded: isolates are not communities.
//
// departments is used only to generate names and descriptions.
func DetectCommunities(links []Link, departments map[int64]string, maxIterations int) CommunityDetection {
	adj := foldAdjacency(links)
	actors := sortedActorIDs(adj)

	labels := make(map[int64]int64, len(actors))
	for _, id := range actors {
		labels[id] = id
	}

	if maxIterations <= 0 {
		maxIterations = DefaultConfig().CommunityMaxIterations
	}

	for iter := 0; iter < maxIterations; iter++ {
		moved := false
		for _, actor := range actors {
			current := labels[actor]

			weightByCommunity := make(map[int64]float64)
			for neighbor, w := range adj[actor] {
				weightByCommunity[labels[neighbor]] += w
			}

			best := current
			bestWeight := weightByCommunity[current]
			for _, neighbor := range sortedNeighborIDs(adj[actor]) {
				community := labels[neighbor]
				if w := weightByCommunity[community]; w > bestWeight {
					best = community
					bestWeight = w
				}
			}

			if best != current {
				labels[actor] = best
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	return CommunityDetection{
		Labels:      labels,
		Communities: buildCommunities(labels, adj, departments),
	}
}

func buildCommunities(labels map[int64]int64, adj adjacency, departments map[int64]string) []Community {
	groups := make(map[int64][]int64)
	for actor, community := range labels {
		groups[community] = append(groups[community], actor)
	}

	roots := make([]int64, 0, len(groups))
	for root, members := range groups {
		if len(members) < 2 {
			continue
		}
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	communities := make([]Community, 0, len(roots))
	for idx, root := range roots {
		members := groups[root]
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

		rows := make([]CommunityMember, len(members))
		for i, actor := range members {
			rows[i] = CommunityMember{
				ActorID:            actor,
				MembershipStrength: membershipStrength,
				IsCoreMember:       isCoreMember(actor, root, labels, adj),
			}
		}

		name, description := describeCommunity(idx+1, members, departments)
		communities = append(communities, Community{
			Name:        name,
			Description: description,
			MemberCount: len(members),
			Members:     rows,
		})
	}
	return communities
}

// isCoreMember reports whether more than half of an actor's folded edge
// weight stays inside its own community.
func isCoreMember(actor, community int64, labels map[int64]int64, adj adjacency) bool {
	var internal, total float64
	for neighbor, w := range adj[actor] {
		total += w
		if labels[neighbor] == community {
			internal += w
		}
	}
	if total == 0 {
		return false
	}
	return internal/total > 0.5
}

func describeCommunity(ordinal int, members []int64, departments map[int64]string) (string, string) {
	dept := dominantDepartment(members, departments)
	if dept == "" {
		return fmt.Sprintf("Community %d", ordinal),
			fmt.Sprintf("Detected community of %d actors", len(members))
	}
	return fmt.Sprintf("%s Cluster %d", dept, ordinal),
		fmt.Sprintf("Detected community of %d actors, centered on %s", len(members), dept)
}

func dominantDepartment(members []int64, departments map[int64]string) string {
	counts := make(map[string]int)
	for _, actor := range members {
		if d := departments[actor]; d != "" {
			counts[d]++
		}
	}

	best := ""
	bestCount := 0
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}
