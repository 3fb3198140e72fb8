package influence

import (
	"fmt"
	"math"
	"sort"
)

type pairKey struct {
	source int64
	target int64
}

// BuildLinks aggregates email pairwise volumes and call co-occurrence into
// the directed weighted edge list. Raw volumes from both sources are summed
// per ordered pair, zero-volume pairs are dropped, and weights are
// log-compressed so the largest pair in the snapshot maps to 1.0.
//
// Raw volumes are heavy-tailed; a linear scale would push every non-hub
// edge to weight ~0. Log compression preserves ordering while flattening
// the tail.
func BuildLinks(emailVolumes []VolumeTuple, calls []CallRecord) []Link {
	volumes := make(map[pairKey]int64)

	for _, t := range emailVolumes {
		if t.SourceID == t.TargetID {
			continue
		}
		volumes[pairKey{t.SourceID, t.TargetID}] += t.RawVolume
	}

	for _, pair := range coOccurringPairs(calls) {
		// A shared call counts once in each direction.
		volumes[pairKey{pair.source, pair.target}]++
		volumes[pairKey{pair.target, pair.source}]++
	}

	var maxVolume int64
	for key, v := range volumes {
		if v <= 0 {
			delete(volumes, key)
			continue
		}
		if v > maxVolume {
			maxVolume = v
		}
	}
	if maxVolume == 0 {
		return nil
	}

	logMax := math.Log(float64(maxVolume) + 1)
	links := make([]Link, 0, len(volumes))
	for key, v := range volumes {
		weight := math.Min(1.0, math.Log(float64(v)+1)/logMax)
		links = append(links, Link{SourceID: key.source, TargetID: key.target, Weight: weight})
	}

	sort.Slice(links, func(i, j int) bool {
		if links[i].SourceID != links[j].SourceID {
			return links[i].SourceID < links[j].SourceID
		}
		return links[i].TargetID < links[j].TargetID
	})
	return links
}

// coOccurringPairs derives mutual actor pairs from call records. Records
// sharing an identical start time and duration are treated as the same
// call; the upstream metadata carries no call-session id.
func coOccurringPairs(calls []CallRecord) []pairKey {
	type callKey struct {
		startedAt int64
		duration  int64
	}

	participants := make(map[callKey][]int64)
	for _, c := range calls {
		key := callKey{c.StartedAt.UnixNano(), c.DurationSeconds}
		participants[key] = append(participants[key], c.ActorID)
	}

	var pairs []pairKey
	for _, actors := range participants {
		if len(actors) < 2 {
			continue
		}
		sort.Slice(actors, func(i, j int) bool { return actors[i] < actors[j] })
		for i := 0; i < len(actors); i++ {
			for j := i + 1; j < len(actors); j++ {
				if actors[i] == actors[j] {
					continue
				}
				pairs = append(pairs, pairKey{actors[i], actors[j]})
			}
		}
	}
	return pairs
}

// EdgeKey is the canonical undirected key for a pair of actors, used by
// graph clients to address edges regardless of direction.
func EdgeKey(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}
