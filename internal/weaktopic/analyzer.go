// Package weaktopic ranks the topics a learner keeps getting wrong.
// The ranking feeds resource recommendations elsewhere; topics are
// opaque strings matched case-sensitively.
package weaktopic

import (
	"sort"

	"github.com/adesai/stride/internal/scoring"
)

// TopicCount is one entry in the ranked output.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Rank groups incorrect answers by topic across the given results and
// returns topics ordered by wrong-answer count, ties broken by the
// most recent occurrence. Results must be passed oldest first.
func Rank(results ...scoring.Result) []TopicCount {
	counts := make(map[string]int)
	lastSeen := make(map[string]int)

	seq := 0
	for _, res := range results {
		for _, rec := range res.Answers {
			seq++
			if rec.IsCorrect {
				continue
			}
			counts[rec.Topic]++
			lastSeen[rec.Topic] = seq
		}
	}

	out := make([]TopicCount, 0, len(counts))
	for topic, n := range counts {
		out = append(out, TopicCount{Topic: topic, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return lastSeen[out[i].Topic] > lastSeen[out[j].Topic]
	})
	return out
}
