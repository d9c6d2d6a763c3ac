package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/adesai/stride/ent"
	"github.com/adesai/stride/ent/nodeprogress"
	"github.com/adesai/stride/internal/roadmap"
)

// chosenPrefix marks the specialization choice node on a hub.
const chosenPrefix = "chosen:"

// progressRepo implements ProgressRepo on the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) MarkNode(ctx context.Context, userID, roadmapID, nodeID string) error {
	_, err := r.client.NodeProgress.Create().
		SetUserID(userID).
		SetRoadmapID(roadmapID).
		SetNodeID(nodeID).
		Save(ctx)
	if err != nil {
		// Re-marking a completed node is a no-op, not an error.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("mark node %s/%s: %w", roadmapID, nodeID, err)
	}
	return nil
}

func (r *progressRepo) MarkAllNodes(ctx context.Context, userID, roadmapID string, nodeIDs []string) error {
	for _, id := range nodeIDs {
		if err := r.MarkNode(ctx, userID, roadmapID, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *progressRepo) ChooseTrack(ctx context.Context, userID, hubSlug, trackSlug string) error {
	existing, err := r.chosenTrack(ctx, userID, hubSlug)
	if err != nil {
		return err
	}
	if existing != "" {
		if existing == trackSlug {
			return nil
		}
		return fmt.Errorf("track already chosen for %s: %s", hubSlug, existing)
	}
	return r.MarkNode(ctx, userID, hubSlug, chosenPrefix+trackSlug)
}

func (r *progressRepo) chosenTrack(ctx context.Context, userID, hubSlug string) (string, error) {
	rows, err := r.client.NodeProgress.Query().
		Where(
			nodeprogress.UserID(userID),
			nodeprogress.RoadmapID(hubSlug),
			nodeprogress.NodeIDHasPrefix(chosenPrefix),
		).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("query chosen track: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}
	return strings.TrimPrefix(rows[0].NodeID, chosenPrefix), nil
}

// MarkedNodes returns the completed node IDs per roadmap. Track
// choice markers are filtered out; they are not subtopics.
func (r *progressRepo) MarkedNodes(ctx context.Context, userID string) (map[string][]string, error) {
	rows, err := r.client.NodeProgress.Query().
		Where(nodeprogress.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query node progress: %w", err)
	}

	out := make(map[string][]string)
	for _, row := range rows {
		if strings.HasPrefix(row.NodeID, chosenPrefix) {
			continue
		}
		out[row.RoadmapID] = append(out[row.RoadmapID], row.NodeID)
	}
	return out, nil
}

// CompletionMap derives the progression evaluator inputs from the
// marks table: completed/total subtopic counts per roadmap and the
// chosen track per hub. Pure read; nothing is cached.
func (r *progressRepo) CompletionMap(ctx context.Context, userID string, cur *roadmap.Curriculum) (map[string]roadmap.Completion, map[string]string, error) {
	rows, err := r.client.NodeProgress.Query().
		Where(nodeprogress.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query node progress: %w", err)
	}

	marked := make(map[string]map[string]bool)
	for _, row := range rows {
		if marked[row.RoadmapID] == nil {
			marked[row.RoadmapID] = make(map[string]bool)
		}
		marked[row.RoadmapID][row.NodeID] = true
	}

	completion := make(map[string]roadmap.Completion)
	for _, e := range cur.AllRoadmaps() {
		done := 0
		for _, node := range e.Subtopics {
			if marked[e.Slug][node] {
				done++
			}
		}
		completion[e.Slug] = roadmap.Completion{Done: done, Total: len(e.Subtopics)}
	}

	chosen := make(map[string]string)
	for _, y := range cur.Years {
		for _, e := range y.Entries {
			if !e.TechStackHub {
				continue
			}
			for node := range marked[e.Slug] {
				if strings.HasPrefix(node, chosenPrefix) {
					chosen[e.Slug] = strings.TrimPrefix(node, chosenPrefix)
				}
			}
		}
	}
	return completion, chosen, nil
}
