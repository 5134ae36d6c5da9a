// Package quests derives quest progress and the active grammar challenge from
// a committed game state. It owns no state and never moves quests between
// partitions; the game server decides transitions.
package quests

import (
	"log/slog"
	"math"
	"sort"

	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// DefaultChallengePrompt is shown when an objective carries no prompt property
const DefaultChallengePrompt = "Complete the grammar challenge"

// Progress is the rounded percentage of completed objectives, 0 when there are
// none. It is 100 only when every objective is complete.
func Progress(q *entities.Quest) int {
	if q == nil || len(q.Objectives) == 0 {
		return 0
	}

	completed := 0
	for _, obj := range q.Objectives {
		if obj.Completed {
			completed++
		}
	}
	pct := int(math.Round(100 * float64(completed) / float64(len(q.Objectives))))
	if completed < len(q.Objectives) && pct > 99 {
		return 99
	}
	return pct
}

// ObjectiveProgress is the objective's progress clamped to [0, Count]. A
// completed objective always reports its full count.
func ObjectiveProgress(obj *entities.QuestObjective) int {
	if obj == nil {
		return 0
	}

	target := obj.Count
	if target < 1 {
		target = 1
	}
	if obj.Completed {
		return target
	}

	switch {
	case obj.Progress < 0:
		return 0
	case obj.Progress > target:
		return target
	default:
		return obj.Progress
	}
}

// ActiveChallenge is the resolved grammar challenge. Quest and Objective point
// into the state it was resolved from.
type ActiveChallenge struct {
	Quest     *entities.Quest
	Objective *entities.QuestObjective
	TargetID  string
	Prompt    string
}

// ResolveActiveChallenge follows the state's challenge pointer into the active
// quests. It returns false when no pointer is set or either id does not resolve.
func ResolveActiveChallenge(state *entities.GameState) (*ActiveChallenge, bool) {
	if state == nil || state.ActiveGrammarChallenge == nil || state.QuestLog == nil {
		return nil, false
	}

	ptr := state.ActiveGrammarChallenge
	quest, ok := state.QuestLog.ActiveQuests[ptr.QuestID]
	if !ok || quest == nil {
		slog.Debug("Grammar challenge quest is not active",
			"quest_id", ptr.QuestID,
			"partition", state.QuestLog.Partition(ptr.QuestID))
		return nil, false
	}

	obj := quest.Objective(ptr.ObjectiveID)
	if obj == nil {
		return nil, false
	}

	prompt := DefaultChallengePrompt
	if p, ok := obj.Properties["prompt"].(string); ok && p != "" {
		prompt = p
	}

	targetID := ptr.TargetID
	if targetID == "" {
		targetID = obj.TargetID
	}

	return &ActiveChallenge{
		Quest:     quest,
		Objective: obj,
		TargetID:  targetID,
		Prompt:    prompt,
	}, true
}

// QuestSummary is one row of the quest log overview
type QuestSummary struct {
	ID            string
	Title         string
	JapaneseTitle string
	Progress      int
	Objectives    []ObjectiveSummary
}

// ObjectiveSummary is one objective line of a quest summary
type ObjectiveSummary struct {
	ID          string
	Description string
	Completed   bool
	Progress    int
	Count       int
}

// LogOverview lists each partition sorted by title
type LogOverview struct {
	Active    []QuestSummary
	Available []QuestSummary
	Completed []QuestSummary
	Failed    []QuestSummary
}

// Empty reports whether there is nothing to show
func (o *LogOverview) Empty() bool {
	return len(o.Active)+len(o.Available)+len(o.Completed)+len(o.Failed) == 0
}

// Overview summarizes the quest log. Hidden quests are only listed once they
// are active or finished.
func Overview(log *entities.QuestLog) *LogOverview {
	if log == nil {
		return &LogOverview{}
	}

	return &LogOverview{
		Active:    summarize(log.ActiveQuests, true),
		Available: summarize(log.AvailableQuests, false),
		Completed: summarize(log.CompletedQuests, true),
		Failed:    summarize(log.FailedQuests, true),
	}
}

func summarize(partition map[string]*entities.Quest, includeHidden bool) []QuestSummary {
	out := make([]QuestSummary, 0, len(partition))
	for id, q := range partition {
		if q == nil || (q.Hidden && !includeHidden) {
			continue
		}

		summary := QuestSummary{
			ID:            id,
			Title:         q.Title,
			JapaneseTitle: q.JapaneseTitle,
			Progress:      Progress(q),
		}
		for i := range q.Objectives {
			obj := &q.Objectives[i]
			summary.Objectives = append(summary.Objectives, ObjectiveSummary{
				ID:          obj.ID,
				Description: obj.Description,
				Completed:   obj.Completed,
				Progress:    ObjectiveProgress(obj),
				Count:       max(obj.Count, 1),
			})
		}
		out = append(out, summary)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out
}
