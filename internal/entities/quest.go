package entities

import (
	"strings"

	"github.com/KirkDiggler/jp-mud/internal/errors"
)

// Quest partitions
const (
	PartitionActive    = "active"
	PartitionAvailable = "available"
	PartitionCompleted = "completed"
	PartitionFailed    = "failed"
)

// Quest is an ordered list of objectives and rewards
type Quest struct {
	ID                  string           `json:"id" yaml:"id"`
	Title               string           `json:"title" yaml:"title"`
	JapaneseTitle       string           `json:"japanese_title" yaml:"japanese_title"`
	Description         string           `json:"description" yaml:"description"`
	JapaneseDescription string           `json:"japanese_description" yaml:"japanese_description"`
	State               string           `json:"state" yaml:"state"`
	Objectives          []QuestObjective `json:"objectives" yaml:"objectives"`
	Rewards             []QuestReward    `json:"rewards" yaml:"rewards"`
	PrerequisiteQuests  []string         `json:"prerequisite_quests" yaml:"prerequisite_quests"`
	Difficulty          int              `json:"difficulty" yaml:"difficulty"`
	JLPTLevel           int              `json:"jlpt_level,omitempty" yaml:"jlpt_level,omitempty"`
	Hidden              bool             `json:"hidden" yaml:"hidden"`
}

// Objective returns the objective with the given id, or nil
func (q *Quest) Objective(id string) *QuestObjective {
	if q == nil {
		return nil
	}
	for i := range q.Objectives {
		if q.Objectives[i].ID == id {
			return &q.Objectives[i]
		}
	}
	return nil
}

// QuestObjective is one trackable sub-goal. Progress counts towards Count.
type QuestObjective struct {
	ID                  string                 `json:"id" yaml:"id"`
	Type                string                 `json:"type" yaml:"type"`
	Description         string                 `json:"description" yaml:"description"`
	JapaneseDescription string                 `json:"japanese_description" yaml:"japanese_description"`
	TargetID            string                 `json:"target_id" yaml:"target_id"`
	Count               int                    `json:"count" yaml:"count"`
	Completed           bool                   `json:"completed" yaml:"completed"`
	Progress            int                    `json:"progress" yaml:"progress"`
	Properties          map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
	Vocabulary          []VocabularyItem       `json:"vocabulary" yaml:"vocabulary"`
}

// QuestReward is granted when a quest completes
type QuestReward struct {
	Type                string           `json:"type" yaml:"type"`
	Description         string           `json:"description" yaml:"description"`
	JapaneseDescription string           `json:"japanese_description" yaml:"japanese_description"`
	TargetID            string           `json:"target_id,omitempty" yaml:"target_id,omitempty"`
	Quantity            int              `json:"quantity" yaml:"quantity"`
	Claimed             bool             `json:"claimed" yaml:"claimed"`
	Vocabulary          []VocabularyItem `json:"vocabulary" yaml:"vocabulary"`
}

// QuestLog holds four disjoint partitions of quests keyed by quest id
type QuestLog struct {
	ActiveQuests    map[string]*Quest `json:"active_quests" yaml:"active_quests"`
	CompletedQuests map[string]*Quest `json:"completed_quests" yaml:"completed_quests"`
	FailedQuests    map[string]*Quest `json:"failed_quests" yaml:"failed_quests"`
	AvailableQuests map[string]*Quest `json:"available_quests" yaml:"available_quests"`
}

// NewQuestLog returns an empty quest log
func NewQuestLog() *QuestLog {
	return &QuestLog{
		ActiveQuests:    make(map[string]*Quest),
		CompletedQuests: make(map[string]*Quest),
		FailedQuests:    make(map[string]*Quest),
		AvailableQuests: make(map[string]*Quest),
	}
}

// Partitions returns the partitions in display order
func (l *QuestLog) Partitions() map[string]map[string]*Quest {
	if l == nil {
		return nil
	}
	return map[string]map[string]*Quest{
		PartitionActive:    l.ActiveQuests,
		PartitionAvailable: l.AvailableQuests,
		PartitionCompleted: l.CompletedQuests,
		PartitionFailed:    l.FailedQuests,
	}
}

// Partition reports which partition holds the quest, or "" when none does
func (l *QuestLog) Partition(questID string) string {
	for name, quests := range l.Partitions() {
		if _, ok := quests[questID]; ok {
			return name
		}
	}
	return ""
}

// Validate reports quest ids held by more than one partition
func (l *QuestLog) Validate() error {
	parts := l.Partitions()
	held := make(map[string][]string)
	for _, name := range []string{PartitionActive, PartitionAvailable, PartitionCompleted, PartitionFailed} {
		for id := range parts[name] {
			held[id] = append(held[id], name)
		}
	}

	vb := errors.NewValidationBuilder()
	for id, names := range held {
		if len(names) > 1 {
			vb.Fieldf(id, "held by %s", strings.Join(names, ", "))
		}
	}
	return vb.Build()
}

// GrammarChallenge points at the objective currently answered in grammar mode.
// It references QuestLog.ActiveQuests and never owns a copy.
type GrammarChallenge struct {
	QuestID     string `json:"quest_id" yaml:"quest_id"`
	ObjectiveID string `json:"objective_id" yaml:"objective_id"`
	TargetID    string `json:"target_id,omitempty" yaml:"target_id,omitempty"`
}
