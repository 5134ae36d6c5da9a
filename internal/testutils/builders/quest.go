package builders

import (
	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// QuestBuilder provides a fluent interface for building test Quest instances
type QuestBuilder struct {
	quest *entities.Quest
}

// NewQuestBuilder creates a quest with no objectives
func NewQuestBuilder(id string) *QuestBuilder {
	return &QuestBuilder{
		quest: &entities.Quest{
			ID:                 id,
			Title:              "Test Quest",
			JapaneseTitle:      "テストクエスト",
			State:              entities.PartitionActive,
			Objectives:         []entities.QuestObjective{},
			Rewards:            []entities.QuestReward{},
			PrerequisiteQuests: []string{},
			Difficulty:         1,
		},
	}
}

// WithTitle sets the title
func (b *QuestBuilder) WithTitle(title string) *QuestBuilder {
	b.quest.Title = title
	return b
}

// WithObjective appends an objective
func (b *QuestBuilder) WithObjective(id string, completed bool) *QuestBuilder {
	b.quest.Objectives = append(b.quest.Objectives, entities.QuestObjective{
		ID:          id,
		Type:        "grammar",
		Description: "Objective " + id,
		Count:       1,
		Completed:   completed,
	})
	return b
}

// Hidden marks the quest hidden
func (b *QuestBuilder) Hidden() *QuestBuilder {
	b.quest.Hidden = true
	return b
}

// Build returns the built quest
func (b *QuestBuilder) Build() *entities.Quest {
	return b.quest
}
