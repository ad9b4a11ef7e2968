package entity

import "time"

type GoalPriority string

const (
	GoalPriorityHigh   GoalPriority = "Alta"
	GoalPriorityMedium GoalPriority = "Média"
	GoalPriorityLow    GoalPriority = "Baixa"
)

func IsValidGoalPriority(priority string) bool {
	switch GoalPriority(priority) {
	case GoalPriorityHigh, GoalPriorityMedium, GoalPriorityLow:
		return true
	default:
		return false
	}
}

type Goal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	CurrentAmount float64    `json:"current_amount"`
	TargetAmount  float64    `json:"target_amount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Priority      string     `json:"priority"`
	Color         string     `json:"color,omitempty"`
}

// Shortfall is how much is still missing to reach the target, never
// negative.
func (g *Goal) Shortfall() float64 {
	if g.CurrentAmount >= g.TargetAmount {
		return 0
	}
	return g.TargetAmount - g.CurrentAmount
}
