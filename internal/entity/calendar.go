package entity

import "time"

type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusPaid     EventStatus = "paid"
	EventStatusOverdue  EventStatus = "overdue"
	EventStatusUpcoming EventStatus = "upcoming"
)

type EventSource string

const (
	EventSourceTransaction EventSource = "transaction"
	EventSourceDebt        EventSource = "debt"
	EventSourceGoal        EventSource = "goal"
)

// CalendarEvent is derived, never persisted: it is recomputed from
// transactions, debts and goals against an injected evaluation time.
type CalendarEvent struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Amount float64     `json:"amount"`
	Date   time.Time   `json:"date"`
	Status EventStatus `json:"status"`
	Source EventSource `json:"source"`
}
