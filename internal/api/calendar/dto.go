package calendar

type EventResponse struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Status string  `json:"status"`
	Source string  `json:"source"`
}

type EventListResponse struct {
	Events  []EventResponse `json:"events"`
	Pending int             `json:"pending"`
	Overdue int             `json:"overdue"`
}
