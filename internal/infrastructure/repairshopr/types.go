package repairshopr

import "time"

type ticketsResponse struct {
	Tickets []wireTicket `json:"tickets"`
	Meta    wireMeta     `json:"meta"`
}

type wireMeta struct {
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
}

type wireTicket struct {
	ID                 uint      `json:"id"`
	Number             string    `json:"number"`
	Subject            string    `json:"subject"`
	ProblemDescription string    `json:"problem_description"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`

	UpdatedAt      *time.Time `json:"updated_at"`
	Priority       *string    `json:"priority"`
	TicketType     *string    `json:"ticket_type"`
	Technician     *string    `json:"technician"`
	CustomerID     *uint      `json:"customer_id"`
	CustomerName   *string    `json:"customer_name"`
	CustomerEmail  *string    `json:"customer_email"`
	PartsUsed      *string    `json:"parts_used"`
	WorkCompleted  *string    `json:"work_completed"`
	TestingResults *string    `json:"testing_results"`
	InternalNotes  *string    `json:"internal_notes"`
	EstimatedCost  *float64   `json:"estimated_cost"`
	ActualCost     *float64   `json:"actual_cost"`

	Comments []wireComment `json:"comments"`
}

// wireComment carries every comment field name the service is known to use.
// Normalization into a single shape happens in the domain layer.
type wireComment struct {
	Subject string `json:"subject"`

	Body    *string `json:"body"`
	Text    *string `json:"text"`
	Comment *string `json:"comment"`

	Author   *string `json:"author"`
	UserName *string `json:"user_name"`
	Tech     *string `json:"tech"`

	CreatedAt *time.Time `json:"created_at"`
	Date      *time.Time `json:"date"`
	Timestamp *time.Time `json:"timestamp"`

	Hidden *bool `json:"hidden"`
}
