package domain

import "time"

const (
	InquiryStatusNew      = "NEW"
	InquiryStatusAnswered = "ANSWERED"
	InquiryStatusArchived = "ARCHIVED"
)

type Inquiry struct {
	ID        uint      `json:"id"`
	Reference string    `json:"reference"`
	CampID    uint      `json:"camp_id"`
	UserID    *uint     `json:"user_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InquiryPage struct {
	Inquiries  []Inquiry `json:"inquiries"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}
