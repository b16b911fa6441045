package entities

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is an inbound message from the public contact form
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactInput carries the four contact form fields verbatim
type ContactInput struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// ContactMessageFilter narrows the admin inbox listing. Limit 0 means the default page size.
type ContactMessageFilter struct {
	UnreadOnly bool
	Page       int
	Limit      int
}
