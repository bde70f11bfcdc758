package models

import (
	"strings"
	"time"
)

type Registration struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	EventID   string    `gorm:"not null;index;type:varchar(36)" json:"eventId"`
	CreatedAt time.Time `json:"-"`
}

// Attendee holds the fields a visitor types into the registration form.
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (a Attendee) Missing() []string {
	var missing []string
	if strings.TrimSpace(a.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(a.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(a.Phone) == "" {
		missing = append(missing, "phone")
	}
	return missing
}

func (a Attendee) For(eventID string) Registration {
	return Registration{Name: a.Name, Email: a.Email, Phone: a.Phone, EventID: eventID}
}
