package models

import "time"

type ContactMessage struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	Subject       string    `gorm:"size:200;not null" json:"subject"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	SubmittedDate time.Time `gorm:"autoCreateTime;index" json:"submitted_date"`
	// IsRead is toggled only through the console's mark-read action.
	IsRead bool `gorm:"not null;default:false;index" json:"is_read"`
}

func (m *ContactMessage) Label() string { return "Message from " + m.Name + ": " + m.Subject }
