package models

import "time"

type Ministry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null;index" json:"name"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Leader          string    `gorm:"size:100;not null" json:"leader"`
	Email           string    `gorm:"size:255" json:"email"`
	Phone           string    `gorm:"size:20" json:"phone"`
	MeetingTime     string    `gorm:"size:255" json:"meeting_time"`
	MeetingLocation string    `gorm:"size:255" json:"meeting_location"`
	ImageURL        string    `gorm:"size:512" json:"image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Ministry) TableName() string { return "ministries" }

func (m *Ministry) Label() string { return m.Name }
