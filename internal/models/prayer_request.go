package models

import "time"

type PrayerRequest struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	Request       string    `gorm:"type:text;not null" json:"request"`
	IsPrivate     bool      `gorm:"not null;default:false;index" json:"is_private"`
	Status        string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	SubmittedDate time.Time `gorm:"autoCreateTime;index" json:"submitted_date"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *PrayerRequest) Label() string { return "Prayer request from " + p.Name }
