package models

import "time"

type Sermon struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Title              string    `gorm:"size:200;not null" json:"title"`
	Preacher           string    `gorm:"size:100;not null" json:"preacher"`
	Date               time.Time `gorm:"not null;index" json:"date"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	AudioURL           string    `gorm:"size:512" json:"audio_url"`
	VideoURL           string    `gorm:"size:512" json:"video_url"`
	SlidesURL          string    `gorm:"size:512" json:"slides_url"`
	ScriptureReference string    `gorm:"size:255" json:"scripture_reference"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (s *Sermon) Label() string { return s.Title + " - " + s.Preacher }
