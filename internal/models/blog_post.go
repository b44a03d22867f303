package models

import "time"

type BlogPost struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:200;not null" json:"title"`
	Slug             string    `gorm:"uniqueIndex;size:200;not null" json:"slug"`
	AuthorID         uint      `gorm:"not null;index" json:"author_id"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	FeaturedImageURL string    `gorm:"size:512" json:"featured_image_url"`
	PublishedDate    time.Time `gorm:"not null;index" json:"published_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Author StaffUser `gorm:"foreignKey:AuthorID" json:"author"`
}

func (p *BlogPost) Label() string { return p.Title }
