package repository

import (
	"fmt"
	"regexp"
	"strings"

	"churchsite/internal/models"

	"gorm.io/gorm"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) List(limit, offset int) ([]models.BlogPost, int64, error) {
	var total int64
	r.db.Model(&models.BlogPost{}).Count(&total)
	var list []models.BlogPost
	err := r.db.Preload("Author").Order("published_date DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

func (r *BlogRepository) Recent(n int) ([]models.BlogPost, error) {
	var list []models.BlogPost
	err := r.db.Preload("Author").Order("published_date DESC").Limit(n).Find(&list).Error
	return list, err
}

func (r *BlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := r.db.Preload("Author").Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a title into a URL slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "post"
	}
	if len(s) > 190 {
		s = strings.Trim(s[:190], "-")
	}
	return s
}

// EnsureUniqueSlug appends -2, -3, ... until the slug is free. excludeID skips
// the post being updated.
func (r *BlogRepository) EnsureUniqueSlug(base string, excludeID uint) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		q := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
