package repository

import (
	"strings"

	"churchsite/internal/models"

	"gorm.io/gorm"
)

// SearchResults holds the four independent result sets. Entities are matched
// independently; there is no ranking or cross-entity merge.
type SearchResults struct {
	Events     []models.Event    `json:"events"`
	Sermons    []models.Sermon   `json:"sermons"`
	Posts      []models.BlogPost `json:"posts"`
	Ministries []models.Ministry `json:"ministries"`
}

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// EscapeLike escapes LIKE metacharacters so user input only ever matches
// literally. Patterns built with it must run under ESCAPE '!'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Search performs case-insensitive literal substring matching per entity
// type. Only the truly empty query short-circuits to four empty sets.
func (r *SearchRepository) Search(query string) (*SearchResults, error) {
	res := &SearchResults{
		Events:     []models.Event{},
		Sermons:    []models.Sermon{},
		Posts:      []models.BlogPost{},
		Ministries: []models.Ministry{},
	}
	if query == "" {
		return res, nil
	}
	pattern := "%" + EscapeLike(strings.ToLower(query)) + "%"

	if err := r.db.
		Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!'", pattern, pattern).
		Find(&res.Events).Error; err != nil {
		return nil, err
	}
	if err := r.db.
		Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!' OR LOWER(preacher) LIKE ? ESCAPE '!' OR LOWER(scripture_reference) LIKE ? ESCAPE '!'",
			pattern, pattern, pattern, pattern).
		Find(&res.Sermons).Error; err != nil {
		return nil, err
	}
	if err := r.db.
		Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(content) LIKE ? ESCAPE '!'", pattern, pattern).
		Find(&res.Posts).Error; err != nil {
		return nil, err
	}
	if err := r.db.
		Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!' OR LOWER(leader) LIKE ? ESCAPE '!'",
			pattern, pattern, pattern).
		Find(&res.Ministries).Error; err != nil {
		return nil, err
	}
	return res, nil
}
