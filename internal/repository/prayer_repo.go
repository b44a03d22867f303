package repository

import (
	"churchsite/internal/models"

	"gorm.io/gorm"
)

type PrayerRepository struct {
	db *gorm.DB
}

func NewPrayerRepository(db *gorm.DB) *PrayerRepository {
	return &PrayerRepository{db: db}
}

func (r *PrayerRepository) Create(p *models.PrayerRequest) error {
	return r.db.Create(p).Error
}

// ListPublic returns non-private requests only, newest first.
func (r *PrayerRepository) ListPublic(limit, offset int) ([]models.PrayerRequest, int64, error) {
	q := r.db.Model(&models.PrayerRequest{}).Where("is_private = ?", false)
	var total int64
	q.Count(&total)
	var list []models.PrayerRequest
	err := q.Order("submitted_date DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}
