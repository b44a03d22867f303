package repository

import (
	"churchsite/internal/models"

	"gorm.io/gorm"
)

type SermonRepository struct {
	db *gorm.DB
}

func NewSermonRepository(db *gorm.DB) *SermonRepository {
	return &SermonRepository{db: db}
}

func (r *SermonRepository) List(limit, offset int) ([]models.Sermon, int64, error) {
	var total int64
	r.db.Model(&models.Sermon{}).Count(&total)
	var list []models.Sermon
	err := r.db.Order("date DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

// Recent returns the n most recent sermons for the home and resources pages.
func (r *SermonRepository) Recent(n int) ([]models.Sermon, error) {
	var list []models.Sermon
	err := r.db.Order("date DESC").Limit(n).Find(&list).Error
	return list, err
}

func (r *SermonRepository) GetByID(id uint) (*models.Sermon, error) {
	var s models.Sermon
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
