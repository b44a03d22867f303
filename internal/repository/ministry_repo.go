package repository

import (
	"churchsite/internal/models"

	"gorm.io/gorm"
)

type MinistryRepository struct {
	db *gorm.DB
}

func NewMinistryRepository(db *gorm.DB) *MinistryRepository {
	return &MinistryRepository{db: db}
}

func (r *MinistryRepository) List() ([]models.Ministry, error) {
	var list []models.Ministry
	err := r.db.Order("name ASC").Find(&list).Error
	return list, err
}

func (r *MinistryRepository) GetByID(id uint) (*models.Ministry, error) {
	var m models.Ministry
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
