package repository

import (
	"time"

	"churchsite/internal/models"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// ListUpcoming returns events starting at or after now, soonest first.
func (r *EventRepository) ListUpcoming(now time.Time, limit int) ([]models.Event, error) {
	var list []models.Event
	err := r.db.Where("start_date >= ?", now).Order("start_date ASC").Limit(limit).Find(&list).Error
	return list, err
}

// ListUpcomingPage is the paginated variant used by the events page.
func (r *EventRepository) ListUpcomingPage(now time.Time, limit, offset int) ([]models.Event, int64, error) {
	q := r.db.Model(&models.Event{}).Where("start_date >= ?", now)
	var total int64
	q.Count(&total)
	var list []models.Event
	err := q.Order("start_date ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var e models.Event
	if err := r.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
