package console

import (
	"fmt"
	"time"

	"churchsite/internal/domain"
	"churchsite/internal/models"
	"churchsite/internal/repository"

	"gorm.io/gorm"
)

// registry is the table of entities the console manages. Search columns and
// filter fields mirror the public data model's staff-facing views.
func registry() []*Descriptor {
	return []*Descriptor{
		{
			Key:           "events",
			Label:         "Events",
			SearchColumns: []string{"title", "description", "location"},
			DefaultOrder:  "start_date ASC",
			New:           func() interface{} { return &models.Event{} },
			NewSlice:      func() interface{} { return &[]models.Event{} },
		},
		{
			Key:           "sermons",
			Label:         "Sermons",
			SearchColumns: []string{"title", "description", "scripture_reference"},
			FilterFields:  []string{"preacher"},
			DefaultOrder:  "date DESC",
			New:           func() interface{} { return &models.Sermon{} },
			NewSlice:      func() interface{} { return &[]models.Sermon{} },
		},
		{
			Key:           "blog-posts",
			Label:         "Blog Posts",
			SearchColumns: []string{"title", "content"},
			DefaultOrder:  "published_date DESC",
			New:           func() interface{} { return &models.BlogPost{} },
			NewSlice:      func() interface{} { return &[]models.BlogPost{} },
			BeforeSave:    prepareBlogPost,
		},
		{
			Key:           "prayer-requests",
			Label:         "Prayer Requests",
			SearchColumns: []string{"name", "email", "request"},
			FilterFields:  []string{"status", "is_private"},
			DefaultOrder:  "submitted_date DESC",
			New:           func() interface{} { return &models.PrayerRequest{} },
			NewSlice:      func() interface{} { return &[]models.PrayerRequest{} },
			BeforeSave:    checkPrayerStatus,
		},
		{
			Key:           "contact-messages",
			Label:         "Contact Messages",
			SearchColumns: []string{"name", "email", "subject", "message"},
			FilterFields:  []string{"is_read"},
			DefaultOrder:  "submitted_date DESC",
			New:           func() interface{} { return &models.ContactMessage{} },
			NewSlice:      func() interface{} { return &[]models.ContactMessage{} },
			BulkActions: map[string]BulkAction{
				// Sets is_read and nothing else on the selected rows.
				"mark-read": func(db *gorm.DB, ids []uint) error {
					return db.Model(&models.ContactMessage{}).
						Where("id IN ?", ids).
						Update("is_read", true).Error
				},
			},
		},
		{
			Key:           "donations",
			Label:         "Donations",
			SearchColumns: []string{"name", "email", "transaction_id", "notes"},
			FilterFields:  []string{"donation_type", "is_recurring"},
			DefaultOrder:  "donation_date DESC",
			New:           func() interface{} { return &models.Donation{} },
			NewSlice:      func() interface{} { return &[]models.Donation{} },
		},
		{
			Key:           "ministries",
			Label:         "Ministries",
			SearchColumns: []string{"name", "description", "leader"},
			DefaultOrder:  "name ASC",
			New:           func() interface{} { return &models.Ministry{} },
			NewSlice:      func() interface{} { return &[]models.Ministry{} },
		},
	}
}

// prepareBlogPost fills author, publish date and a unique slug derived from
// the title when the submission leaves them blank.
func prepareBlogPost(db *gorm.DB, record interface{}, staffID uint) error {
	p, ok := record.(*models.BlogPost)
	if !ok {
		return fmt.Errorf("expected blog post, got %T", record)
	}
	if p.AuthorID == 0 {
		p.AuthorID = staffID
	}
	if p.PublishedDate.IsZero() {
		p.PublishedDate = time.Now()
	}
	base := p.Slug
	if base == "" {
		base = p.Title
	}
	slug, err := repository.NewBlogRepository(db).EnsureUniqueSlug(repository.Slugify(base), p.ID)
	if err != nil {
		return err
	}
	p.Slug = slug
	return nil
}

func checkPrayerStatus(db *gorm.DB, record interface{}, staffID uint) error {
	r, ok := record.(*models.PrayerRequest)
	if !ok {
		return fmt.Errorf("expected prayer request, got %T", record)
	}
	if r.Status == "" {
		r.Status = domain.PrayerStatusPending
	}
	for _, s := range domain.PrayerStatuses {
		if r.Status == s {
			return nil
		}
	}
	return fmt.Errorf("invalid status %q", r.Status)
}
