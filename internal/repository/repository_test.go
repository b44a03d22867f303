package repository

import (
	"testing"
	"time"

	"churchsite/internal/database"
	"churchsite/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestEventListUpcoming(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	now := time.Now()

	past := models.Event{Title: "Past Picnic", Description: "d", Location: "park",
		StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-47 * time.Hour)}
	soon := models.Event{Title: "Soon", Description: "d", Location: "hall",
		StartDate: now.Add(2 * time.Hour), EndDate: now.Add(3 * time.Hour)}
	later := models.Event{Title: "Later", Description: "d", Location: "hall",
		StartDate: now.Add(72 * time.Hour), EndDate: now.Add(73 * time.Hour)}
	require.NoError(t, db.Create(&past).Error)
	require.NoError(t, db.Create(&later).Error)
	require.NoError(t, db.Create(&soon).Error)

	list, err := repo.ListUpcoming(now, 3)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Soon", list[0].Title)
	require.Equal(t, "Later", list[1].Title)

	page, total, err := repo.ListUpcomingPage(now, 1, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, page, 1)
	require.Equal(t, "Soon", page[0].Title)

	page, _, err = repo.ListUpcomingPage(now, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "Later", page[0].Title)
}

func TestEventGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	_, err := repo.GetByID(999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSermonListOrderAndRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSermonRepository(db)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		s := models.Sermon{Title: "Sermon", Preacher: "Pastor John",
			Description: "d", Date: base.AddDate(0, 0, i)}
		require.NoError(t, db.Create(&s).Error)
	}

	list, total, err := repo.List(10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 6, total)
	require.Len(t, list, 6)
	require.True(t, list[0].Date.After(list[5].Date))

	recent, err := repo.Recent(5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	require.Equal(t, base.AddDate(0, 0, 5).Day(), recent[0].Date.Day())
}

func TestBlogGetBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)

	_, err := repo.GetBySlug("my-first-post")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	author := models.StaffUser{Username: "editor", Email: "editor@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&author).Error)
	post := models.BlogPost{Title: "My First Post", Slug: "my-first-post",
		AuthorID: author.ID, Content: "hello", PublishedDate: time.Now()}
	require.NoError(t, db.Create(&post).Error)

	got, err := repo.GetBySlug("my-first-post")
	require.NoError(t, err)
	require.Equal(t, "My First Post", got.Title)
	require.Equal(t, "editor", got.Author.Username)
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "my-first-post", Slugify("My First Post!"))
	require.Equal(t, "easter-2026", Slugify("  Easter  2026 "))
	require.Equal(t, "post", Slugify("???"))
}

func TestEnsureUniqueSlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	author := models.StaffUser{Username: "editor", Email: "editor@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&author).Error)

	slug, err := repo.EnsureUniqueSlug("easter", 0)
	require.NoError(t, err)
	require.Equal(t, "easter", slug)

	require.NoError(t, db.Create(&models.BlogPost{Title: "Easter", Slug: "easter",
		AuthorID: author.ID, Content: "c", PublishedDate: time.Now()}).Error)

	slug, err = repo.EnsureUniqueSlug("easter", 0)
	require.NoError(t, err)
	require.Equal(t, "easter-2", slug)

	// The post that owns the slug keeps it on update.
	var own models.BlogPost
	require.NoError(t, db.Where("slug = ?", "easter").First(&own).Error)
	slug, err = repo.EnsureUniqueSlug("easter", own.ID)
	require.NoError(t, err)
	require.Equal(t, "easter", slug)
}

func TestMinistryListAlphabetical(t *testing.T) {
	db := newTestDB(t)
	repo := NewMinistryRepository(db)
	for _, name := range []string{"Youth", "Choir", "Outreach"} {
		require.NoError(t, db.Create(&models.Ministry{Name: name, Description: "d", Leader: "L"}).Error)
	}
	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Choir", list[0].Name)
	require.Equal(t, "Outreach", list[1].Name)
	require.Equal(t, "Youth", list[2].Name)
}

func TestPrayerListPublicExcludesPrivate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPrayerRepository(db)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&models.PrayerRequest{
		Name: "A", Email: "a@x.com", Request: "public one", Status: "pending",
		SubmittedDate: base}))
	require.NoError(t, repo.Create(&models.PrayerRequest{
		Name: "B", Email: "b@x.com", Request: "private one", Status: "pending",
		IsPrivate: true, SubmittedDate: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(&models.PrayerRequest{
		Name: "C", Email: "c@x.com", Request: "newer public", Status: "pending",
		SubmittedDate: base.Add(2 * time.Hour)}))

	list, total, err := repo.ListPublic(10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, list, 2)
	for _, r := range list {
		require.False(t, r.IsPrivate)
	}
	require.Equal(t, "C", list[0].Name)
	require.Equal(t, "A", list[1].Name)
}
