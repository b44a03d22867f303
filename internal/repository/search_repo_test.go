package repository

import (
	"testing"
	"time"

	"churchsite/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQuery(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)

	res, err := repo.Search("")
	require.NoError(t, err)
	require.Empty(t, res.Events)
	require.Empty(t, res.Sermons)
	require.Empty(t, res.Posts)
	require.Empty(t, res.Ministries)
}

func TestSearchWhitespaceQueryMatchesLiterally(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)
	now := time.Now()

	require.NoError(t, db.Create(&models.Event{Title: "Spring   Gala", Description: "d",
		Location: "hall", StartDate: now, EndDate: now}).Error)
	require.NoError(t, db.Create(&models.Event{Title: "Bake Sale", Description: "d",
		Location: "hall", StartDate: now, EndDate: now}).Error)

	// A run of spaces is a real query, not an empty one.
	res, err := repo.Search("   ")
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	require.Equal(t, "Spring   Gala", res.Events[0].Title)
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)
	now := time.Now()

	require.NoError(t, db.Create(&models.Event{Title: "50 percent attendance", Description: "d",
		Location: "hall", StartDate: now, EndDate: now}).Error)
	require.NoError(t, db.Create(&models.Event{Title: "Give 100% This Sunday", Description: "d",
		Location: "hall", StartDate: now, EndDate: now}).Error)
	require.NoError(t, db.Create(&models.Ministry{Name: "Hello Club", Description: "d",
		Leader: "L"}).Error)

	// "%" only matches rows that contain a literal percent sign.
	res, err := repo.Search("50%")
	require.NoError(t, err)
	require.Empty(t, res.Events)

	res, err = repo.Search("100%")
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	require.Equal(t, "Give 100% This Sunday", res.Events[0].Title)

	// "_" is not a single-character wildcard.
	res, err = repo.Search("h_ll")
	require.NoError(t, err)
	require.Empty(t, res.Events)
	require.Empty(t, res.Ministries)

	// The escape character itself stays literal.
	res, err = repo.Search("!")
	require.NoError(t, err)
	require.Empty(t, res.Events)
	require.Empty(t, res.Ministries)
}

func TestSearchMatchesPerEntityFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewSearchRepository(db)
	now := time.Now()

	author := models.StaffUser{Username: "editor", Email: "e@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&author).Error)
	require.NoError(t, db.Create(&models.Event{Title: "Harvest Festival", Description: "food and games",
		Location: "lawn", StartDate: now, EndDate: now}).Error)
	require.NoError(t, db.Create(&models.Sermon{Title: "On Grace", Preacher: "Pastor Harvey",
		Description: "a word on grace", Date: now, ScriptureReference: "Eph 2:8"}).Error)
	require.NoError(t, db.Create(&models.BlogPost{Title: "Notes", Slug: "notes",
		AuthorID: author.ID, Content: "the harvest season begins", PublishedDate: now}).Error)
	require.NoError(t, db.Create(&models.Ministry{Name: "Choir", Description: "singing",
		Leader: "Grace Kim"}).Error)

	// Case-insensitive, substring, independent per entity.
	res, err := repo.Search("HARV")
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	require.Len(t, res.Sermons, 1) // preacher column
	require.Len(t, res.Posts, 1)   // content column
	require.Empty(t, res.Ministries)

	res, err = repo.Search("grace")
	require.NoError(t, err)
	require.Empty(t, res.Events)
	require.Len(t, res.Sermons, 1)
	require.Empty(t, res.Posts)
	require.Len(t, res.Ministries, 1) // leader column

	res, err = repo.Search("eph 2:8")
	require.NoError(t, err)
	require.Len(t, res.Sermons, 1)

	res, err = repo.Search("nothing-here")
	require.NoError(t, err)
	require.Empty(t, res.Events)
	require.Empty(t, res.Sermons)
	require.Empty(t, res.Posts)
	require.Empty(t, res.Ministries)
}
