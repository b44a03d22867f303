package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"churchsite/config"
	"churchsite/internal/database"
	"churchsite/internal/models"
	"churchsite/pkg/mailer"
	"churchsite/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	database.SeedStaff(db)

	cfg := config.Load()
	store := storage.NewLocalStore(t.TempDir(), "/media")
	notifier := mailer.NewSMTP("", 0, "", "", "test@localhost")
	return Setup(cfg, db, store, notifier), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/admin/login",
		map[string]string{"username": "admin", "password": "change-me"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHomeSections(t *testing.T) {
	r, db := newTestServer(t)
	now := time.Now()
	require.NoError(t, db.Create(&models.Event{Title: "Picnic", Description: "d",
		Location: "park", StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour)}).Error)

	w := doJSON(t, r, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		UpcomingEvents []models.Event    `json:"upcoming_events"`
		LatestSermons  []models.Sermon   `json:"latest_sermons"`
		LatestPosts    []models.BlogPost `json:"latest_posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.UpcomingEvents, 1)
	require.Empty(t, resp.LatestSermons)
	require.Empty(t, resp.LatestPosts)
}

func TestBlogSlugLookup(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/blog/my-first-post", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var staff models.StaffUser
	require.NoError(t, db.First(&staff).Error)
	require.NoError(t, db.Create(&models.BlogPost{Title: "My First Post",
		Slug: "my-first-post", AuthorID: staff.ID, Content: "welcome",
		PublishedDate: time.Now()}).Error)

	w = doJSON(t, r, http.MethodGet, "/blog/my-first-post", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "welcome")
}

func TestDonationSubmitFlow(t *testing.T) {
	r, db := newTestServer(t)

	// Valid pledge.
	w := doJSON(t, r, http.MethodPost, "/donate", map[string]interface{}{
		"name": "Jane", "email": "jane@x.com", "amount": "25.00",
		"donation_type": "youth", "is_recurring": false,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)

	var d models.Donation
	require.NoError(t, db.First(&d).Error)
	require.Equal(t, "25.00", d.Amount.StringFixed(2))
	require.Equal(t, "youth", d.DonationType)

	// Invalid amount re-renders with field errors, HTTP 200, nothing stored.
	w = doJSON(t, r, http.MethodPost, "/donate", map[string]interface{}{
		"name": "Jane", "email": "jane@x.com", "amount": "-1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":false`)
	require.Contains(t, w.Body.String(), "amount")

	var count int64
	db.Model(&models.Donation{}).Count(&count)
	require.EqualValues(t, 1, count)

	w = doJSON(t, r, http.MethodGet, "/donate/thanks", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPrayerRequestFlowAndPublicList(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/prayer-requests/new", map[string]interface{}{
		"name": "Sam", "email": "sam@x.com", "request": "pray for travel",
		"is_private": true,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)

	w = doJSON(t, r, http.MethodPost, "/prayer-requests/new", map[string]interface{}{
		"name": "Ann", "email": "ann@x.com", "request": "pray for healing",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var private models.PrayerRequest
	require.NoError(t, db.Where("name = ?", "Sam").First(&private).Error)
	require.Equal(t, "pending", private.Status)
	require.True(t, private.IsPrivate)

	w = doJSON(t, r, http.MethodGet, "/prayer-requests", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Ann")
	require.NotContains(t, w.Body.String(), "Sam")
}

func TestSearchEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	now := time.Now()
	require.NoError(t, db.Create(&models.Event{Title: "Harvest Festival",
		Description: "d", Location: "lawn", StartDate: now, EndDate: now}).Error)

	w := doJSON(t, r, http.MethodGet, "/search?q=harvest", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Harvest Festival")

	w = doJSON(t, r, http.MethodGet, "/search", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"events":[]`)
}

func TestConsoleRequiresAuth(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/admin/contact-messages", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/login",
		map[string]string{"username": "admin", "password": "wrong"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestConsoleCrudAndBulkMarkRead(t *testing.T) {
	r, db := newTestServer(t)
	token := login(t, r)

	// Create an event through the console.
	now := time.Now().Add(24 * time.Hour)
	w := doJSON(t, r, http.MethodPost, "/admin/events", map[string]interface{}{
		"title": "Bake Sale", "description": "cakes", "location": "hall",
		"start_date": now.Format(time.RFC3339), "end_date": now.Add(time.Hour).Format(time.RFC3339),
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var event models.Event
	require.NoError(t, db.First(&event).Error)
	require.Equal(t, "Bake Sale", event.Title)

	// Bulk mark-read on contact messages.
	msg := models.ContactMessage{Name: "Jane", Email: "jane@x.com", Subject: "s", Message: "m"}
	require.NoError(t, db.Create(&msg).Error)
	w = doJSON(t, r, http.MethodPost, "/admin/contact-messages/actions/mark-read",
		map[string]interface{}{"ids": []uint{msg.ID}}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.ContactMessage
	require.NoError(t, db.First(&got, msg.ID).Error)
	require.True(t, got.IsRead)
	require.Equal(t, "Jane", got.Name)

	// Unknown entity 404s.
	w = doJSON(t, r, http.MethodGet, "/admin/widgets", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}
