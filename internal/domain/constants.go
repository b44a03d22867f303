package domain

// Prayer request statuses. Forward progression (pending -> praying -> answered)
// is advisory; the console accepts any of the three.
const (
	PrayerStatusPending  = "pending"
	PrayerStatusPraying  = "praying"
	PrayerStatusAnswered = "answered"
)

var PrayerStatuses = []string{PrayerStatusPending, PrayerStatusPraying, PrayerStatusAnswered}

// Donation funds and their display names for emails and the console.
const (
	FundGeneral  = "general"
	FundMissions = "missions"
	FundBuilding = "building"
	FundYouth    = "youth"
	FundChildren = "children"
	FundOther    = "other"
)

var DonationFunds = map[string]string{
	FundGeneral:  "General",
	FundMissions: "Missions",
	FundBuilding: "Building Fund",
	FundYouth:    "Youth Ministry",
	FundChildren: "Children Ministry",
	FundOther:    "Other",
}

// FundDisplay returns the human-readable fund name, falling back to the raw key.
func FundDisplay(fund string) string {
	if d, ok := DonationFunds[fund]; ok {
		return d
	}
	return fund
}

// Upload folder conventions per record type. The domain stores URLs only;
// storage backends place files under these folders.
const (
	FolderEvents       = "events"
	FolderSermonAudio  = "sermons/audio"
	FolderSermonSlides = "sermons/slides"
	FolderBlog         = "blog"
	FolderMinistries   = "ministries"
)

// UploadFolders maps the console's upload kinds to storage folders.
var UploadFolders = map[string]string{
	"event-image":    FolderEvents,
	"sermon-audio":   FolderSermonAudio,
	"sermon-slides":  FolderSermonSlides,
	"blog-image":     FolderBlog,
	"ministry-image": FolderMinistries,
}

// List page sizes for the public surface.
const (
	EventsPerPage  = 9
	SermonsPerPage = 10
	PostsPerPage   = 6
	PrayersPerPage = 10
)
