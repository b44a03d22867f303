package router

import (
	"time"

	"churchsite/config"
	"churchsite/internal/console"
	"churchsite/internal/handler"
	"churchsite/internal/middleware"
	"churchsite/internal/repository"
	"churchsite/internal/service"
	"churchsite/pkg/mailer"
	"churchsite/pkg/payment"
	"churchsite/pkg/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, store storage.Store, notifier mailer.Notifier) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	sermonRepo := repository.NewSermonRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	ministryRepo := repository.NewMinistryRepository(db)
	prayerRepo := repository.NewPrayerRepository(db)
	contactRepo := repository.NewContactRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	searchRepo := repository.NewSearchRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, staffRepo)
	intakeSvc := service.NewIntakeService(&cfg.Site, contactRepo, prayerRepo, donationRepo,
		notifier, &payment.StubProvider{}, cfg.Mail.SendTimeout)

	// Handlers
	homeHandler := handler.NewHomeHandler(eventRepo, sermonRepo, blogRepo)
	eventHandler := handler.NewEventHandler(eventRepo)
	sermonHandler := handler.NewSermonHandler(sermonRepo)
	blogHandler := handler.NewBlogHandler(blogRepo)
	ministryHandler := handler.NewMinistryHandler(ministryRepo)
	prayerHandler := handler.NewPrayerHandler(prayerRepo, intakeSvc)
	contactHandler := handler.NewContactHandler(intakeSvc)
	donationHandler := handler.NewDonationHandler(intakeSvc)
	searchHandler := handler.NewSearchHandler(searchRepo)
	consoleHandler := handler.NewConsoleHandler(console.New(db), authSvc, &cfg.Site)
	uploadHandler := handler.NewUploadHandler(store)

	r.GET("/", homeHandler.Home)
	r.GET("/resources", homeHandler.Resources)
	r.GET("/search", searchHandler.Search)

	r.GET("/contact", contactHandler.Form)
	r.POST("/contact", contactHandler.Submit)

	r.GET("/events", eventHandler.List)
	r.GET("/events/:id", eventHandler.Get)
	r.GET("/sermons", sermonHandler.List)
	r.GET("/sermons/:id", sermonHandler.Get)
	r.GET("/blog", blogHandler.List)
	r.GET("/blog/:slug", blogHandler.Get)
	r.GET("/ministries", ministryHandler.List)
	r.GET("/ministries/:id", ministryHandler.Get)

	r.GET("/prayer-requests", prayerHandler.List)
	r.GET("/prayer-requests/new", prayerHandler.Form)
	r.POST("/prayer-requests/new", prayerHandler.Submit)
	r.GET("/prayer-requests/thanks", prayerHandler.Thanks)

	r.GET("/donate", donationHandler.Form)
	r.POST("/donate", donationHandler.Submit)
	r.GET("/donate/thanks", donationHandler.Thanks)

	admin := r.Group("/admin")
	{
		admin.POST("/login", consoleHandler.Login)

		staff := admin.Group("")
		staff.Use(middleware.StaffRequired(&cfg.JWT))
		{
			staff.GET("", consoleHandler.Index)
			staff.POST("/uploads/:kind", uploadHandler.Upload)
			staff.GET("/:entity", consoleHandler.List)
			staff.POST("/:entity", consoleHandler.Create)
			staff.GET("/:entity/:id", consoleHandler.Get)
			staff.PUT("/:entity/:id", consoleHandler.Update)
			staff.DELETE("/:entity/:id", consoleHandler.Delete)
			staff.POST("/:entity/actions/:action", consoleHandler.Bulk)
		}
	}

	return r
}
