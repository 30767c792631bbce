package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/handler"
)

// SetupRouter configures the gin engine and all routes.
func SetupRouter(api *handler.API, sessionSecret, uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(accessLog())

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 7 * 24 * 60 * 60})
	r.Use(sessions.Sessions("listeningclub_session", store))

	// Uploaded media.
	r.Static(uploadURLPath, uploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public contact-form ingestion. Any registers all verbs so the handler
	// can answer preflight and reject everything that is not POST with 405.
	r.Any("/submit-contact", api.SubmitContact)

	// Public content reads for the site pages.
	public := r.Group("/api")
	{
		public.GET("/banner-slides", api.PublicBannerSlides)
		public.GET("/quotes", api.PublicQuotes)
		public.GET("/events", api.PublicEvents)
		public.GET("/faqs", api.PublicFaqs)
		public.GET("/founders", api.PublicFounders)
		public.GET("/volunteers", api.PublicVolunteers)
		public.GET("/gallery", api.PublicGallery)
		public.GET("/services", api.PublicServices)
		public.GET("/testimonials", api.PublicTestimonials)
		public.GET("/posts", api.PublicPosts)
		public.GET("/contact-info", api.PublicContactInfo)
	}

	// Admin dashboard API.
	admin := r.Group("/admin/api")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/me", api.Me)
			auth.GET("/dashboard", api.Dashboard)

			auth.POST("/uploads", api.UploadImage)

			auth.GET("/submissions", api.ListSubmissions)
			auth.GET("/submissions/export", api.ExportSubmissions)
			auth.DELETE("/submissions/:id", api.DeleteSubmission)

			auth.GET("/events", api.ListEvents)
			auth.POST("/events", api.CreateEvent)
			auth.PUT("/events/:id", api.UpdateEvent)
			auth.DELETE("/events/:id", api.DeleteEvent)

			auth.GET("/faqs", api.ListFaqs)
			auth.POST("/faqs", api.CreateFaq)
			auth.PUT("/faqs/:id", api.UpdateFaq)
			auth.DELETE("/faqs/:id", api.DeleteFaq)

			auth.GET("/founders", api.ListFounders)
			auth.POST("/founders", api.CreateFounder)
			auth.PUT("/founders/:id", api.UpdateFounder)
			auth.DELETE("/founders/:id", api.DeleteFounder)

			auth.GET("/volunteers", api.ListVolunteers)
			auth.POST("/volunteers", api.CreateVolunteer)
			auth.PUT("/volunteers/:id", api.UpdateVolunteer)
			auth.DELETE("/volunteers/:id", api.DeleteVolunteer)

			auth.GET("/gallery", api.ListGalleryImages)
			auth.POST("/gallery", api.CreateGalleryImage)
			auth.PUT("/gallery/:id", api.UpdateGalleryImage)
			auth.DELETE("/gallery/:id", api.DeleteGalleryImage)

			auth.GET("/services", api.ListServiceItems)
			auth.POST("/services", api.CreateServiceItem)
			auth.PUT("/services/:id", api.UpdateServiceItem)
			auth.DELETE("/services/:id", api.DeleteServiceItem)

			auth.GET("/testimonials", api.ListTestimonials)
			auth.POST("/testimonials", api.CreateTestimonial)
			auth.PUT("/testimonials/:id", api.UpdateTestimonial)
			auth.DELETE("/testimonials/:id", api.DeleteTestimonial)

			auth.GET("/quotes", api.ListQuotes)
			auth.POST("/quotes", api.CreateQuote)
			auth.PUT("/quotes/:id", api.UpdateQuote)
			auth.DELETE("/quotes/:id", api.DeleteQuote)

			auth.GET("/banner-slides", api.ListBannerSlides)
			auth.POST("/banner-slides", api.CreateBannerSlide)
			auth.PUT("/banner-slides/:id", api.UpdateBannerSlide)
			auth.DELETE("/banner-slides/:id", api.DeleteBannerSlide)

			auth.GET("/posts", api.ListPosts)
			auth.GET("/posts/:id", api.GetPost)
			auth.POST("/posts", api.CreatePost)
			auth.PUT("/posts/:id", api.UpdatePost)
			auth.DELETE("/posts/:id", api.DeletePost)

			auth.GET("/settings", api.ListSettings)
			auth.PUT("/settings", api.UpsertSetting)
			auth.GET("/contact-info", api.GetContactInfo)
			auth.PUT("/contact-info", api.UpdateContactInfo)
		}
	}

	return r
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
