package handler

import (
	"github.com/listeningclub/internal/config"
	"github.com/listeningclub/internal/service"
	"github.com/listeningclub/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	contacts     *service.ContactService
	submissions  *service.SubmissionAdminService
	events       *service.EventService
	faqs         *service.FaqService
	founders     *service.FounderService
	volunteers   *service.VolunteerService
	galleries    *service.GalleryService
	serviceItems *service.ServiceItemService
	testimonials *service.TestimonialService
	quotes       *service.QuoteService
	banners      *service.BannerService
	posts        *service.PostService
	settings     *service.SettingService
	store        storage.Storage
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, store storage.Storage, cfg config.AppConfig) *API {
	contacts := service.NewContactService(service.NewSubmissionStore(gdb), service.RateLimitPolicy{
		Limit:    cfg.ContactRateLimit,
		Window:   cfg.ContactRateWindow,
		FailMode: cfg.ContactFailMode,
	})

	return &API{
		db:           gdb,
		contacts:     contacts,
		submissions:  service.NewSubmissionAdminService(gdb),
		events:       service.NewEventService(gdb),
		faqs:         service.NewFaqService(gdb),
		founders:     service.NewFounderService(gdb),
		volunteers:   service.NewVolunteerService(gdb),
		galleries:    service.NewGalleryService(gdb),
		serviceItems: service.NewServiceItemService(gdb),
		testimonials: service.NewTestimonialService(gdb),
		quotes:       service.NewQuoteService(gdb),
		banners:      service.NewBannerService(gdb),
		posts:        service.NewPostService(gdb),
		settings:     service.NewSettingService(gdb),
		store:        store,
	}
}
