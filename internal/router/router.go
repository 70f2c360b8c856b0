package router

import (
	"net/http"

	"github.com/dev-9820/eventease-frontend/internal/guard"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	Register(c *ginext.Context)
	Logout(c *ginext.Context)
	CurrentSession(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	BookEvent(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	Calendar(c *ginext.Context)
	ExportCalendar(c *ginext.Context)
	AdminEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ListAttendees(c *ginext.Context)
	ListNotifications(c *ginext.Context)
	DismissNotification(c *ginext.Context)
}

func InitRouter(mode string, h Handler, sess guard.SessionState, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/login", h.Login)
		api.POST("/auth/register", h.Register)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/session", h.CurrentSession)

		// Public discovery
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/book", h.BookEvent)

		// Notifications
		api.GET("/notifications", h.ListNotifications)
		api.DELETE("/notifications/:id", h.DismissNotification)

		// Authenticated screens
		authed := api.Group("", guard.Middleware(sess, guard.Authenticated))
		{
			authed.GET("/my-bookings", h.ListMyBookings)
			authed.DELETE("/my-bookings/:id", h.CancelBooking)
			authed.GET("/calendar", h.Calendar)
			authed.GET("/calendar/export.ics", h.ExportCalendar)
		}

		// Admin screens
		admin := api.Group("/admin", guard.Middleware(sess, guard.Admin))
		{
			admin.GET("/events", h.AdminEvents)
			admin.POST("/events", h.CreateEvent)
			admin.DELETE("/events/:id", h.DeleteEvent)
			admin.GET("/events/:id/attendees", h.ListAttendees)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
