package calendarHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	calendarService "github.com/Thyago-vibe/axxy-financeiro/internal/api/calendar/service"
	"github.com/Thyago-vibe/axxy-financeiro/internal/middleware"
)

type CalendarHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	calendarService calendarService.ICalendarService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	calendarService calendarService.ICalendarService,
) *CalendarHandler {
	return &CalendarHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		calendarService: calendarService,
	}
}

func (h *CalendarHandler) Start(srv fiber.Router) {
	calendar := srv.Group("/calendar")

	calendar.Get("/events", h.GetEvents)
}
