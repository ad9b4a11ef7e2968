package calendarHandler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/calendar"
	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	contextPkg "github.com/Thyago-vibe/axxy-financeiro/pkg/context"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/handlerUtil"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/log"
)

func (h *CalendarHandler) GetEvents(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing calendar events request")

	now := time.Now()

	month, year, err := parsePeriod(ctx, now)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_period")
	}

	events := h.calendarService.Events(c, now)

	response := calendar.EventListResponse{Events: make([]calendar.EventResponse, 0, len(events))}
	for _, e := range events {
		if e.Date.Year() != year || e.Date.Month() != month {
			continue
		}

		switch e.Status {
		case entity.EventStatusPending:
			response.Pending++
		case entity.EventStatusOverdue:
			response.Overdue++
		}

		response.Events = append(response.Events, calendar.EventResponse{
			ID:     e.ID,
			Title:  e.Title,
			Amount: e.Amount,
			Date:   e.Date.Format("2006-01-02"),
			Status: string(e.Status),
			Source: string(e.Source),
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

// parsePeriod reads the optional month/year query, defaulting to the
// month of the evaluation time.
func parsePeriod(ctx *fiber.Ctx, now time.Time) (time.Month, int, error) {
	month := int(now.Month())
	year := now.Year()

	if raw := ctx.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, calendar.ErrInvalidPeriod
		}
		month = m
	}

	if raw := ctx.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 {
			return 0, 0, calendar.ErrInvalidPeriod
		}
		year = y
	}

	return time.Month(month), year, nil
}
