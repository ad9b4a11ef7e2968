package calendarService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/financeapi"
)

type ICalendarService interface {
	Events(ctx context.Context, now time.Time) []entity.CalendarEvent
}

type calendarService struct {
	log        *logrus.Logger
	financeAPI financeapi.IFinanceAPI
}

func NewCalendarService(log *logrus.Logger, api financeapi.IFinanceAPI) ICalendarService {
	return &calendarService{
		log:        log,
		financeAPI: api,
	}
}
