package networthHandler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	networthService "github.com/Thyago-vibe/axxy-financeiro/internal/api/networth/service"
	"github.com/Thyago-vibe/axxy-financeiro/internal/middleware"
)

type NetWorthHandler struct {
	log             *logrus.Logger
	middleware      middleware.Middleware
	netWorthService networthService.INetWorthService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	netWorthService networthService.INetWorthService,
) *NetWorthHandler {
	return &NetWorthHandler{
		log:             log,
		middleware:      middleware,
		netWorthService: netWorthService,
	}
}

func (h *NetWorthHandler) Start(srv fiber.Router) {
	networth := srv.Group("/networth")

	networth.Get("/", h.GetBreakdown)
}
