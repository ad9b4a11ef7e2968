package backupHandler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	backupService "github.com/Thyago-vibe/axxy-financeiro/internal/api/backup/service"
	"github.com/Thyago-vibe/axxy-financeiro/internal/middleware"
)

type BackupHandler struct {
	log           *logrus.Logger
	middleware    middleware.Middleware
	backupService backupService.IBackupService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	backupService backupService.IBackupService,
) *BackupHandler {
	return &BackupHandler{
		log:           log,
		middleware:    middleware,
		backupService: backupService,
	}
}

func (h *BackupHandler) Start(srv fiber.Router) {
	backup := srv.Group("/backup")

	backup.Get("/export", h.Export)
	backup.Post("/import", h.Import)
}
