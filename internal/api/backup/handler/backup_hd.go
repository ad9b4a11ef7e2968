package backupHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/backup"
	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	contextPkg "github.com/Thyago-vibe/axxy-financeiro/pkg/context"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/handlerUtil"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/log"
)

func (h *BackupHandler) Export(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing backup export request")

	exported, err := h.backupService.Export(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_backup")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, exported)
	}
}

func (h *BackupHandler) Import(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing backup import request")

	var doc entity.Backup
	if err := ctx.BodyParser(&doc); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.backupService.Import(c, doc); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "import_backup")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, backup.ImportResponse{
			Imported: true,
			Version:  doc.Version,
		})
	}
}
