package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	advisorHandler "github.com/Thyago-vibe/axxy-financeiro/internal/api/advisor/handler"
	advisorService "github.com/Thyago-vibe/axxy-financeiro/internal/api/advisor/service"
	backupHandler "github.com/Thyago-vibe/axxy-financeiro/internal/api/backup/handler"
	backupService "github.com/Thyago-vibe/axxy-financeiro/internal/api/backup/service"
	calendarHandler "github.com/Thyago-vibe/axxy-financeiro/internal/api/calendar/handler"
	calendarService "github.com/Thyago-vibe/axxy-financeiro/internal/api/calendar/service"
	dashboardHandler "github.com/Thyago-vibe/axxy-financeiro/internal/api/dashboard/handler"
	dashboardService "github.com/Thyago-vibe/axxy-financeiro/internal/api/dashboard/service"
	networthHandler "github.com/Thyago-vibe/axxy-financeiro/internal/api/networth/handler"
	networthService "github.com/Thyago-vibe/axxy-financeiro/internal/api/networth/service"
	transactionHandler "github.com/Thyago-vibe/axxy-financeiro/internal/api/transaction/handler"
	transactionService "github.com/Thyago-vibe/axxy-financeiro/internal/api/transaction/service"
	"github.com/Thyago-vibe/axxy-financeiro/internal/middleware"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/financeapi"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/gemini"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	handlers     []handler
	financeAPI   financeapi.IFinanceAPI
	geminiClient gemini.IGemini
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.financeAPI == nil {
		return nil, fmt.Errorf("finance API gateway is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithFinanceAPI() ServerOption {
	return func(s *Server) error {
		api, err := financeapi.New(s.log)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize finance API gateway: %v", err)
			}
			return fmt.Errorf("failed to create finance API gateway: %w", err)
		}
		s.financeAPI = api
		return nil
	}
}

// WithGeminiClient keeps the server bootable without an API key; the
// advisor module then serves its static mock payloads.
func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini client unavailable, advisor will use mock suggestions: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Dashboard
	dashboardServices := dashboardService.NewDashboardService(s.log, s.financeAPI)
	dashboardHandlers := dashboardHandler.New(s.log, s.validator, s.middleware, dashboardServices)

	// Transactions
	transactionServices := transactionService.NewTransactionService(s.log, s.financeAPI)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Calendar
	calendarServices := calendarService.NewCalendarService(s.log, s.financeAPI)
	calendarHandlers := calendarHandler.New(s.log, s.validator, s.middleware, calendarServices)

	// Net worth
	networthServices := networthService.NewNetWorthService(s.log, s.financeAPI)
	networthHandlers := networthHandler.New(s.log, s.middleware, networthServices)

	// Advisor
	advisorServices := advisorService.NewAdvisorService(s.log, s.financeAPI, s.geminiClient)
	advisorHandlers := advisorHandler.New(s.log, s.middleware, advisorServices)

	// Backup
	backupServices := backupService.NewBackupService(s.log, s.financeAPI)
	backupHandlers := backupHandler.New(s.log, s.middleware, backupServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		dashboardHandlers,
		transactionHandlers,
		calendarHandlers,
		networthHandlers,
		advisorHandlers,
		backupHandlers,
	)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
