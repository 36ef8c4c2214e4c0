package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/marcelpiva/myfit-api-sub002/internal/api/handlers/http/member"
	"github.com/marcelpiva/myfit-api-sub002/internal/api/handlers/http/staff"
	"github.com/marcelpiva/myfit-api-sub002/internal/api/handlers/http/system"
	"github.com/marcelpiva/myfit-api-sub002/internal/config"
	"github.com/marcelpiva/myfit-api-sub002/internal/middleware"
	"github.com/marcelpiva/myfit-api-sub002/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	staffHandler := staff.NewHandler(logger, svc.Gyms, svc.Codes)
	memberHandler := member.NewHandler(logger, svc.CheckIns, svc.Requests, svc.Locations, svc.Proximity)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, staffHandler, memberHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, staffHandler *staff.Handler, memberHandler *member.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// STAFF
		api.Route("/staff", func(sr chi.Router) {
			sr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			sr.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			sr.Route("/gyms", func(gr chi.Router) {
				gr.Post("/", staffHandler.GymCreate)
				gr.Get("/", staffHandler.GymList)

				gr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", staffHandler.GymGet)
					rr.Put("/", staffHandler.GymUpdate)
					rr.Delete("/", staffHandler.GymDeactivate)
				})
			})

			sr.Route("/codes", func(cr chi.Router) {
				cr.Post("/", staffHandler.CodeCreate)
				cr.Delete("/{value}", staffHandler.CodeDeactivate)
			})
		})

		// MEMBER
		api.Group(func(mr chi.Router) {
			mr.Use(middleware.Actor())
			mr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			mr.Route("/checkins", func(cr chi.Router) {
				cr.Post("/", memberHandler.CheckInCreate)
				cr.Post("/student", memberHandler.CheckInForStudent)
				cr.Post("/code", memberHandler.CheckInByCode)
				cr.Post("/location", memberHandler.CheckInByLocation)
				cr.Post("/near-trainer", memberHandler.CheckInNearTrainer)
				cr.Post("/checkout", memberHandler.Checkout)

				cr.Get("/", memberHandler.CheckInHistory)
				cr.Get("/active", memberHandler.CheckInActive)
				cr.Get("/pending", memberHandler.CheckInPending)
				cr.Get("/stats", memberHandler.CheckInStats)

				cr.Post("/{id}/accept", memberHandler.CheckInAccept)
				cr.Post("/{id}/reject", memberHandler.CheckInReject)
			})

			mr.Route("/requests", func(rr chi.Router) {
				rr.Post("/", memberHandler.RequestCreate)
				rr.Get("/", memberHandler.RequestList)
				rr.Get("/inbox", memberHandler.RequestInbox)
				rr.Post("/{id}/respond", memberHandler.RequestRespond)
			})

			mr.Route("/trainer", func(tr chi.Router) {
				tr.Post("/location", memberHandler.LocationPush)
				tr.Delete("/location", memberHandler.LocationDelete)
				tr.Post("/session/start", memberHandler.SessionStart)
				tr.Post("/session/end", memberHandler.SessionEnd)
				tr.Get("/session", memberHandler.SessionActive)
			})

			mr.Route("/discovery", func(dr chi.Router) {
				dr.Get("/nearby-trainers", memberHandler.NearbyTrainers)
				dr.Get("/nearest-gym", memberHandler.NearestGym)
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
