// Package app wires repositories, services and routers into an HTTP handler.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	applicationRepository "github.com/festy23/team_recruitment/internal/application/repository"
	applicationRouter "github.com/festy23/team_recruitment/internal/application/router"
	applicationService "github.com/festy23/team_recruitment/internal/application/service"
	"github.com/festy23/team_recruitment/internal/competition"
	"github.com/festy23/team_recruitment/internal/config"
	"github.com/festy23/team_recruitment/internal/events"
	"github.com/festy23/team_recruitment/internal/health"
	"github.com/festy23/team_recruitment/internal/identity"
	membershipRepository "github.com/festy23/team_recruitment/internal/membership/repository"
	membershipService "github.com/festy23/team_recruitment/internal/membership/service"
	"github.com/festy23/team_recruitment/internal/metrics"
	"github.com/festy23/team_recruitment/internal/middleware"
	recruitmentRouter "github.com/festy23/team_recruitment/internal/recruitment/router"
	recruitmentService "github.com/festy23/team_recruitment/internal/recruitment/service"
	teamRepository "github.com/festy23/team_recruitment/internal/team/repository"
	teamRouter "github.com/festy23/team_recruitment/internal/team/router"
	teamService "github.com/festy23/team_recruitment/internal/team/service"
)

// App is the assembled service.
type App struct {
	Router   *gin.Engine
	Registry *prometheus.Registry
	Metrics  *metrics.Recruitment
}

// New builds the service on top of db. rdb may be nil, in which case events
// go to the structured log instead of a Redis stream.
func New(cfg config.Config, db *gorm.DB, rdb *redis.Client, logger *zap.SugaredLogger) *App {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if sqlDB, err := db.DB(); err == nil {
		reg.MustRegister(collectors.NewDBStatsCollector(sqlDB, "recruitment"))
	}
	m := metrics.New(reg)

	var publisher events.Publisher = events.NewLogPublisher(logger)
	if rdb != nil {
		publisher = events.NewRedisPublisher(rdb, cfg.Redis.Stream, cfg.Redis.StreamMaxLen)
	}
	emitter := events.NewEmitter(publisher, m, logger)

	competitions := competition.NewRegistry(db)
	members := membershipService.New(membershipRepository.New(db), logger)
	teams := teamService.New(teamRepository.New(db), db, members, competitions, emitter, logger)
	broker := recruitmentService.New(db, teams, members, cfg.Recruitment, m, emitter, logger)
	applications := applicationService.New(
		applicationRepository.New(db), db, teams, members, competitions, m, emitter, logger,
	)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))

	r.GET("/health", health.New(db, rdb, logger).Check)
	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	}

	api := r.Group("", identity.Middleware(cfg.Auth, logger))
	teamRouter.RegisterRoutes(api, teams, logger)
	recruitmentRouter.RegisterRoutes(api, broker, logger)
	applicationRouter.RegisterRoutes(api, applications, logger)

	return &App{Router: r, Registry: reg, Metrics: m}
}
