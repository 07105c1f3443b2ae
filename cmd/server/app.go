package main

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"agro/config"
	"agro/pkg/logger"
	"agro/pkg/metrics"
	"agro/pkg/middleware"
	"agro/router"

	assocCtrlImp "agro/pkg/association/controllerImp"
	assocRepoImp "agro/pkg/association/repositoryImp"
	assocSvc "agro/pkg/association/service"
	assocSvcImp "agro/pkg/association/serviceImp"

	cropCtrlImp "agro/pkg/crop/controllerImp"
	cropRepoImp "agro/pkg/crop/repositoryImp"
	cropSvc "agro/pkg/crop/service"
	cropSvcImp "agro/pkg/crop/serviceImp"

	dashCtrlImp "agro/pkg/dashboard/controllerImp"
	dashRepoImp "agro/pkg/dashboard/repositoryImp"
	dashSvc "agro/pkg/dashboard/service"
	dashSvcImp "agro/pkg/dashboard/serviceImp"

	healthCtrlImp "agro/pkg/health/controllerImp"

	producerCtrlImp "agro/pkg/producer/controllerImp"
	producerRepoImp "agro/pkg/producer/repositoryImp"
	producerSvc "agro/pkg/producer/service"
	producerSvcImp "agro/pkg/producer/serviceImp"

	propertyCtrlImp "agro/pkg/property/controllerImp"
	propertyRepoImp "agro/pkg/property/repositoryImp"
	propertySvc "agro/pkg/property/service"
	propertySvcImp "agro/pkg/property/serviceImp"

	seasonCtrlImp "agro/pkg/season/controllerImp"
	seasonRepoImp "agro/pkg/season/repositoryImp"
	seasonSvc "agro/pkg/season/service"
	seasonSvcImp "agro/pkg/season/serviceImp"
)

type services struct {
	producers    producerSvc.ProducerService
	properties   propertySvc.PropertyService
	seasons      seasonSvc.SeasonService
	crops        cropSvc.CropService
	associations assocSvc.AssociationService
	dashboard    dashSvc.DashboardService
}

func newServices(db *gorm.DB, log *logger.Logger, m *metrics.Metrics) services {
	pRepo := propertyRepoImp.New(db)
	sRepo := seasonRepoImp.New(db)
	cRepo := cropRepoImp.New(db)
	return services{
		producers:    producerSvcImp.NewProducerService(db, producerRepoImp.New(db), log, m),
		properties:   propertySvcImp.NewPropertyService(db, pRepo, log, m),
		seasons:      seasonSvcImp.NewSeasonService(db, sRepo, log, m),
		crops:        cropSvcImp.NewCropService(db, cRepo, log, m),
		associations: assocSvcImp.NewAssociationService(db, assocRepoImp.New(db), pRepo, sRepo, cRepo, log, m),
		dashboard:    dashSvcImp.NewDashboardService(dashRepoImp.New(db), log, m),
	}
}

// newMetrics returns nil collectors and no handler when metrics are disabled.
func newMetrics(enabled bool) (*metrics.Metrics, http.Handler) {
	if !enabled {
		return nil, nil
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return metrics.New(reg), promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func newEcho(cfg config.AppConfig, db *gorm.DB, svcs services, log *logger.Logger, m *metrics.Metrics, metricsHandler http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Observe(m))
	e.Use(middleware.RequestLog(log.With("component", "http")))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))

	return router.New(
		e,
		producerCtrlImp.New(svcs.producers),
		propertyCtrlImp.New(svcs.properties),
		seasonCtrlImp.New(svcs.seasons),
		cropCtrlImp.New(svcs.crops),
		assocCtrlImp.New(svcs.associations),
		dashCtrlImp.New(svcs.dashboard),
		healthCtrlImp.NewHealthCtrl(db, appName, version),
		metricsHandler,
	)
}
