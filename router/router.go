package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	assocCtrl "agro/pkg/association/controller"
	cropCtrl "agro/pkg/crop/controller"
	dashCtrl "agro/pkg/dashboard/controller"
	producerCtrl "agro/pkg/producer/controller"
	propertyCtrl "agro/pkg/property/controller"
	seasonCtrl "agro/pkg/season/controller"
)

// crud is the route set shared by every entity controller.
type crud interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func mount(e *echo.Echo, prefix string, h crud) {
	g := e.Group(prefix)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// New registers every route on e. A nil metrics handler leaves /metrics unmounted.
func New(
	e *echo.Echo,
	producers producerCtrl.ProducerController,
	properties propertyCtrl.PropertyController,
	seasons seasonCtrl.SeasonController,
	crops cropCtrl.CropController,
	associations assocCtrl.AssociationController,
	dashboard dashCtrl.DashboardController,
	healthCtrl interface {
		Root(echo.Context) error
		Health(echo.Context) error
	},
	metrics http.Handler,
) *echo.Echo {
	e.GET("/", healthCtrl.Root)
	e.GET("/health", healthCtrl.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	mount(e, "/producers", producers)
	mount(e, "/properties", properties)
	mount(e, "/seasons", seasons)
	mount(e, "/crops", crops)
	mount(e, "/associations", associations)

	d := e.Group("/dashboard")
	d.GET("", dashboard.Overview)
	d.GET("/", dashboard.Overview)
	d.GET("/stats", dashboard.Stats)
	d.GET("/states", dashboard.States)
	d.GET("/crops", dashboard.Crops)
	d.GET("/land-use", dashboard.LandUse)
	d.GET("/export.xlsx", dashboard.Export)
	return e
}
