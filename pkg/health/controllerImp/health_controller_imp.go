package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB
	name    string
	version string
}

func NewHealthCtrl(db *gorm.DB, name, version string) *HealthCtrl {
	return &HealthCtrl{db: db, name: name, version: version}
}

// Root identifies the service.
func (h *HealthCtrl) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"name": h.name, "version": h.version})
}

// Health pings the database; 503 when it is unreachable.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	type check struct {
		OK     bool   `json:"ok"`
		Driver string `json:"driver,omitempty"`
		Err    string `json:"err,omitempty"`
	}

	db := check{OK: true}
	switch {
	case h.db == nil:
		db = check{Err: "database not configured"}
	default:
		db.Driver = h.db.Dialector.Name()
		sqlDB, err := h.db.DB()
		if err != nil {
			db.OK, db.Err = false, "db.DB(): "+err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db.OK, db.Err = false, "ping: "+err.Error()
		}
	}

	status, label := http.StatusOK, "ok"
	if !db.OK {
		status, label = http.StatusServiceUnavailable, "degraded"
	}
	return c.JSON(status, echo.Map{
		"status":     label,
		"version":    h.version,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     echo.Map{"database": db},
		"time":       time.Now().Format(time.RFC3339),
	})
}
