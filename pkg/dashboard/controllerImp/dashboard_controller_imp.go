package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/pkg/dashboard/service"
	"agro/pkg/httpx"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardCtrl struct{ s service.DashboardService }

func New(s service.DashboardService) *DashboardCtrl { return &DashboardCtrl{s} }

func (h *DashboardCtrl) Overview(c echo.Context) error {
	out, err := h.s.Overview(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DashboardCtrl) Stats(c echo.Context) error {
	out, err := h.s.Stats(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DashboardCtrl) States(c echo.Context) error {
	out, err := h.s.States(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DashboardCtrl) Crops(c echo.Context) error {
	out, err := h.s.Crops(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DashboardCtrl) LandUse(c echo.Context) error {
	out, err := h.s.LandUse(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Export buffers the workbook so a failure can still be reported as JSON.
func (h *DashboardCtrl) Export(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.s.Export(c.Request().Context(), &buf); err != nil {
		return httpx.Fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="dashboard.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
