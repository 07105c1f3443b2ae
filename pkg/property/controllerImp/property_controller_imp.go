package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/pkg/httpx"
	"agro/pkg/property/service"
)

type PropertyCtrl struct{ s service.PropertyService }

func New(s service.PropertyService) *PropertyCtrl { return &PropertyCtrl{s} }

func (h *PropertyCtrl) Create(c echo.Context) error {
	var in service.PropertyInput
	if err := c.Bind(&in); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	p, err := h.s.Create(c.Request().Context(), in)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PropertyCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *PropertyCtrl) Get(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	p, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PropertyCtrl) Update(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	var in service.PropertyPatch
	if err := c.Bind(&in); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	p, err := h.s.Update(c.Request().Context(), id, in)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PropertyCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
