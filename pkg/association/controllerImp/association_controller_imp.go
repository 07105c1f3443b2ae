package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/pkg/association/service"
	"agro/pkg/httpx"
)

type AssociationCtrl struct{ s service.AssociationService }

func New(s service.AssociationService) *AssociationCtrl { return &AssociationCtrl{s} }

func (h *AssociationCtrl) Create(c echo.Context) error {
	var in service.AssociationInput
	if err := c.Bind(&in); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	p, err := h.s.Create(c.Request().Context(), in)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AssociationCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AssociationCtrl) Get(c echo.Context) error {
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

func (h *AssociationCtrl) Update(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	var in service.AssociationPatch
	if err := c.Bind(&in); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	p, err := h.s.Update(c.Request().Context(), id, in)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AssociationCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
