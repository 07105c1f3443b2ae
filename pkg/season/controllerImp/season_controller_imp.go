package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/pkg/httpx"
	"agro/pkg/season/service"
)

type SeasonCtrl struct{ s service.SeasonService }

func New(s service.SeasonService) *SeasonCtrl { return &SeasonCtrl{s} }

type createReq struct {
	Year int `json:"year"`
}

func (h *SeasonCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	out, err := h.s.Create(c.Request().Context(), req.Year)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SeasonCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *SeasonCtrl) Get(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	out, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SeasonCtrl) Update(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	var in service.SeasonPatch
	if err := c.Bind(&in); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	out, err := h.s.Update(c.Request().Context(), id, in)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SeasonCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
