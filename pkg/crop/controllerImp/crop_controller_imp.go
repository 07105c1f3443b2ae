package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/pkg/crop/service"
	"agro/pkg/httpx"
)

type CropCtrl struct{ s service.CropService }

func New(s service.CropService) *CropCtrl { return &CropCtrl{s} }

type createReq struct {
	Name string `json:"name"`
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	out, err := h.s.Create(c.Request().Context(), req.Name)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CropCtrl) Get(c echo.Context) error {
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

func (h *CropCtrl) Update(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	var in service.CropPatch
	if err := c.Bind(&in); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	out, err := h.s.Update(c.Request().Context(), id, in)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
