package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/pkg/httpx"
	"agro/pkg/producer/service"
)

type ProducerCtrl struct{ s service.ProducerService }

func New(s service.ProducerService) *ProducerCtrl { return &ProducerCtrl{s} }

type createReq struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

func (h *ProducerCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	p, err := h.s.Create(c.Request().Context(), req.Name, req.TaxID)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProducerCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ProducerCtrl) Get(c echo.Context) error {
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

// Update serves both PUT and PATCH; absent fields keep their value.
func (h *ProducerCtrl) Update(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	var in service.ProducerPatch
	if err := c.Bind(&in); err != nil {
		return httpx.BadRequest(c, "invalid json")
	}
	p, err := h.s.Update(c.Request().Context(), id, in)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProducerCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return httpx.BadRequest(c, "invalid id")
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return httpx.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
