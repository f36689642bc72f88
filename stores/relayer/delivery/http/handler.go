package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/base/delivery"
	"github.com/x-oracle/refapi/domain"
	authMiddleware "github.com/x-oracle/refapi/stores/relayer/delivery/http/middleware"
)

type handler struct {
	relayer domain.RelayerUsecase
}

// New will initialize the relayer admin endpoints
func New(e *echo.Echo, us domain.RelayerUsecase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{
		relayer: us,
	}

	g := e.Group("/relayers", auth.AdminAuth())
	g.GET("", h.list)
	g.POST("", h.add)
	g.DELETE("/:name", h.remove)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	relayers, err := h.relayer.List(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, relayers)
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Name string `json:"name" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	relayer, err := h.relayer.Add(ctx, p.Name)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	// the api key is only revealed once, at creation time
	return delivery.MakeJsonResp(c, http.StatusCreated, map[string]interface{}{
		"name":      relayer.Name,
		"apiKey":    relayer.ApiKey,
		"createdAt": relayer.CreatedAt,
	})
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.relayer.Remove(ctx, c.Param("name")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
