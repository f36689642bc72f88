package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/base/delivery"
	"github.com/x-oracle/refapi/base/metrics"
	"github.com/x-oracle/refapi/base/validator"
	"github.com/x-oracle/refapi/domain"
	"github.com/x-oracle/refapi/middleware"
	authMiddleware "github.com/x-oracle/refapi/stores/relayer/delivery/http/middleware"
)

type handler struct {
	refData domain.RefDataUsecase
	met     metrics.Service
}

// New will initialize the reference data endpoints
func New(e *echo.Echo, us domain.RefDataUsecase, auth *authMiddleware.AuthMiddleware, cacheTtl time.Duration) {
	h := &handler{
		refData: us,
		met:     metrics.New("refdata"),
	}

	e.GET("/ref/:symbol", h.getRef, middleware.IsValidSymbol("symbol"), middleware.CacheHttp(cacheTtl))

	g := e.Group("/reference-data")
	g.GET("", h.getReferenceData, middleware.CacheHttp(cacheTtl))
	g.POST("/bulk", h.getReferenceDataBulk)

	r := e.Group("/relay")
	r.POST("", h.relay, auth.RelayerAuth())
	r.POST("/force", h.forceRelay, auth.AdminAuth())
}

func (h *handler) getRef(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	refData, err := h.refData.GetRef(ctx, c.Param("symbol"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, refData)
}

func (h *handler) getReferenceData(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		BaseSymbol  string `query:"base_symbol" validate:"required"`
		QuoteSymbol string `query:"quote_symbol" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if !validator.IsValidSymbol(p.BaseSymbol) || !validator.IsValidSymbol(p.QuoteSymbol) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	data, err := h.refData.GetReferenceData(ctx, p.BaseSymbol, p.QuoteSymbol)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, data)
}

func (h *handler) getReferenceDataBulk(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		BaseSymbols  []string `json:"base_symbols" validate:"required"`
		QuoteSymbols []string `json:"quote_symbols" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	for _, symbol := range append(append([]string{}, p.BaseSymbols...), p.QuoteSymbols...) {
		if !validator.IsValidSymbol(symbol) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
	}

	h.met.BumpAvg("bulk.pairs", float64(len(p.BaseSymbols)))

	data, err := h.refData.GetReferenceDataBulk(ctx, p.BaseSymbols, p.QuoteSymbols)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, data)
}

type relayPayload struct {
	Symbols     []string          `json:"symbols" validate:"required"`
	Prices      []decimal.Decimal `json:"prices" validate:"required"`
	ResolveTime int64             `json:"resolve_time" validate:"required"`
	RequestId   uint64            `json:"request_id"`
}

func (h *handler) bindRelayPayload(c echo.Context) (*domain.RelayPayload, error) {
	p := relayPayload{}

	if err := c.Bind(&p); err != nil {
		return nil, err
	}

	if err := c.Validate(&p); err != nil {
		return nil, err
	}

	for _, symbol := range p.Symbols {
		if !validator.IsValidSymbol(symbol) {
			return nil, domain.ErrBadParamInput
		}
	}

	return &domain.RelayPayload{
		Symbols:     p.Symbols,
		Prices:      p.Prices,
		ResolveTime: p.ResolveTime,
		RequestId:   p.RequestId,
	}, nil
}

func (h *handler) relay(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	payload, err := h.bindRelayPayload(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.refData.Relay(ctx, payload); err != nil {
		h.met.BumpSum("relay.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	h.met.BumpSum("relay.symbols", float64(len(payload.Symbols)))
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) forceRelay(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	payload, err := h.bindRelayPayload(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.refData.ForceRelay(ctx, payload); err != nil {
		h.met.BumpSum("forceRelay.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	h.met.BumpSum("forceRelay.symbols", float64(len(payload.Symbols)))
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
