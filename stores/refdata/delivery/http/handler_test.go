package http

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-oracle/refapi/base/validator"
	"github.com/x-oracle/refapi/domain"
	"github.com/x-oracle/refapi/domain/mocks"
	"github.com/x-oracle/refapi/middleware"
	authMiddleware "github.com/x-oracle/refapi/stores/relayer/delivery/http/middleware"
)

const (
	adminApiKey   = "admin-test-key"
	relayerApiKey = "relayer-test-key"
)

type testsuite struct {
	suite.Suite

	e       *echo.Echo
	refData *mocks.RefDataUsecase
	relayer *mocks.RelayerUsecase
}

func (ts *testsuite) SetupTest() {
	middleware.SetupCache()

	ts.refData = &mocks.RefDataUsecase{}
	ts.relayer = &mocks.RelayerUsecase{}

	ts.e = echo.New()
	ts.e.Validator = validator.NewCustomValidator(goValidator.New())
	ts.e.Use(middleware.InitMiddleware().AddContext())

	New(ts.e, ts.refData, authMiddleware.New(ts.relayer, []string{adminApiKey}), time.Minute)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) record(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testsuite) jsonRequest(method, target, body, apiKey string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if apiKey != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+apiKey)
	}
	return req
}

func rate(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad rate literal: " + s)
	}
	return v
}

func (ts *testsuite) TestGetRef() {
	ts.refData.On("GetRef", mock.Anything, "BTC").Return(&domain.RefData{
		Symbol:      "BTC",
		Price:       "23131270000000000000000",
		ResolveTime: 1659588229,
		RequestId:   1234,
	}, nil).Once()

	rec := ts.record(httptest.NewRequest(http.MethodGet, "/ref/BTC", nil))
	ts.Equal(http.StatusOK, rec.Code)
	ts.JSONEq(`{
		"data": {"symbol":"BTC","price":"23131270000000000000000","resolveTime":1659588229,"requestId":1234},
		"status": "success"
	}`, rec.Body.String())

	// the second read is served from the response cache
	rec = ts.record(httptest.NewRequest(http.MethodGet, "/ref/BTC", nil))
	ts.Equal(http.StatusOK, rec.Code)
	ts.refData.AssertNumberOfCalls(ts.T(), "GetRef", 1)
}

func (ts *testsuite) TestGetRefRejectsMalformedSymbol() {
	rec := ts.record(httptest.NewRequest(http.MethodGet, "/ref/BTC$", nil))
	ts.Equal(http.StatusBadRequest, rec.Code)
	ts.refData.AssertNotCalled(ts.T(), "GetRef")
}

func (ts *testsuite) TestGetReferenceData() {
	ts.refData.On("GetReferenceData", mock.Anything, "ETH", "USD").Return(&domain.ReferenceData{
		Rate:             rate("1653870000000000000000"),
		LastUpdatedBase:  1659588100,
		LastUpdatedQuote: 1659589497,
	}, nil)

	rec := ts.record(httptest.NewRequest(http.MethodGet, "/reference-data?base_symbol=ETH&quote_symbol=USD", nil))
	ts.Equal(http.StatusOK, rec.Code)
	ts.JSONEq(`{
		"data": {"rate":1653870000000000000000,"last_updated_base":1659588100,"last_updated_quote":1659589497},
		"status": "success"
	}`, rec.Body.String())
}

func (ts *testsuite) TestGetReferenceDataMissingQuoteSymbol() {
	rec := ts.record(httptest.NewRequest(http.MethodGet, "/reference-data?base_symbol=ETH", nil))
	ts.Equal(http.StatusBadRequest, rec.Code)
	ts.refData.AssertNotCalled(ts.T(), "GetReferenceData")
}

func (ts *testsuite) TestGetReferenceDataUnknownSymbol() {
	ts.refData.On("GetReferenceData", mock.Anything, "DOGE", "USD").
		Return(nil, &domain.SymbolNotFoundError{Symbol: "DOGE"})

	rec := ts.record(httptest.NewRequest(http.MethodGet, "/reference-data?base_symbol=DOGE&quote_symbol=USD", nil))
	ts.Equal(http.StatusNotFound, rec.Code)
	ts.Contains(rec.Body.String(), "DOGE")
	ts.Contains(rec.Body.String(), `"status":"fail"`)
}

func (ts *testsuite) TestGetReferenceDataBulk() {
	ts.refData.On("GetReferenceDataBulk", mock.Anything, []string{"BTC", "ETH"}, []string{"USD", "USD"}).
		Return([]domain.ReferenceData{
			{Rate: rate("23131270000000000000000"), LastUpdatedBase: 1659588229, LastUpdatedQuote: 1659589497},
			{Rate: rate("1653870000000000000000"), LastUpdatedBase: 1659588100, LastUpdatedQuote: 1659589497},
		}, nil)

	rec := ts.record(ts.jsonRequest(http.MethodPost, "/reference-data/bulk",
		`{"base_symbols":["BTC","ETH"],"quote_symbols":["USD","USD"]}`, ""))
	ts.Equal(http.StatusOK, rec.Code)
	ts.JSONEq(`{
		"data": [
			{"rate":23131270000000000000000,"last_updated_base":1659588229,"last_updated_quote":1659589497},
			{"rate":1653870000000000000000,"last_updated_base":1659588100,"last_updated_quote":1659589497}
		],
		"status": "success"
	}`, rec.Body.String())
}

func (ts *testsuite) TestGetReferenceDataBulkLengthMismatch() {
	ts.refData.On("GetReferenceDataBulk", mock.Anything, []string{"BTC", "ETH"}, []string{"USD"}).
		Return(nil, domain.ErrLengthMismatch)

	rec := ts.record(ts.jsonRequest(http.MethodPost, "/reference-data/bulk",
		`{"base_symbols":["BTC","ETH"],"quote_symbols":["USD"]}`, ""))
	ts.Equal(http.StatusBadRequest, rec.Code)
}

func (ts *testsuite) TestGetReferenceDataBulkZeroQuotePrice() {
	ts.refData.On("GetReferenceDataBulk", mock.Anything, []string{"BTC"}, []string{"HALTED"}).
		Return(nil, &domain.BulkPairError{
			Index:       0,
			BaseSymbol:  "BTC",
			QuoteSymbol: "HALTED",
			Err:         domain.ErrDivisionByZero,
		})

	rec := ts.record(ts.jsonRequest(http.MethodPost, "/reference-data/bulk",
		`{"base_symbols":["BTC"],"quote_symbols":["HALTED"]}`, ""))
	ts.Equal(http.StatusUnprocessableEntity, rec.Code)
	ts.Contains(rec.Body.String(), `"status":"fail"`)
}

func (ts *testsuite) TestRelayRejectsUnknownApiKey() {
	ts.relayer.On("Authenticate", mock.Anything, "not-a-relayer").Return(nil, domain.ErrNotRelayer)

	rec := ts.record(ts.jsonRequest(http.MethodPost, "/relay",
		`{"symbols":["BTC"],"prices":["23131.27"],"resolve_time":1659588229}`, "not-a-relayer"))
	ts.Equal(http.StatusUnauthorized, rec.Code)
	ts.refData.AssertNotCalled(ts.T(), "Relay")
}

func (ts *testsuite) TestRelayRejectsMissingApiKey() {
	rec := ts.record(ts.jsonRequest(http.MethodPost, "/relay",
		`{"symbols":["BTC"],"prices":["23131.27"],"resolve_time":1659588229}`, ""))
	ts.Equal(http.StatusBadRequest, rec.Code)
	ts.refData.AssertNotCalled(ts.T(), "Relay")
}

func (ts *testsuite) TestRelayWithAdminKey() {
	ts.refData.On("Relay", mock.Anything, &domain.RelayPayload{
		Symbols:     []string{"BTC"},
		Prices:      []decimal.Decimal{decimal.RequireFromString("23131.27")},
		ResolveTime: 1659588229,
		RequestId:   1234,
	}).Return(nil)

	rec := ts.record(ts.jsonRequest(http.MethodPost, "/relay",
		`{"symbols":["BTC"],"prices":["23131.27"],"resolve_time":1659588229,"request_id":1234}`, adminApiKey))
	ts.Equal(http.StatusOK, rec.Code)
	ts.relayer.AssertNotCalled(ts.T(), "Authenticate")
	ts.refData.AssertExpectations(ts.T())
}

func (ts *testsuite) TestRelayStaleResolveTime() {
	ts.relayer.On("Authenticate", mock.Anything, relayerApiKey).
		Return(&domain.Relayer{Name: "alice", ApiKey: relayerApiKey}, nil)
	ts.refData.On("Relay", mock.Anything, mock.Anything).Return(domain.ErrInvalidResolveTime)

	rec := ts.record(ts.jsonRequest(http.MethodPost, "/relay",
		`{"symbols":["BTC"],"prices":["23000"],"resolve_time":1659588229}`, relayerApiKey))
	ts.Equal(http.StatusBadRequest, rec.Code)
	ts.Contains(rec.Body.String(), `"status":"fail"`)
}

func (ts *testsuite) TestForceRelayRequiresAdminKey() {
	// a registered relayer key is not enough for the repair path
	rec := ts.record(ts.jsonRequest(http.MethodPost, "/relay/force",
		`{"symbols":["BTC"],"prices":["23000"],"resolve_time":1659588229}`, relayerApiKey))
	ts.Equal(http.StatusUnauthorized, rec.Code)
	ts.refData.AssertNotCalled(ts.T(), "ForceRelay")
	ts.relayer.AssertNotCalled(ts.T(), "Authenticate")
}

func (ts *testsuite) TestForceRelayWithAdminKey() {
	ts.refData.On("ForceRelay", mock.Anything, &domain.RelayPayload{
		Symbols:     []string{"BTC"},
		Prices:      []decimal.Decimal{decimal.RequireFromString("23000")},
		ResolveTime: 1659588229,
	}).Return(nil)

	rec := ts.record(ts.jsonRequest(http.MethodPost, "/relay/force",
		`{"symbols":["BTC"],"prices":["23000"],"resolve_time":1659588229}`, adminApiKey))
	ts.Equal(http.StatusOK, rec.Code)
	ts.refData.AssertExpectations(ts.T())
}
