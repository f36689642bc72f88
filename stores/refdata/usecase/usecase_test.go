package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/domain"
	"github.com/x-oracle/refapi/domain/mocks"
)

var mockCtx = ctx.Background()

const (
	mockNow        = int64(1659589497)
	btcPrice       = "23131270000000000000000" // 23131.27
	ethPrice       = "1653870000000000000000"  // 1653.87
	btcResolveTime = int64(1659588229)
	ethResolveTime = int64(1659588100)
)

type testsuite struct {
	suite.Suite

	repo *mocks.RefDataRepo
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.repo = &mocks.RefDataRepo{}
	ts.im = New(ts.repo).(*impl)
	timeNow = func() time.Time { return time.Unix(mockNow, 0) }
}

func (ts *testsuite) TearDownTest() {
	timeNow = time.Now
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) mockBtc() {
	ts.repo.On("FindOne", mockCtx, "BTC").Return(&domain.RefData{
		Symbol:      "BTC",
		Price:       btcPrice,
		ResolveTime: btcResolveTime,
		RequestId:   1234,
	}, nil)
}

func (ts *testsuite) mockEth() {
	ts.repo.On("FindOne", mockCtx, "ETH").Return(&domain.RefData{
		Symbol:      "ETH",
		Price:       ethPrice,
		ResolveTime: ethResolveTime,
		RequestId:   1235,
	}, nil)
}

func rate(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad rate literal: " + s)
	}
	return v
}

func (ts *testsuite) TestGetRef() {
	ts.mockBtc()

	refData, err := ts.im.GetRef(mockCtx, "BTC")
	ts.NoError(err)
	ts.Equal(btcPrice, refData.Price)
	ts.Equal(btcResolveTime, refData.ResolveTime)
	ts.Equal(uint64(1234), refData.RequestId)
}

func (ts *testsuite) TestGetRefUnitOfAccount() {
	// USD never touches the repo and always reads as exactly 1.0, updated now
	refData, err := ts.im.GetRef(mockCtx, "USD")
	ts.NoError(err)
	ts.Equal("1000000000000000000", refData.Price)
	ts.Equal(mockNow, refData.ResolveTime)
	ts.repo.AssertNotCalled(ts.T(), "FindOne", mockCtx, "USD")
}

func (ts *testsuite) TestGetRefUnknownSymbol() {
	ts.repo.On("FindOne", mockCtx, "DOGE").Return(nil, nil)

	_, err := ts.im.GetRef(mockCtx, "DOGE")
	ts.ErrorIs(err, domain.ErrSymbolNotFound)
	ts.ErrorContains(err, "DOGE")
}

func (ts *testsuite) TestGetReferenceDataAgainstUnitOfAccount() {
	ts.mockBtc()

	data, err := ts.im.GetReferenceData(mockCtx, "BTC", "USD")
	ts.NoError(err)
	ts.Equal(rate(btcPrice), data.Rate)
	ts.Equal(btcResolveTime, data.LastUpdatedBase)
	ts.Equal(mockNow, data.LastUpdatedQuote)
}

func (ts *testsuite) TestGetReferenceDataUnitOfAccountBase() {
	ts.mockBtc()

	data, err := ts.im.GetReferenceData(mockCtx, "USD", "BTC")
	ts.NoError(err)
	ts.Equal(rate("43231521658776"), data.Rate)
	ts.Equal(mockNow, data.LastUpdatedBase)
	ts.Equal(btcResolveTime, data.LastUpdatedQuote)
}

func (ts *testsuite) TestGetReferenceDataIdentity() {
	ts.mockBtc()

	data, err := ts.im.GetReferenceData(mockCtx, "BTC", "BTC")
	ts.NoError(err)
	ts.Equal(rate("1000000000000000000"), data.Rate)
	ts.Equal(btcResolveTime, data.LastUpdatedBase)
	ts.Equal(btcResolveTime, data.LastUpdatedQuote)
}

func (ts *testsuite) TestGetReferenceDataCrossRate() {
	ts.mockBtc()
	ts.mockEth()

	data, err := ts.im.GetReferenceData(mockCtx, "ETH", "BTC")
	ts.NoError(err)
	ts.Equal(rate("71499316725800183"), data.Rate)
	ts.Equal(ethResolveTime, data.LastUpdatedBase)
	ts.Equal(btcResolveTime, data.LastUpdatedQuote)
}

func (ts *testsuite) TestGetReferenceDataZeroQuotePrice() {
	ts.repo.On("FindOne", mockCtx, "HALTED").Return(&domain.RefData{
		Symbol:      "HALTED",
		Price:       "0",
		ResolveTime: btcResolveTime,
	}, nil)
	ts.mockBtc()

	_, err := ts.im.GetReferenceData(mockCtx, "BTC", "HALTED")
	ts.ErrorIs(err, domain.ErrDivisionByZero)
}

func (ts *testsuite) TestGetReferenceDataUnknownBase() {
	ts.repo.On("FindOne", mockCtx, "DOGE").Return(nil, nil)

	_, err := ts.im.GetReferenceData(mockCtx, "DOGE", "USD")
	ts.ErrorIs(err, domain.ErrSymbolNotFound)
}

func (ts *testsuite) TestGetReferenceDataBulk() {
	ts.mockBtc()
	ts.mockEth()

	results, err := ts.im.GetReferenceDataBulk(mockCtx, []string{"BTC", "ETH"}, []string{"USD", "BTC"})
	ts.NoError(err)
	ts.Len(results, 2)
	ts.Equal(rate(btcPrice), results[0].Rate)
	ts.Equal(mockNow, results[0].LastUpdatedQuote)
	ts.Equal(rate("71499316725800183"), results[1].Rate)
	ts.Equal(btcResolveTime, results[1].LastUpdatedQuote)
}

func (ts *testsuite) TestGetReferenceDataBulkLengthMismatch() {
	_, err := ts.im.GetReferenceDataBulk(mockCtx, []string{"BTC", "ETH"}, []string{"USD"})
	ts.ErrorIs(err, domain.ErrLengthMismatch)
	ts.repo.AssertNotCalled(ts.T(), "FindOne")
}

func (ts *testsuite) TestGetReferenceDataBulkAllOrNothing() {
	ts.mockBtc()
	ts.repo.On("FindOne", mockCtx, "DOGE").Return(nil, nil)

	results, err := ts.im.GetReferenceDataBulk(mockCtx, []string{"BTC", "DOGE"}, []string{"USD", "USD"})
	ts.Nil(results)
	ts.ErrorIs(err, domain.ErrSymbolNotFound)

	var pairErr *domain.BulkPairError
	ts.ErrorAs(err, &pairErr)
	ts.Equal(1, pairErr.Index)
	ts.Equal("DOGE", pairErr.BaseSymbol)
}

func (ts *testsuite) TestRelay() {
	ts.repo.On("FindOne", mockCtx, "BTC").Return(nil, nil)
	ts.repo.On("Upsert", mockCtx, &domain.RefData{
		Symbol:      "BTC",
		Price:       btcPrice,
		ResolveTime: btcResolveTime,
		RequestId:   1234,
	}).Return(nil)

	err := ts.im.Relay(mockCtx, &domain.RelayPayload{
		Symbols:     []string{"BTC"},
		Prices:      []decimal.Decimal{decimal.RequireFromString("23131.27")},
		ResolveTime: btcResolveTime,
		RequestId:   1234,
	})
	ts.NoError(err)
	ts.repo.AssertExpectations(ts.T())
}

func (ts *testsuite) TestRelayLengthMismatch() {
	err := ts.im.Relay(mockCtx, &domain.RelayPayload{
		Symbols: []string{"BTC", "ETH"},
		Prices:  []decimal.Decimal{decimal.RequireFromString("23131.27")},
	})
	ts.ErrorIs(err, domain.ErrLengthMismatch)
}

func (ts *testsuite) TestRelayStaleResolveTime() {
	ts.mockBtc()

	err := ts.im.Relay(mockCtx, &domain.RelayPayload{
		Symbols:     []string{"BTC"},
		Prices:      []decimal.Decimal{decimal.RequireFromString("23000")},
		ResolveTime: btcResolveTime - 100,
	})
	ts.ErrorIs(err, domain.ErrInvalidResolveTime)

	// replaying the stored resolve time is rejected as well; the feed
	// only moves strictly forward
	err = ts.im.Relay(mockCtx, &domain.RelayPayload{
		Symbols:     []string{"BTC"},
		Prices:      []decimal.Decimal{decimal.RequireFromString("23000")},
		ResolveTime: btcResolveTime,
	})
	ts.ErrorIs(err, domain.ErrInvalidResolveTime)
	ts.repo.AssertNotCalled(ts.T(), "Upsert")
}

func (ts *testsuite) TestForceRelayOverwritesStale() {
	ts.repo.On("Upsert", mockCtx, &domain.RefData{
		Symbol:      "BTC",
		Price:       "23000000000000000000000",
		ResolveTime: btcResolveTime - 100,
	}).Return(nil)

	err := ts.im.ForceRelay(mockCtx, &domain.RelayPayload{
		Symbols:     []string{"BTC"},
		Prices:      []decimal.Decimal{decimal.RequireFromString("23000")},
		ResolveTime: btcResolveTime - 100,
	})
	ts.NoError(err)
	// forced relays never read the stored feed
	ts.repo.AssertNotCalled(ts.T(), "FindOne")
	ts.repo.AssertExpectations(ts.T())
}

func (ts *testsuite) TestRelayRejectsTooPrecisePrice() {
	err := ts.im.Relay(mockCtx, &domain.RelayPayload{
		Symbols: []string{"BTC"},
		Prices:  []decimal.Decimal{decimal.RequireFromString("0.0000000000000000001")},
	})
	ts.ErrorIs(err, domain.ErrBadParamInput)
}
