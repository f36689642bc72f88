package domain

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/x-oracle/refapi/base/ctx"
)

// UnitOfAccount is the quote currency every stored price is denominated
// in. It never has a stored feed; resolution synthesizes it on the fly.
const UnitOfAccount = "USD"

// RefData is one stored price feed. Price is the 1e18-scaled integer in
// base-10 string form, which keeps full u128 precision through bson and
// json without a custom codec.
type RefData struct {
	Symbol      string `bson:"symbol" json:"symbol"`
	Price       string `bson:"price" json:"price"`
	ResolveTime int64  `bson:"resolveTime" json:"resolveTime"`
	RequestId   uint64 `bson:"requestId" json:"requestId"`
}

// PriceInt parses the stored price back into its integer form.
func (r *RefData) PriceInt() (*big.Int, error) {
	v, ok := new(big.Int).SetString(r.Price, 10)
	if !ok || v.Sign() < 0 {
		return nil, ErrInvalidNumberFormat
	}
	return v, nil
}

// ReferenceData is the resolved rate of one base/quote pair.
type ReferenceData struct {
	Rate             *big.Int `json:"rate"`
	LastUpdatedBase  int64    `json:"last_updated_base"`
	LastUpdatedQuote int64    `json:"last_updated_quote"`
}

// RelayPayload carries one batch of price updates. Prices arrive at
// display scale and are rescaled to 1e18 on ingestion. Symbols and
// Prices are positional and must have equal length.
type RelayPayload struct {
	Symbols     []string          `json:"symbols"`
	Prices      []decimal.Decimal `json:"prices"`
	ResolveTime int64             `json:"resolve_time"`
	RequestId   uint64            `json:"request_id"`
}

type RefDataRepo interface {
	// FindOne returns (nil, nil) when the symbol has no stored feed
	FindOne(ctx.Ctx, string) (*RefData, error)
	Upsert(ctx.Ctx, *RefData) error
	Remove(ctx.Ctx, string) error
}

type RefDataUsecase interface {
	GetRef(ctx.Ctx, string) (*RefData, error)
	GetReferenceData(c ctx.Ctx, baseSymbol, quoteSymbol string) (*ReferenceData, error)
	// GetReferenceDataBulk resolves positional pairs; the two slices must
	// have equal length and the result preserves request order
	GetReferenceDataBulk(c ctx.Ctx, baseSymbols, quoteSymbols []string) ([]ReferenceData, error)
	Relay(ctx.Ctx, *RelayPayload) error
	ForceRelay(ctx.Ctx, *RelayPayload) error
}
