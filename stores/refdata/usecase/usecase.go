package usecase

import (
	"math/big"
	"time"

	bCtx "github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/base/fixedpoint"
	"github.com/x-oracle/refapi/base/log"
	"github.com/x-oracle/refapi/domain"
)

var timeNow = time.Now

type impl struct {
	repo domain.RefDataRepo
}

// New creates new refData usecase object representation of RefDataUsecase interface
func New(repo domain.RefDataRepo) domain.RefDataUsecase {
	return &impl{
		repo: repo,
	}
}

// symbolKind is decided once per lookup so the unit of account special
// case lives in exactly one place.
type symbolKind int

const (
	kindOrdinary symbolKind = iota
	kindUnitOfAccount
)

func classify(symbol string) symbolKind {
	if symbol == domain.UnitOfAccount {
		return kindUnitOfAccount
	}
	return kindOrdinary
}

// resolved is one symbol's price at resolution time.
type resolved struct {
	price       *big.Int
	lastUpdated int64
}

// resolve looks a symbol up for rate computation. The unit of account
// never has a stored feed; it resolves to a price of exactly 1.0 with
// the resolution instant as its update time.
func (im *impl) resolve(ctx bCtx.Ctx, symbol string, now int64) (*resolved, error) {
	if classify(symbol) == kindUnitOfAccount {
		return &resolved{
			price:       fixedpoint.Scale(),
			lastUpdated: now,
		}, nil
	}

	refData, err := im.repo.FindOne(ctx, symbol)
	if err != nil {
		ctx.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if refData == nil {
		return nil, &domain.SymbolNotFoundError{Symbol: symbol}
	}

	price, err := refData.PriceInt()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"symbol": symbol,
			"price":  refData.Price,
		}).Error("stored price is not a valid integer")
		return nil, err
	}

	return &resolved{
		price:       price,
		lastUpdated: refData.ResolveTime,
	}, nil
}

func (im *impl) GetRef(ctx bCtx.Ctx, symbol string) (*domain.RefData, error) {
	if classify(symbol) == kindUnitOfAccount {
		return &domain.RefData{
			Symbol:      domain.UnitOfAccount,
			Price:       fixedpoint.Scale().String(),
			ResolveTime: timeNow().Unix(),
		}, nil
	}

	refData, err := im.repo.FindOne(ctx, symbol)
	if err != nil {
		ctx.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if refData == nil {
		return nil, &domain.SymbolNotFoundError{Symbol: symbol}
	}
	return refData, nil
}

func (im *impl) getReferenceDataAt(ctx bCtx.Ctx, baseSymbol, quoteSymbol string, now int64) (*domain.ReferenceData, error) {
	base, err := im.resolve(ctx, baseSymbol, now)
	if err != nil {
		return nil, err
	}
	quote, err := im.resolve(ctx, quoteSymbol, now)
	if err != nil {
		return nil, err
	}

	rate, err := fixedpoint.Rate(base.price, quote.price)
	if err != nil {
		return nil, err
	}

	return &domain.ReferenceData{
		Rate:             rate,
		LastUpdatedBase:  base.lastUpdated,
		LastUpdatedQuote: quote.lastUpdated,
	}, nil
}

func (im *impl) GetReferenceData(ctx bCtx.Ctx, baseSymbol, quoteSymbol string) (*domain.ReferenceData, error) {
	return im.getReferenceDataAt(ctx, baseSymbol, quoteSymbol, timeNow().Unix())
}

func (im *impl) GetReferenceDataBulk(ctx bCtx.Ctx, baseSymbols, quoteSymbols []string) ([]domain.ReferenceData, error) {
	if len(baseSymbols) != len(quoteSymbols) {
		return nil, domain.ErrLengthMismatch
	}

	// one clock reading for the whole batch, so every synthesized unit
	// of account entry carries the same timestamp
	now := timeNow().Unix()

	results := make([]domain.ReferenceData, 0, len(baseSymbols))
	for i := range baseSymbols {
		data, err := im.getReferenceDataAt(ctx, baseSymbols[i], quoteSymbols[i], now)
		if err != nil {
			return nil, &domain.BulkPairError{
				Index:       i,
				BaseSymbol:  baseSymbols[i],
				QuoteSymbol: quoteSymbols[i],
				Err:         err,
			}
		}
		results = append(results, *data)
	}
	return results, nil
}

// relay stores one batch of price updates. Regular relays require a
// strictly newer resolve time per symbol; forced relays overwrite
// unconditionally.
func (im *impl) relay(ctx bCtx.Ctx, payload *domain.RelayPayload, force bool) error {
	if len(payload.Symbols) != len(payload.Prices) {
		return domain.ErrLengthMismatch
	}

	for i, symbol := range payload.Symbols {
		price, err := fixedpoint.FromDecimal(payload.Prices[i])
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"symbol": symbol,
				"price":  payload.Prices[i],
			}).Warn("rejecting relayed price")
			return err
		}

		if !force {
			existing, err := im.repo.FindOne(ctx, symbol)
			if err != nil {
				ctx.WithField("err", err).Error("repo.FindOne failed")
				return err
			}
			if existing != nil && payload.ResolveTime <= existing.ResolveTime {
				ctx.WithFields(log.Fields{
					"symbol":      symbol,
					"resolveTime": payload.ResolveTime,
					"stored":      existing.ResolveTime,
				}).Warn("stale relay")
				return domain.ErrInvalidResolveTime
			}
		}

		refData := &domain.RefData{
			Symbol:      symbol,
			Price:       price.String(),
			ResolveTime: payload.ResolveTime,
			RequestId:   payload.RequestId,
		}
		if err := im.repo.Upsert(ctx, refData); err != nil {
			ctx.WithField("err", err).Error("repo.Upsert failed")
			return err
		}
	}
	return nil
}

func (im *impl) Relay(ctx bCtx.Ctx, payload *domain.RelayPayload) error {
	return im.relay(ctx, payload, false)
}

func (im *impl) ForceRelay(ctx bCtx.Ctx, payload *domain.RelayPayload) error {
	return im.relay(ctx, payload, true)
}
