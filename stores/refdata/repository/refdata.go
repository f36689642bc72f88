package repository

import (
	bCtx "github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/base/database/mongoclient"
	"github.com/x-oracle/refapi/base/log"
	"github.com/x-oracle/refapi/domain"
	"github.com/x-oracle/refapi/service/query"
)

type refDataMongoRepo struct {
	q query.Mongo
}

func NewRefDataRepo(q query.Mongo) domain.RefDataRepo {
	return &refDataMongoRepo{
		q: q,
	}
}

func (r *refDataMongoRepo) FindOne(ctx bCtx.Ctx, symbol string) (*domain.RefData, error) {
	refData := &domain.RefData{}
	if qry, err := mongoclient.MakeBsonM(&domain.RefData{Symbol: symbol}); err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	} else if err := r.q.FindOne(ctx, domain.TableRefData, qry, refData); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, nil
	}
	return refData, nil
}

func (r *refDataMongoRepo) Upsert(ctx bCtx.Ctx, refData *domain.RefData) error {
	selector, err := mongoclient.MakeBsonM(&domain.RefData{Symbol: refData.Symbol})
	if err != nil {
		ctx.WithField("err", err).Error("failed to make bson.M")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableRefData, selector, refData); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"symbol": refData.Symbol,
		}).Error("failed to upsert")
		return err
	}
	return nil
}

func (r *refDataMongoRepo) Remove(ctx bCtx.Ctx, symbol string) error {
	selector, err := mongoclient.MakeBsonM(&domain.RefData{Symbol: symbol})
	if err != nil {
		ctx.WithField("err", err).Error("failed to make bson.M")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableRefData, selector); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	} else if err == query.ErrNotFound {
		return domain.ErrNotFound
	}
	return nil
}
