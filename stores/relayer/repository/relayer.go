package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/base/database/mongoclient"
	"github.com/x-oracle/refapi/base/log"
	"github.com/x-oracle/refapi/domain"
	"github.com/x-oracle/refapi/service/query"
)

type relayerMongoRepo struct {
	q query.Mongo
}

func NewRelayerRepo(q query.Mongo) domain.RelayerRepo {
	return &relayerMongoRepo{
		q: q,
	}
}

func (r *relayerMongoRepo) findOne(ctx bCtx.Ctx, selector *domain.Relayer) (*domain.Relayer, error) {
	relayer := &domain.Relayer{}
	if qry, err := mongoclient.MakeBsonM(selector); err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	} else if err := r.q.FindOne(ctx, domain.TableRelayers, qry, relayer); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, nil
	}
	return relayer, nil
}

func (r *relayerMongoRepo) FindOneByApiKey(ctx bCtx.Ctx, apiKey string) (*domain.Relayer, error) {
	return r.findOne(ctx, &domain.Relayer{ApiKey: apiKey})
}

func (r *relayerMongoRepo) FindOneByName(ctx bCtx.Ctx, name string) (*domain.Relayer, error) {
	return r.findOne(ctx, &domain.Relayer{Name: name})
}

func (r *relayerMongoRepo) List(ctx bCtx.Ctx) ([]domain.Relayer, error) {
	relayers := []domain.Relayer{}
	if err := r.q.Search(ctx, domain.TableRelayers, 0, 0, "name", bson.M{}, &relayers); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return relayers, nil
}

func (r *relayerMongoRepo) Create(ctx bCtx.Ctx, relayer *domain.Relayer) error {
	if err := r.q.Insert(ctx, domain.TableRelayers, relayer); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": relayer.Name,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *relayerMongoRepo) Remove(ctx bCtx.Ctx, name string) error {
	selector, err := mongoclient.MakeBsonM(&domain.Relayer{Name: name})
	if err != nil {
		ctx.WithField("err", err).Error("failed to make bson.M")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableRelayers, selector); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	} else if err == query.ErrNotFound {
		return domain.ErrNotFound
	}
	return nil
}
