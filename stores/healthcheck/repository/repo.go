package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/base/database/mongoclient"
	hcdomain "github.com/x-oracle/refapi/domain/healthcheck"
	"github.com/x-oracle/refapi/domain/keys"
	"github.com/x-oracle/refapi/service/cache/provider"
)

type impl struct {
	mgoClient *mongoclient.Client
	cache     provider.Provider
}

// New creates new healthCheck repo object representation of HealthCheckRepo interface
func New(
	mgoClient *mongoclient.Client,
	cache provider.Provider,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient: mgoClient,
		cache:     cache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}

	if err := im.cache.Set(ctx, keys.CacheKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	return nil
}
