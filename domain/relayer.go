package domain

import (
	"github.com/x-oracle/refapi/base/ctx"
)

// Relayer is an account allowed to push price updates.
type Relayer struct {
	Name      string `bson:"name" json:"name"`
	ApiKey    string `bson:"apiKey" json:"-"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}

type RelayerRepo interface {
	// FindOneByApiKey returns (nil, nil) when no relayer holds the key
	FindOneByApiKey(ctx.Ctx, string) (*Relayer, error)
	// FindOneByName returns (nil, nil) when the name is unknown
	FindOneByName(ctx.Ctx, string) (*Relayer, error)
	List(ctx.Ctx) ([]Relayer, error)
	Create(ctx.Ctx, *Relayer) error
	Remove(ctx.Ctx, string) error
}

type RelayerUsecase interface {
	// Authenticate resolves an api key to a relayer, ErrNotRelayer otherwise
	Authenticate(ctx.Ctx, string) (*Relayer, error)
	// Add registers a relayer and returns it with a freshly issued api key
	Add(ctx.Ctx, string) (*Relayer, error)
	Remove(ctx.Ctx, string) error
	List(ctx.Ctx) ([]Relayer, error)
}
