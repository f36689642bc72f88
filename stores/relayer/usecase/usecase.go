package usecase

import (
	"time"

	"github.com/google/uuid"

	bCtx "github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/domain"
)

var (
	timeNow   = time.Now
	newApiKey = uuid.NewString
)

type impl struct {
	repo domain.RelayerRepo
}

// New creates new relayer usecase object representation of RelayerUsecase interface
func New(repo domain.RelayerRepo) domain.RelayerUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Authenticate(ctx bCtx.Ctx, apiKey string) (*domain.Relayer, error) {
	relayer, err := im.repo.FindOneByApiKey(ctx, apiKey)
	if err != nil {
		ctx.WithField("err", err).Error("repo.FindOneByApiKey failed")
		return nil, err
	}
	if relayer == nil {
		return nil, domain.ErrNotRelayer
	}
	return relayer, nil
}

func (im *impl) Add(ctx bCtx.Ctx, name string) (*domain.Relayer, error) {
	existing, err := im.repo.FindOneByName(ctx, name)
	if err != nil {
		ctx.WithField("err", err).Error("repo.FindOneByName failed")
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	relayer := &domain.Relayer{
		Name:      name,
		ApiKey:    newApiKey(),
		CreatedAt: timeNow().Unix(),
	}
	if err := im.repo.Create(ctx, relayer); err != nil {
		ctx.WithField("err", err).Error("repo.Create failed")
		return nil, err
	}
	return relayer, nil
}

func (im *impl) Remove(ctx bCtx.Ctx, name string) error {
	if err := im.repo.Remove(ctx, name); err != nil {
		ctx.WithField("err", err).Error("repo.Remove failed")
		return err
	}
	return nil
}

func (im *impl) List(ctx bCtx.Ctx) ([]domain.Relayer, error) {
	relayers, err := im.repo.List(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("repo.List failed")
		return nil, err
	}
	return relayers, nil
}
