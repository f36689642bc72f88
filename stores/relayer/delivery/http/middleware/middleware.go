package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/domain"
)

type AuthMiddleware struct {
	relayer      domain.RelayerUsecase
	adminApiKeys []string
}

func New(relayer domain.RelayerUsecase, adminApiKeys []string) *AuthMiddleware {
	return &AuthMiddleware{
		relayer:      relayer,
		adminApiKeys: adminApiKeys,
	}
}

// RelayerAuth accepts bearer api keys of registered relayers and admins.
func (m *AuthMiddleware) RelayerAuth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateApiKey)
}

// AdminAuth accepts only the statically configured admin keys.
func (m *AuthMiddleware) AdminAuth() echo.MiddlewareFunc {
	return middleware.KeyAuth(func(key string, c echo.Context) (bool, error) {
		if m.isAdminKey(key) {
			return true, nil
		}
		return false, domain.ErrNotRelayer
	})
}

func (m *AuthMiddleware) isAdminKey(key string) bool {
	for _, admin := range m.adminApiKeys {
		if admin == key {
			return true
		}
	}
	return false
}

func (m *AuthMiddleware) validateApiKey(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)

	if m.isAdminKey(key) {
		return true, nil
	}

	if relayer, err := m.relayer.Authenticate(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("relayer.Authenticate failed")
		return false, err
	} else {
		c.Set("relayer", relayer)
		return true, nil
	}
}
