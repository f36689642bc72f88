package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/base/database/mongoclient"
	"github.com/x-oracle/refapi/base/log"
	bValidator "github.com/x-oracle/refapi/base/validator"
	mmiddleware "github.com/x-oracle/refapi/middleware"
	"github.com/x-oracle/refapi/service/cache/provider/primitive"
	"github.com/x-oracle/refapi/service/query"
	hc_delivery "github.com/x-oracle/refapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-oracle/refapi/stores/healthcheck/repository"
	hc_usecase "github.com/x-oracle/refapi/stores/healthcheck/usecase"
	refdata_delivery "github.com/x-oracle/refapi/stores/refdata/delivery/http"
	refdata_repository "github.com/x-oracle/refapi/stores/refdata/repository"
	refdata_usecase "github.com/x-oracle/refapi/stores/refdata/usecase"
	relayer_delivery "github.com/x-oracle/refapi/stores/relayer/delivery/http"
	relayer_middleware "github.com/x-oracle/refapi/stores/relayer/delivery/http/middleware"
	relayer_repository "github.com/x-oracle/refapi/stores/relayer/repository"
	relayer_usecase "github.com/x-oracle/refapi/stores/relayer/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug()
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init local cache
	mmiddleware.SetupCache()
	localCache := primitive.NewPrimitive("api", 16)

	cacheTtl := viper.GetDuration("cache.httpTtl")
	adminApiKeys := viper.GetStringSlice("admin.apiKeys")

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, localCache)
	refDataRepo := refdata_repository.NewRefDataRepo(q)
	relayerRepo := relayer_repository.NewRelayerRepo(q)

	hcUseCase := hc_usecase.New(hcRepo)
	refDataUseCase := refdata_usecase.New(refDataRepo)
	relayerUseCase := relayer_usecase.New(relayerRepo)

	authMiddleware := relayer_middleware.New(relayerUseCase, adminApiKeys)

	hc_delivery.New(e, hcUseCase)
	refdata_delivery.New(e, refDataUseCase, authMiddleware, cacheTtl)
	relayer_delivery.New(e, relayerUseCase, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
