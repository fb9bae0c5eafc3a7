package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/config"
	"fittrack/controllers"
	"fittrack/logger"
	"fittrack/middlewares"
	"fittrack/routes"
	"fittrack/services"
	"fittrack/utils"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(err)
	}
	if err := run(); err != nil {
		logger.Error("fittrack exited", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

// run owns every resource so deferred cleanup happens before the process
// exits, including on startup errors.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// .env may have set ENV.
	if err := logger.Init(cfg.Env); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		uploader services.ImageUploader
		snsAPI   services.SNSAPI
	)
	if cfg.UploadsEnabled() || cfg.PushEnabled() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return fmt.Errorf("load aws config: %w", err)
		}
		if cfg.UploadsEnabled() {
			uploader = utils.NewImageUploader(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.CloudFrontURL)
		}
		if cfg.PushEnabled() {
			snsAPI = awssns.NewFromConfig(awsCfg)
		}
		logger.Info("aws configured",
			zap.String("region", awsCfg.Region),
			zap.Bool("uploads", cfg.UploadsEnabled()),
			zap.Bool("push", cfg.PushEnabled()))
	}

	store, err := config.OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close store", zap.Error(err))
		}
	}()

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	hub := services.NewRealtimeHub()
	push := services.NewPushService(store, snsAPI, cfg.SNSPlatformARN)
	alerts := services.NewAlertService(store, hub, push)
	users := services.NewUserService(store, uploader)

	limiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.StartCleanup(10*time.Minute, ctx.Done())

	router := routes.SetupRouter(routes.Deps{
		Tokens:      tokens,
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     middlewares.NewMetrics(),
		Limiter:     limiter,
		Auth:        controllers.NewAuthController(services.NewAuthService(store, utils.NewBcryptHasher(), tokens), users),
		Users:       controllers.NewUserController(users),
		Meals:       controllers.NewMealController(services.NewMealService(store, store, alerts)),
		Exercises:   controllers.NewExerciseController(services.NewExerciseService(store)),
		Goals:       controllers.NewGoalController(services.NewGoalService(store, alerts)),
		Alerts:      controllers.NewAlertController(alerts, hub, cfg.CORSOrigins),
		Devices:     controllers.NewDeviceController(push),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
