package main

import (
	appcontext "github.com/SeakMengs/ClubCert/internal/app_context"
	"github.com/SeakMengs/ClubCert/internal/config"
	"github.com/SeakMengs/ClubCert/internal/env"
	"github.com/SeakMengs/ClubCert/internal/fetcher"
	filestorage "github.com/SeakMengs/ClubCert/internal/file_storage"
	"github.com/SeakMengs/ClubCert/internal/middleware"
	"github.com/SeakMengs/ClubCert/internal/route"
	"github.com/SeakMengs/ClubCert/internal/service"
	"github.com/SeakMengs/ClubCert/internal/util"
	"github.com/SeakMengs/ClubCert/pkg/badge"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV, cfg.LogFile)
	defer logger.Sync()
	logger.Debugf("Configuration: %+v \n", cfg)

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error creating minio client")
		logger.Panic(err)
	}
	storage := filestorage.NewMinioStorage(s3, cfg.Minio.BUCKET_NAME, cfg.Minio.UPLOAD_OVERWRITE, logger)

	layout, err := badge.LoadLayout(cfg.Badge.LayoutPath)
	if err != nil {
		logger.Panic(err)
	}

	badgeCfg := badge.NewDefaultConfig()
	badgeCfg.TemplatePath = cfg.Badge.TemplatePath
	badgeCfg.FontPath = cfg.Badge.FontPath
	badgeCfg.Layout = layout
	if cfg.Badge.TmpDir != "" {
		badgeCfg.TmpDir = cfg.Badge.TmpDir
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := service.NewMetrics(reg)
	if err != nil {
		logger.Panic(err)
	}

	badgeService := service.NewBadgeService(
		service.NewBadgeComposer(badge.NewComposer(badgeCfg)),
		fetcher.NewHTTPFetcher(cfg.Fetch.Timeout),
		storage,
		metrics,
		logger,
		service.BadgeServiceOptions{PresignExpiry: cfg.Minio.PRESIGN_EXPIRY},
	)

	app := appcontext.Application{
		Config:       &cfg,
		Logger:       logger,
		BadgeService: badgeService,
	}

	// Custom validation
	if err := util.RegisterBindingValidations(); err != nil {
		logger.Panic(err)
	}

	_middleware, err := middleware.NewMiddleware(&app, reg)
	if err != nil {
		logger.Panic(err)
	}

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := route.NewRouter(&app, _middleware, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	logger.Infof("Listening on 0.0.0.0:%s", cfg.Port)
	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v", err)
	}
}
