package main

import (
	"log"

	"go.uber.org/zap"

	"portfolio/adapters/filestore"
	httpadapter "portfolio/adapters/http"
	"portfolio/adapters/mail"
	"portfolio/adapters/persistence"
	"portfolio/internal/application/service"
	bloguc "portfolio/internal/application/usecase/blog"
	contactuc "portfolio/internal/application/usecase/contact"
	experienceuc "portfolio/internal/application/usecase/experience"
	profileuc "portfolio/internal/application/usecase/profile"
	projectuc "portfolio/internal/application/usecase/project"
	seeduc "portfolio/internal/application/usecase/seed"
	uploaduc "portfolio/internal/application/usecase/upload"
	"portfolio/internal/config"
	"portfolio/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(string(cfg.App.Env))

	if err := persistence.Migrate("file://migrations", cfg.DB.DSN, appLogger); err != nil {
		appLogger.Fatal("cannot migrate database", err)
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	blogRepo := persistence.NewPostgresBlogRepo(dbPool, appLogger)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)

	// Services. Images go through the configured driver; the CV always goes
	// through the local driver so the fixed-name alias stays a stable link.
	localStore := filestore.NewLocalStore(cfg.Storage.PublicDir)
	var imageStore service.FileStore = localStore
	if cfg.Storage.Driver == "cloudinary" {
		imageStore, err = filestore.NewCloudinaryStore(cfg)
		if err != nil {
			appLogger.Fatal("cannot init cloudinary", err)
		}
	}

	var mailer service.Mailer
	if cfg.SMTP.Host != "" {
		mailer, err = mail.NewSMTPMailer(cfg)
		if err != nil {
			appLogger.Warn("smtp unavailable, contact emails disabled", zap.Error(err))
			mailer = nil
		}
	} else {
		appLogger.Warn("smtp not configured, contact emails disabled")
	}

	// Use cases
	profileUseCase := profileuc.NewProfileUseCase(profileRepo, appLogger)
	projectUseCase := projectuc.NewProjectUseCase(projectRepo, imageStore, appLogger)
	experienceUseCase := experienceuc.NewExperienceUseCase(experienceRepo, imageStore, appLogger)
	blogUseCase := bloguc.NewBlogUseCase(blogRepo, imageStore, appLogger)
	contactUseCase := contactuc.NewContactUseCase(contactRepo, mailer, appLogger)
	uploadUseCase := uploaduc.NewUploadUseCase(localStore, appLogger)
	seedUseCase := seeduc.NewSeedUseCase(projectRepo, experienceRepo, profileRepo, appLogger)

	// HTTP
	handlers := httpadapter.Handlers{
		Profile:    httpadapter.NewProfileHandler(profileUseCase, appLogger),
		Project:    httpadapter.NewProjectHandler(projectUseCase, appLogger),
		Experience: httpadapter.NewExperienceHandler(experienceUseCase, appLogger),
		Blog:       httpadapter.NewBlogHandler(blogUseCase, appLogger),
		Contact:    httpadapter.NewContactHandler(contactUseCase, appLogger),
		Upload:     httpadapter.NewUploadHandler(uploadUseCase, profileUseCase, appLogger),
		Seed:       httpadapter.NewSeedHandler(seedUseCase, cfg.App.Env, appLogger),
	}
	router := httpadapter.NewRouter(cfg, appLogger, handlers)

	appLogger.Info("server starting", zap.String("port", cfg.App.Port), zap.String("env", string(cfg.App.Env)))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
