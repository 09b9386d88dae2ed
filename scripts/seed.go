package main

import (
	"context"
	"fmt"
	"log"

	"portfolio/adapters/persistence"
	seeduc "portfolio/internal/application/usecase/seed"
	"portfolio/internal/config"
	"portfolio/pkg/logger"
)

// Operator-side variant of the seed endpoint: wipes and reseeds projects,
// experiences and the profile directly against the configured database.
func main() {
	fmt.Println("seeding database with sample data...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(string(cfg.App.Env))

	if err := persistence.Migrate("file://migrations", cfg.DB.DSN, appLogger); err != nil {
		log.Fatalf("cannot migrate database: %v", err)
	}

	pool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	uc := seeduc.NewSeedUseCase(
		persistence.NewPostgresProjectRepo(pool, appLogger),
		persistence.NewPostgresExperienceRepo(pool, appLogger),
		persistence.NewPostgresProfileRepo(pool, appLogger),
		appLogger,
	)

	summary, err := uc.Run(context.Background())
	if err != nil {
		log.Fatalf("cannot seed database: %v", err)
	}
	fmt.Printf("seeded %d projects, %d experiences, %d profile\n",
		summary.Projects, summary.Experiences, summary.Profile)
}
