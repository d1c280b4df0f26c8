// Command seed creates the bookstore schema and loads the demo catalog.
package main

import (
	"context"
	"log"

	"gorm.io/gorm/logger"

	"bookstore-report/internal/config"
	"bookstore-report/internal/database"
	"bookstore-report/internal/repositories"
	"bookstore-report/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	if err := database.EnsureDatabaseExists(ctx, cfg); err != nil {
		log.Fatalf("failed to ensure database exists: %v", err)
	}

	db, err := database.Connect(ctx, cfg, logger.Warn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db.Pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	catalog := repositories.NewCatalogRepository(db.Gorm)

	var summary seed.Summary
	err = catalog.Transaction(ctx, func(repo *repositories.CatalogRepository) error {
		if cfg.SeedReset {
			log.Println("SEED_RESET set, truncating catalog tables")
			if err := repo.Reset(ctx); err != nil {
				return err
			}
		}

		count, err := repo.CountPublishers(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			log.Printf("Catalog already has %d publishers, skipping seed", count)
			return nil
		}

		summary, err = seed.Load(ctx, repo, seed.Demo())
		return err
	})
	if err != nil {
		db.Close()
		log.Fatalf("failed to seed catalog: %v", err)
	}

	if summary.Publishers > 0 {
		log.Printf("Seeded %d publishers, %d books, %d shops, %d stocks, %d sales",
			summary.Publishers, summary.Books, summary.Shops, summary.Stocks, summary.Sales)
	}
}
