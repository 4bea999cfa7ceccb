package db

import (
	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Restaurant{},
		&model.RegistrationRequest{},
		&model.SubscriptionPackage{},
		&model.Subscription{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database (optional)
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	if err := seedSubscriptionPackages(); err != nil {
		logger.Error("Failed to seed subscription packages", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedSubscriptionPackages creates the default plans if none exist yet.
// Larger catalogs are imported through cmd/seed from an XLSX sheet.
func seedSubscriptionPackages() error {
	var count int64
	if err := DB.Model(&model.SubscriptionPackage{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Subscription packages already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	packages := []model.SubscriptionPackage{
		{Name: "Starter", Description: "Single location, core dashboard", Price: 29, DurationDays: 30},
		{Name: "Standard", Description: "Single location, full reporting", Price: 59, DurationDays: 30},
		{Name: "Annual", Description: "Standard plan billed yearly", Price: 590, DurationDays: 365},
	}

	for _, pkg := range packages {
		if err := DB.Create(&pkg).Error; err != nil {
			logger.Error("Failed to create subscription package", err, map[string]interface{}{
				"package": pkg.Name,
			})
			return err
		}
	}

	logger.Info("Subscription packages seeded successfully", map[string]interface{}{
		"total_packages": len(packages),
	})
	return nil
}
