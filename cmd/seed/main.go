package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/platewise/platewise-backend/config"
	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/internal/app/repository"
	"github.com/platewise/platewise-backend/internal/db"
	"github.com/platewise/platewise-backend/pkg/util"
	"github.com/xuri/excelize/v2"
)

// Imports subscription packages from an XLSX price sheet and bootstraps the
// first admin account. Expected columns: name, description, price, duration_days.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	packageRepo := repository.NewPackageRepository(db.GetDB())
	userRepo := repository.NewUserRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	packages, err := readPackagesFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total packages to import: %d\n", len(packages))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported := 0
	for i := range packages {
		if err := packageRepo.Create(&packages[i]); err != nil {
			fmt.Printf("  Skipped %q: %v\n", packages[i].Name, err)
			continue
		}
		imported++
	}

	fmt.Printf("Import completed: %d of %d packages\n", imported, len(packages))

	if err := ensureAdminAccount(userRepo); err != nil {
		log.Fatal("Failed to bootstrap admin account:", err)
	}
}

func readPackagesFromXLSX(filePath string) ([]model.SubscriptionPackage, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var packages []model.SubscriptionPackage
	seen := make(map[string]bool)
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 4 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[1])
		priceStr := strings.TrimSpace(row[2])
		durationStr := strings.TrimSpace(row[3])

		if name == "" {
			skippedCount++
			continue
		}

		price, errPrice := strconv.ParseFloat(priceStr, 64)
		durationDays, errDuration := strconv.Atoi(durationStr)
		if errPrice != nil || errDuration != nil || price < 0 || durationDays <= 0 {
			skippedCount++
			continue
		}

		if seen[name] {
			skippedCount++
			continue
		}
		seen[name] = true

		packages = append(packages, model.SubscriptionPackage{
			Name:         name,
			Description:  description,
			Price:        price,
			DurationDays: durationDays,
		})
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid packages: %d\n", len(packages))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return packages, nil
}

// ensureAdminAccount creates the review-queue admin from ADMIN_EMAIL and
// ADMIN_PASSWORD if no account with that email exists yet.
func ensureAdminAccount(userRepo repository.UserRepository) error {
	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		fmt.Printf("Admin account %s already exists, skipping\n", email)
		return nil
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	fmt.Printf("Admin account %s created\n", email)
	return nil
}
