package repository

import (
	"testing"
	"time"

	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSubscriptionTest(t *testing.T) (*gorm.DB, SubscriptionRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewSubscriptionRepository(testDB)
	return testDB, repo
}

func createTestRestaurant(t *testing.T, testDB *gorm.DB, email string) *model.Restaurant {
	owner := &model.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		Name:         "Test Owner",
		Role:         model.RoleOwner,
	}
	require.NoError(t, testDB.Create(owner).Error)

	restaurant := &model.Restaurant{
		OwnerUserID: owner.ID,
		Name:        "Test Restaurant",
	}
	require.NoError(t, testDB.Create(restaurant).Error)
	return restaurant
}

func createTestPackage(t *testing.T, testDB *gorm.DB) *model.SubscriptionPackage {
	pkg := &model.SubscriptionPackage{
		Name:         "Starter",
		Description:  "30 days",
		Price:        49000,
		DurationDays: 30,
	}
	require.NoError(t, testDB.Create(pkg).Error)
	return pkg
}

func TestSubscriptionRepository_Create(t *testing.T) {
	testDB, repo := setupSubscriptionTest(t)
	defer db.CleanupTestDB(testDB)

	restaurant := createTestRestaurant(t, testDB, "owner@example.com")
	pkg := createTestPackage(t, testDB)

	now := time.Now()
	sub := &model.Subscription{
		RestaurantID: restaurant.ID,
		PackageID:    pkg.ID,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, pkg.DurationDays),
		Status:       model.SubscriptionStatusActive,
	}

	err := repo.Create(sub)
	assert.NoError(t, err)
	assert.NotZero(t, sub.ID)
}

func TestSubscriptionRepository_FindByRestaurantID(t *testing.T) {
	testDB, repo := setupSubscriptionTest(t)
	defer db.CleanupTestDB(testDB)

	restaurant := createTestRestaurant(t, testDB, "owner@example.com")
	pkg := createTestPackage(t, testDB)

	now := time.Now()
	older := &model.Subscription{
		RestaurantID: restaurant.ID,
		PackageID:    pkg.ID,
		StartDate:    now.AddDate(0, -2, 0),
		EndDate:      now.AddDate(0, -1, 0),
		Status:       model.SubscriptionStatusExpired,
	}
	require.NoError(t, repo.Create(older))

	current := &model.Subscription{
		RestaurantID: restaurant.ID,
		PackageID:    pkg.ID,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, 30),
		Status:       model.SubscriptionStatusActive,
	}
	require.NoError(t, repo.Create(current))

	subs, err := repo.FindByRestaurantID(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	// Newest end date first
	assert.Equal(t, current.ID, subs[0].ID)
	assert.Equal(t, "Starter", subs[0].Package.Name)
}

func TestSubscriptionRepository_FindActiveByRestaurantID(t *testing.T) {
	testDB, repo := setupSubscriptionTest(t)
	defer db.CleanupTestDB(testDB)

	restaurant := createTestRestaurant(t, testDB, "owner@example.com")
	pkg := createTestPackage(t, testDB)

	now := time.Now()

	// Lapsed but still marked active: the row must still come back, because
	// time validity is decided by the caller against end_date, not by status.
	stale := &model.Subscription{
		RestaurantID: restaurant.ID,
		PackageID:    pkg.ID,
		StartDate:    now.AddDate(0, -2, 0),
		EndDate:      now.AddDate(0, 0, -1),
		Status:       model.SubscriptionStatusActive,
	}
	require.NoError(t, repo.Create(stale))

	cancelled := &model.Subscription{
		RestaurantID: restaurant.ID,
		PackageID:    pkg.ID,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, 30),
		Status:       model.SubscriptionStatusCancelled,
	}
	require.NoError(t, repo.Create(cancelled))

	subs, err := repo.FindActiveByRestaurantID(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, stale.ID, subs[0].ID)

	subs, err = repo.FindActiveByRestaurantID(9999)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSubscriptionRepository_ExpireLapsed(t *testing.T) {
	testDB, repo := setupSubscriptionTest(t)
	defer db.CleanupTestDB(testDB)

	restaurant := createTestRestaurant(t, testDB, "owner@example.com")
	pkg := createTestPackage(t, testDB)

	now := time.Now()

	lapsed := &model.Subscription{
		RestaurantID: restaurant.ID,
		PackageID:    pkg.ID,
		StartDate:    now.AddDate(0, -2, 0),
		EndDate:      now.AddDate(0, 0, -1),
		Status:       model.SubscriptionStatusActive,
	}
	require.NoError(t, repo.Create(lapsed))

	valid := &model.Subscription{
		RestaurantID: restaurant.ID,
		PackageID:    pkg.ID,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, 30),
		Status:       model.SubscriptionStatusActive,
	}
	require.NoError(t, repo.Create(valid))

	rows, err := repo.ExpireLapsed(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	var reloaded model.Subscription
	require.NoError(t, testDB.First(&reloaded, lapsed.ID).Error)
	assert.Equal(t, model.SubscriptionStatusExpired, reloaded.Status)

	require.NoError(t, testDB.First(&reloaded, valid.ID).Error)
	assert.Equal(t, model.SubscriptionStatusActive, reloaded.Status)

	// Idempotent: nothing left to sweep
	rows, err = repo.ExpireLapsed(now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
