package service

import (
	"sync"
	"testing"
	"time"

	"github.com/platewise/platewise-backend/internal/app/model"
	"github.com/platewise/platewise-backend/internal/app/repository"
	"github.com/platewise/platewise-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRegistrationServiceTest(t *testing.T) (RegistrationService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	registrationRepo := repository.NewRegistrationRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	svc := NewRegistrationService(registrationRepo, userRepo, testDB)

	return svc, testDB
}

func createApplicant(t *testing.T, testDB *gorm.DB, email string) *model.User {
	user := &model.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		Name:         "Test Applicant",
		Role:         model.RoleStaff,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func createAdmin(t *testing.T, testDB *gorm.DB) *model.User {
	admin := &model.User{
		Email:        "admin@example.com",
		PasswordHash: "hashedpassword",
		Name:         "Admin",
		Role:         model.RoleAdmin,
	}
	require.NoError(t, testDB.Create(admin).Error)
	return admin
}

func TestRegistrationService_Submit(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	applicant := createApplicant(t, testDB, "applicant@example.com")

	req, err := svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Golden Spoon", "https://cdn.example.com/licenses/abc.pdf")
	require.NoError(t, err)
	require.NotNil(t, req)

	assert.NotZero(t, req.ID)
	assert.Equal(t, model.RegistrationStatusPending, req.Status)
	assert.Equal(t, applicant.ID, req.UserID)
	assert.Nil(t, req.ReviewedAt)
	assert.Nil(t, req.ReviewedBy)

	// Submitting does not touch the applicant's role
	var user model.User
	require.NoError(t, testDB.First(&user, applicant.ID).Error)
	assert.Equal(t, model.RoleStaff, user.Role)
	assert.Nil(t, user.RestaurantID)
}

func TestRegistrationService_Approve(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	applicant := createApplicant(t, testDB, "applicant@example.com")
	admin := createAdmin(t, testDB)

	req, err := svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Golden Spoon", "")
	require.NoError(t, err)

	restaurant, err := svc.Approve(req.ID, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, restaurant)

	// Restaurant is provisioned for the applicant
	assert.NotZero(t, restaurant.ID)
	assert.Equal(t, applicant.ID, restaurant.OwnerUserID)
	assert.Equal(t, "Golden Spoon", restaurant.Name)

	// Request is resolved
	var resolved model.RegistrationRequest
	require.NoError(t, testDB.First(&resolved, req.ID).Error)
	assert.Equal(t, model.RegistrationStatusApproved, resolved.Status)
	require.NotNil(t, resolved.ReviewedAt)
	require.NotNil(t, resolved.ReviewedBy)
	assert.Equal(t, admin.ID, *resolved.ReviewedBy)

	// Applicant is elevated and linked to the new restaurant
	var user model.User
	require.NoError(t, testDB.First(&user, applicant.ID).Error)
	assert.Equal(t, model.RoleOwner, user.Role)
	require.NotNil(t, user.RestaurantID)
	assert.Equal(t, restaurant.ID, *user.RestaurantID)
}

func TestRegistrationService_Approve_NotFound(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	admin := createAdmin(t, testDB)

	restaurant, err := svc.Approve(9999, admin.ID)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.Nil(t, restaurant)
}

func TestRegistrationService_Approve_AlreadyResolved(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	applicant := createApplicant(t, testDB, "applicant@example.com")
	admin := createAdmin(t, testDB)

	req, err := svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Golden Spoon", "")
	require.NoError(t, err)

	require.NoError(t, svc.Reject(req.ID, admin.ID, "License document unreadable", ""))

	// A rejected request cannot be approved afterwards
	restaurant, err := svc.Approve(req.ID, admin.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, restaurant)

	// Nothing was provisioned and the applicant keeps the staff role
	var count int64
	require.NoError(t, testDB.Model(&model.Restaurant{}).Count(&count).Error)
	assert.Zero(t, count)

	var user model.User
	require.NoError(t, testDB.First(&user, applicant.ID).Error)
	assert.Equal(t, model.RoleStaff, user.Role)
}

func TestRegistrationService_Approve_Concurrent(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	applicant := createApplicant(t, testDB, "applicant@example.com")
	admin := createAdmin(t, testDB)

	req, err := svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Golden Spoon", "")
	require.NoError(t, err)

	const workers = 5
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Approve(req.ID, admin.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case err == ErrInvalidTransition:
			conflicted++
		default:
			t.Fatalf("unexpected approval error: %v", err)
		}
	}

	// Exactly one approval wins; the rest observe the already-resolved request
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)

	// Exactly one restaurant exists despite the race
	var count int64
	require.NoError(t, testDB.Model(&model.Restaurant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegistrationService_Reject(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	applicant := createApplicant(t, testDB, "applicant@example.com")
	admin := createAdmin(t, testDB)

	req, err := svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Golden Spoon", "")
	require.NoError(t, err)

	err = svc.Reject(req.ID, admin.ID, "License document unreadable", `{"missing":["license_doc"]}`)
	require.NoError(t, err)

	var resolved model.RegistrationRequest
	require.NoError(t, testDB.First(&resolved, req.ID).Error)
	assert.Equal(t, model.RegistrationStatusRejected, resolved.Status)
	assert.Equal(t, "License document unreadable", resolved.AdminNote)
	assert.Equal(t, `{"missing":["license_doc"]}`, resolved.ResubmitData)
	require.NotNil(t, resolved.ReviewedBy)
	assert.Equal(t, admin.ID, *resolved.ReviewedBy)

	// Rejection provisions nothing
	var count int64
	require.NoError(t, testDB.Model(&model.Restaurant{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegistrationService_Reject_AlreadyResolved(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	applicant := createApplicant(t, testDB, "applicant@example.com")
	admin := createAdmin(t, testDB)

	req, err := svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Golden Spoon", "")
	require.NoError(t, err)

	_, err = svc.Approve(req.ID, admin.ID)
	require.NoError(t, err)

	err = svc.Reject(req.ID, admin.ID, "changed my mind", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var resolved model.RegistrationRequest
	require.NoError(t, testDB.First(&resolved, req.ID).Error)
	assert.Equal(t, model.RegistrationStatusApproved, resolved.Status)
}

func TestRegistrationService_GetStatus(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	applicant := createApplicant(t, testDB, "applicant@example.com")
	admin := createAdmin(t, testDB)

	// No submission yet
	info, err := svc.GetStatus(applicant.ID)
	require.NoError(t, err)
	assert.False(t, info.HasRequest)
	assert.Empty(t, info.Status)

	req, err := svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Golden Spoon", "")
	require.NoError(t, err)

	info, err = svc.GetStatus(applicant.ID)
	require.NoError(t, err)
	assert.True(t, info.HasRequest)
	assert.Equal(t, model.RegistrationStatusPending, info.Status)
	assert.Equal(t, "Golden Spoon", info.RestaurantName)
	assert.Nil(t, info.ReviewedAt)

	require.NoError(t, svc.Reject(req.ID, admin.ID, "License document unreadable", `{"internal":"payload"}`))

	info, err = svc.GetStatus(applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationStatusRejected, info.Status)
	assert.Equal(t, "License document unreadable", info.AdminNote)
	assert.NotNil(t, info.ReviewedAt)
}

func TestRegistrationService_GetStatus_LatestWins(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	applicant := createApplicant(t, testDB, "applicant@example.com")
	admin := createAdmin(t, testDB)

	first, err := svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "First Attempt", "")
	require.NoError(t, err)
	require.NoError(t, svc.Reject(first.ID, admin.ID, "try again", ""))

	// Backdate the first submission so ordering is unambiguous
	require.NoError(t, testDB.Model(&model.RegistrationRequest{}).
		Where("id = ?", first.ID).
		Update("submitted_at", time.Now().Add(-time.Hour)).Error)

	_, err = svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Second Attempt", "")
	require.NoError(t, err)

	info, err := svc.GetStatus(applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationStatusPending, info.Status)
	assert.Equal(t, "Second Attempt", info.RestaurantName)
	assert.Empty(t, info.AdminNote)
}

func TestRegistrationService_ListByStatus(t *testing.T) {
	svc, testDB := setupRegistrationServiceTest(t)
	defer db.CleanupTestDB(testDB)

	applicant := createApplicant(t, testDB, "applicant@example.com")
	admin := createAdmin(t, testDB)

	first, err := svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Resolved One", "")
	require.NoError(t, err)
	require.NoError(t, svc.Reject(first.ID, admin.ID, "no", ""))

	_, err = svc.Submit(applicant.ID, "Kim Owner", "010-1234-5678", "Waiting One", "")
	require.NoError(t, err)

	// Empty status defaults to the pending queue
	pending, err := svc.ListByStatus("")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Waiting One", pending[0].RestaurantName)

	rejected, err := svc.ListByStatus(model.RegistrationStatusRejected)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, "Resolved One", rejected[0].RestaurantName)
}
