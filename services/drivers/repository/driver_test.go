package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/database"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	profileCols = []string{"id", "user_id", "license_number", "license_expiry", "background_check_status",
		"average_rating", "total_trips", "is_available", "vehicle_id", "created_at", "updated_at"}
	vehicleCols = []string{"id", "driver_id", "make", "model", "year", "color", "license_plate", "capacity",
		"vehicle_images", "is_verified", "created_at", "updated_at"}
)

func setupDriverRepoTest(t *testing.T) (*DriverRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewDriverRepo(database.NewDB(sqlx.NewDb(mockDB, "sqlmock"), 0))
	return repo, mock, func() { mockDB.Close() }
}

func profileRow(userID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(profileCols).
		AddRow("p1", userID, "LIC-1", now.AddDate(2, 0, 0), "pending", 0.0, 0, false, nil, now, now)
}

func TestCreateProfile(t *testing.T) {
	repo, mock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO driver_profiles")).
		WithArgs(sqlmock.AnyArg(), "uid-1", "LIC-1", expiry, models.BackgroundCheckPending).
		WillReturnRows(profileRow("uid-1"))

	profile, err := repo.CreateProfile(context.Background(), &models.DriverProfile{
		UserID:        "uid-1",
		LicenseNumber: "LIC-1",
		LicenseExpiry: expiry,
	})

	require.NoError(t, err)
	assert.Equal(t, "uid-1", profile.UserID)
	assert.Equal(t, models.BackgroundCheckPending, profile.BackgroundCheckStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfile_Conflict(t *testing.T) {
	repo, mock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO driver_profiles")).
		WillReturnRows(sqlmock.NewRows(profileCols))

	_, err := repo.CreateProfile(context.Background(), &models.DriverProfile{UserID: "uid-1", LicenseNumber: "LIC-1"})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGetProfileByUserID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM driver_profiles WHERE user_id = \\$1").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(profileCols))

	_, err := repo.GetProfileByUserID(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSetActiveVehicle_ForeignVehicle(t *testing.T) {
	repo, mock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE driver_profiles SET vehicle_id = $2")).
		WithArgs("uid-1", "v-other").
		WillReturnRows(sqlmock.NewRows(profileCols))

	_, err := repo.SetActiveVehicle(context.Background(), "uid-1", "v-other")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVehicle_ImagesRoundTrip(t *testing.T) {
	repo, mock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	images := []byte(`["a.jpg","b.jpg"]`)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO vehicles")).
		WithArgs(sqlmock.AnyArg(), "uid-1", "Toyota", "Avanza", 2021, "silver", "B 1234 XY", 6, images).
		WillReturnRows(sqlmock.NewRows(vehicleCols).
			AddRow("v1", "uid-1", "Toyota", "Avanza", 2021, "silver", "B 1234 XY", 6, images, false, now, now))
	mock.ExpectQuery("^SELECT (.+) FROM vehicles WHERE id = \\$1").
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows(vehicleCols).
			AddRow("v1", "uid-1", "Toyota", "Avanza", 2021, "silver", "B 1234 XY", 6, images, false, now, now))

	created, err := repo.CreateVehicle(context.Background(), &models.Vehicle{
		DriverID:     "uid-1",
		Make:         "Toyota",
		Model:        "Avanza",
		Year:         2021,
		Color:        "silver",
		LicensePlate: "B 1234 XY",
		Capacity:     6,
		Images:       models.StringList{"a.jpg", "b.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"a.jpg", "b.jpg"}, created.Images)

	read, err := repo.GetVehicle(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"a.jpg", "b.jpg"}, read.Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVehicle_DuplicatePlate(t *testing.T) {
	repo, mock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO vehicles")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "vehicles_license_plate_key"})

	_, err := repo.CreateVehicle(context.Background(), &models.Vehicle{DriverID: "uid-1", LicensePlate: "B 1234 XY"})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestListVehicles_Empty(t *testing.T) {
	repo, mock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM vehicles WHERE driver_id = \\$1").
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows(vehicleCols))

	vehicles, err := repo.ListVehicles(context.Background(), "uid-1")

	require.NoError(t, err)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)
}

func TestDeleteVehicle_TrueThenFalse(t *testing.T) {
	repo, mock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	del := regexp.QuoteMeta("DELETE FROM vehicles WHERE id = $1 AND driver_id = $2")
	mock.ExpectExec(del).WithArgs("v1", "uid-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(del).WithArgs("v1", "uid-1").WillReturnResult(sqlmock.NewResult(0, 0))

	first, err := repo.DeleteVehicle(context.Background(), "v1", "uid-1")
	require.NoError(t, err)
	second, err := repo.DeleteVehicle(context.Background(), "v1", "uid-1")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVehicle_NonOwnerMatchesNothing(t *testing.T) {
	repo, mock, cleanup := setupDriverRepoTest(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vehicles")).
		WithArgs("v1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteVehicle(context.Background(), "v1", "intruder")

	require.NoError(t, err)
	assert.False(t, deleted)
}
