package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/database"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewCols = []string{"id", "booking_id", "reviewer_id", "reviewee_id", "rating", "comment", "created_at"}

func setupReviewRepoTest(t *testing.T) (*ReviewRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewReviewRepo(database.NewDB(sqlx.NewDb(mockDB, "sqlmock"), 0))
	return repo, mock, func() { mockDB.Close() }
}

func testReview() *models.Review {
	return &models.Review{BookingID: "b1", ReviewerID: "rider-1", RevieweeID: "driver-1", Rating: 4}
}

func TestCreateReview_DriverRatingRecomputed(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM driver_profiles WHERE user_id = $1 FOR UPDATE")).
		WithArgs("driver-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
		WithArgs(sqlmock.AnyArg(), "b1", "rider-1", "driver-1", 4, nil).
		WillReturnRows(sqlmock.NewRows(reviewCols).AddRow("r1", "b1", "rider-1", "driver-1", 4, nil, time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("SET average_rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE reviewee_id = $1)")).
		WithArgs("driver-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	review, err := repo.CreateReview(context.Background(), testReview(), true)

	require.NoError(t, err)
	assert.Equal(t, "r1", review.ID)
	assert.Equal(t, 4, review.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview_RiderRevieweeSkipsRating(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
		WillReturnRows(sqlmock.NewRows(reviewCols).AddRow("r2", "b1", "driver-1", "rider-1", 5, nil, time.Now()))
	mock.ExpectCommit()

	review := &models.Review{BookingID: "b1", ReviewerID: "driver-1", RevieweeID: "rider-1", Rating: 5}
	created, err := repo.CreateReview(context.Background(), review, false)

	require.NoError(t, err)
	assert.Equal(t, "rider-1", created.RevieweeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview_Duplicate(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (booking_id, reviewer_id) DO NOTHING")).
		WillReturnRows(sqlmock.NewRows(reviewCols))
	mock.ExpectRollback()

	_, err := repo.CreateReview(context.Background(), testReview(), true)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview_MissingDriverProfile(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.CreateReview(context.Background(), testReview(), true)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReviewsForUser(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	comment := "smooth ride"
	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews WHERE reviewee_id = $1 ORDER BY created_at DESC LIMIT $2")).
		WithArgs("driver-1", 20).
		WillReturnRows(sqlmock.NewRows(reviewCols).
			AddRow("r1", "b1", "rider-1", "driver-1", 5, comment, time.Now()).
			AddRow("r2", "b2", "rider-2", "driver-1", 3, nil, time.Now()))

	list, err := repo.ListReviewsForUser(context.Background(), "driver-1", 20)

	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].Comment)
	assert.Equal(t, comment, *list[0].Comment)
	assert.Nil(t, list[1].Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ratingStore records inserted ratings and applies the aggregate update
// when the UPDATE statement is matched.
type ratingStore struct {
	mu      sync.Mutex
	ratings []int64
	average float64
	updates int
}

type insertedRating struct{ store *ratingStore }

func (a insertedRating) Match(v driver.Value) bool {
	rating, ok := v.(int64)
	if !ok {
		return false
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	a.store.ratings = append(a.store.ratings, rating)
	return true
}

type recomputedAverage struct{ store *ratingStore }

func (a recomputedAverage) Match(v driver.Value) bool {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	var sum int64
	for _, r := range a.store.ratings {
		sum += r
	}
	a.store.average = float64(sum) / float64(len(a.store.ratings))
	a.store.updates++
	return v == "driver-1"
}

func expectDriverReview(mock sqlmock.Sqlmock, store *ratingStore) {
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM driver_profiles WHERE user_id = $1 FOR UPDATE")).
		WithArgs("driver-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "driver-1", insertedRating{store}, nil).
		WillReturnRows(sqlmock.NewRows(reviewCols).AddRow("r", "b", "rider", "driver-1", 1, nil, time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("SET average_rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE reviewee_id = $1)")).
		WithArgs(recomputedAverage{store}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestCreateReview_AverageIsMeanOfAllRatings(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	ratings := []int{5, 3, 4, 1, 5, 2}
	store := &ratingStore{}
	for range ratings {
		expectDriverReview(mock, store)
	}

	for i, rating := range ratings {
		review := &models.Review{BookingID: "b", ReviewerID: "rider", RevieweeID: "driver-1", Rating: rating}
		_, err := repo.CreateReview(context.Background(), review, true)
		require.NoError(t, err, "review %d", i)
	}

	assert.InDelta(t, 20.0/6.0, store.average, 1e-9)
	assert.Equal(t, len(ratings), store.updates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview_ConcurrentReviewsKeepEveryRating(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	// one connection serializes the transactions like the profile row lock
	mockDB.SetMaxOpenConns(1)
	repo := NewReviewRepo(database.NewDB(sqlx.NewDb(mockDB, "sqlmock"), 0))

	store := &ratingStore{}
	expectDriverReview(mock, store)
	expectDriverReview(mock, store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, rating := range []int{5, 2} {
		wg.Add(1)
		go func(i, rating int) {
			defer wg.Done()
			review := &models.Review{BookingID: "b", ReviewerID: "rider", RevieweeID: "driver-1", Rating: rating}
			_, errs[i] = repo.CreateReview(context.Background(), review, true)
		}(i, rating)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.ElementsMatch(t, []int64{5, 2}, store.ratings)
	assert.InDelta(t, 3.5, store.average, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasReviewed(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM reviews WHERE booking_id = $1 AND reviewer_id = $2)")).
		WithArgs("b1", "rider-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	reviewed, err := repo.HasReviewed(context.Background(), "b1", "rider-1")

	require.NoError(t, err)
	assert.True(t, reviewed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
