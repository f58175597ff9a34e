package food

import (
	"FoodSave-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (FoodRepository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return NewFoodRepository(db), mock
}

func TestGetFoodItemByID(t *testing.T) {
	repo, mock := newMockDB(t)

	id := uuid.New()
	userID := uuid.New()
	expiry := time.Now().UTC().AddDate(0, 0, 5)

	mock.ExpectQuery(`SELECT \* FROM "food_items" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "category", "expiry_date", "status"}).
			AddRow(id, userID, "Milk", "Dairy", expiry, entities.FoodStatusFresh))

	item, err := repo.GetFoodItemByID(context.Background(), id.String())
	require.NoError(t, err)

	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, userID, item.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFoodItemByIDNotFound(t *testing.T) {
	repo, mock := newMockDB(t)

	id := uuid.NewString()
	mock.ExpectQuery(`SELECT \* FROM "food_items" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetFoodItemByID(context.Background(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCountByStatus(t *testing.T) {
	repo, mock := newMockDB(t)

	userID := uuid.NewString()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "food_items" WHERE user_id = \$1 AND status IN \(\$2,\$3\)`).
		WithArgs(userID, entities.FoodStatusConsumed, entities.FoodStatusDonated).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByStatus(context.Background(), userID, entities.FoodStatusConsumed, entities.FoodStatusDonated)
	require.NoError(t, err)

	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFoodItem(t *testing.T) {
	repo, mock := newMockDB(t)

	id := uuid.NewString()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "food_items" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteFoodItem(context.Background(), id)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
