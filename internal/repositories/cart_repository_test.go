package repository_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	cartRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "user_id", "items", "total", "created_at", "updated_at"})
	}

	t.Run("CreateCart - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCartRepo(db)
		cart := &models.Cart{ID: uuid.New(), UserID: userID, Items: map[string]models.CartItem{}}
		now := time.Now()

		mock.ExpectQuery(q("INSERT INTO carts (id, user_id, items, total, created_at, updated_at)")+".*"+q("ON CONFLICT (user_id)")).
			WithArgs(cart.ID, userID, []byte("{}"), 0.0).
			WillReturnRows(cartRow().AddRow(cart.ID, userID, []byte("{}"), 0.0, now, now))

		require.NoError(t, repo.CreateCart(t.Context(), cart))
		assert.WithinDuration(t, now, cart.CreatedAt, time.Second)
		assert.NotNil(t, cart.Items)
	})

	t.Run("CreateCart - Existing cart wins the race", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCartRepo(db)
		cart := &models.Cart{ID: uuid.New(), UserID: userID, Items: map[string]models.CartItem{}}
		existingID := uuid.New()
		created := time.Now().Add(-time.Hour)
		items := `{"` + productID.String() + `":{"product_id":"` + productID.String() + `","product_name":"Cooling Pad","quantity":1,"unit_price":599,"total_price":599}}`

		mock.ExpectQuery(q("INSERT INTO carts")).
			WillReturnRows(cartRow().AddRow(existingID, userID, []byte(items), 599.0, created, created))

		require.NoError(t, repo.CreateCart(t.Context(), cart))
		assert.Equal(t, existingID, cart.ID)
		assert.Equal(t, 1, cart.Units())
		assert.InDelta(t, 599.0, cart.Total, 0.001)
	})

	t.Run("CreateCart - Unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCartRepo(db)
		cart := &models.Cart{ID: uuid.New(), UserID: userID}
		fkErr := errors.New("insert or update on table \"carts\" violates foreign key constraint")

		mock.ExpectQuery(q("INSERT INTO carts")).WillReturnError(fkErr)

		err := repo.CreateCart(t.Context(), cart)
		require.ErrorIs(t, err, fkErr)
		assert.Contains(t, err.Error(), "failed to insert cart")
	})

	t.Run("GetCartByCustomerID - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCartRepo(db)
		cartID := uuid.New()
		now := time.Now()
		items := `{"` + productID.String() + `":{"product_id":"` + productID.String() + `","product_name":"Water Pump","quantity":2,"unit_price":349,"total_price":698}}`

		mock.ExpectQuery(q("FROM carts")+".*"+q("WHERE user_id = $1")).WithArgs(userID).
			WillReturnRows(cartRow().
				AddRow(cartID, userID, []byte(items), 698.0, now, now))

		cart, err := repo.GetCartByCustomerID(t.Context(), userID)

		require.NoError(t, err)
		assert.Equal(t, cartID, cart.ID)
		assert.InDelta(t, 698.0, cart.Total, 0.001)
		require.Contains(t, cart.Items, productID.String())
		assert.Equal(t, 2, cart.Items[productID.String()].Quantity)
	})

	t.Run("GetCartByCustomerID - Empty JSON yields empty map", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCartRepo(db)
		now := time.Now()

		mock.ExpectQuery(q("FROM carts")).WithArgs(userID).
			WillReturnRows(cartRow().
				AddRow(uuid.New(), userID, []byte("null"), 0.0, now, now))

		cart, err := repo.GetCartByCustomerID(t.Context(), userID)

		require.NoError(t, err)
		assert.NotNil(t, cart.Items)
	})

	t.Run("GetCartByCustomerID - Not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCartRepo(db)

		mock.ExpectQuery(q("FROM carts")).WithArgs(userID).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetCartByCustomerID(t.Context(), userID)

		require.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("UpdateCart - Not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCartRepo(db)
		cart := &models.Cart{ID: uuid.New(), Items: map[string]models.CartItem{}}

		mock.ExpectQuery(q("UPDATE carts")).WithArgs([]byte("{}"), 0.0, cart.ID).WillReturnError(sql.ErrNoRows)

		require.ErrorIs(t, repo.UpdateCart(t.Context(), cart), repository.ErrNotFound)
	})

	t.Run("GetCartByCustomerID - Corrupt items", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewCartRepo(db)
		now := time.Now()

		mock.ExpectQuery(q("FROM carts")).WithArgs(userID).
			WillReturnRows(cartRow().AddRow(uuid.New(), userID, []byte("[1,2]"), 0.0, now, now))

		_, err := repo.GetCartByCustomerID(t.Context(), userID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode cart items")
	})
}
