package store_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familycar/datastore/app/models"
	"github.com/familycar/datastore/app/store"
	"github.com/familycar/datastore/pkg/kv"
)

var testClock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// newTestStore builds a store over a fresh memory medium with a fixed
// clock, sequential ids and a silent logger.
func newTestStore(t *testing.T) (*store.Store, *kv.MemoryMedium) {
	t.Helper()

	m := kv.NewMemory()
	s := store.New(m,
		store.WithClock(func() time.Time { return testClock }),
		store.WithIDSource(&store.SequenceIDs{}),
		store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return s, m
}

func TestEmptyReadsBeforeAnyWrite(t *testing.T) {
	s, _ := newTestStore(t)

	users, err := s.Users()
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users, "absent collection reads as empty, never nil")

	categories, err := s.Categories()
	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.NotNil(t, categories)

	orders, err := s.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NotNil(t, orders)

	products, err := s.Products()
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products, "products read as an empty map, never nil")

	current, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestInitSeedsAdminCategoriesProducts(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Init())

	users, err := s.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	admin := users[0]
	assert.Equal(t, store.AdminEmail, admin.Email)
	assert.Equal(t, "1234", admin.Password)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "admin_001", admin.ID)

	categories, err := s.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	names := []string{categories[0].Name, categories[1].Name, categories[2].Name}
	assert.Equal(t, []string{"Ferrari", "Nissan", "Toyota"}, names)

	products, err := s.Products()
	require.NoError(t, err)
	require.Len(t, products, 5)
	ferrari, ok := products["ferrari_001"]
	require.True(t, ok)
	assert.Equal(t, float64(35000000), ferrari.Price)
}

func TestInitResetsAdminPasswordEveryTime(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Init())

	// Change the admin password interactively.
	newPass := "s3cure!"
	_, err := s.UpdateUserByEmail(store.AdminEmail, models.UserPatch{Password: &newPass})
	require.NoError(t, err)

	require.NoError(t, s.Init())

	users, err := s.Users()
	require.NoError(t, err)
	admins := 0
	for _, u := range users {
		if u.Email == store.AdminEmail {
			admins++
			assert.Equal(t, "1234", u.Password, "seed password wins on every init")
		}
	}
	assert.Equal(t, 1, admins, "exactly one admin record after repeated inits")
}

func TestInitPreservesOtherUsers(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Init())

	_, err := s.CreateUser(models.User{Name: "Bob", Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, s.Init())

	users, err := s.Users()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestInitIsIdempotentByteForByte(t *testing.T) {
	s, m := newTestStore(t)
	require.NoError(t, s.Init())

	catsJSON, ok, err := m.Get("familyCar_categories")
	require.NoError(t, err)
	require.True(t, ok)
	productsJSON, ok, err := m.Get("carData")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Init())

	catsAgain, _, err := m.Get("familyCar_categories")
	require.NoError(t, err)
	assert.Equal(t, catsJSON, catsAgain, "no duplicate category seeding")

	productsAgain, _, err := m.Get("carData")
	require.NoError(t, err)
	assert.Equal(t, productsJSON, productsAgain, "no duplicate product seeding")
}

func TestStorageKeysMatchLegacyLayout(t *testing.T) {
	s, m := newTestStore(t)
	require.NoError(t, s.Init())

	_, err := s.CreateOrder(models.Order{})
	require.NoError(t, err)
	_, err = s.Login(store.AdminEmail, "1234")
	require.NoError(t, err)

	for _, key := range []string{
		"familyCar_users",
		"carData",
		"familyCar_categories",
		"familyCar_currentUser",
		"familyCar_orders",
	} {
		_, ok, err := m.Get(key)
		require.NoError(t, err)
		assert.True(t, ok, "expected key %s to be populated", key)
	}
}

func TestCorruptCollectionPropagatesError(t *testing.T) {
	s, m := newTestStore(t)
	require.NoError(t, m.Set("familyCar_users", "{not json"))

	_, err := s.Users()
	assert.Error(t, err, "corrupt stored JSON is fatal, not silently defaulted")
}
