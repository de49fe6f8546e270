// Package store is a persistence façade over a key-value medium. It owns
// five named collections — users, products, categories, orders and the
// single-slot current session — each serialized as one JSON document under
// a fixed storage key.
//
// Every operation is a complete read-modify-write: load the whole
// collection, scan or mutate it in memory, write the whole collection
// back. A mutex per storage key serializes those cycles inside the
// process; the medium itself is assumed single-writer, and a second
// process racing the same keys loses updates last-write-wins.
//
//	medium, _ := kv.Open()
//	s := store.New(medium)
//	if err := s.Init(); err != nil { ... }
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/familycar/datastore/app/models"
	"github.com/familycar/datastore/pkg/collection"
	"github.com/familycar/datastore/pkg/kv"
	"github.com/familycar/datastore/pkg/metrics"
)

// Storage keys. These must match the existing stored data byte-for-byte;
// carData in particular predates the familyCar_ prefix and stays as-is.
const (
	usersKey      = "familyCar_users"
	productsKey   = "carData"
	categoriesKey = "familyCar_categories"
	sessionKey    = "familyCar_currentUser"
	ordersKey     = "familyCar_orders"
)

// isoMillis matches the timestamp format of the existing stored data
// (millisecond precision, Z suffix).
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Store is the façade. Construct one per process with New and share it;
// all methods are safe for concurrent use within the process.
type Store struct {
	medium kv.Medium
	ids    IDSource
	now    func() time.Time
	log    *slog.Logger

	usersMu      sync.Mutex
	productsMu   sync.Mutex
	categoriesMu sync.Mutex
	sessionMu    sync.Mutex
	ordersMu     sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the time source used for generated ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSource injects the id generator. Defaults to TimeIDs on the
// store's clock.
func WithIDSource(ids IDSource) Option {
	return func(s *Store) { s.ids = ids }
}

// WithLogger injects the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New builds a Store over medium. The medium is the only required
// collaborator; clock, ids and logger default sensibly.
func New(medium kv.Medium, opts ...Option) *Store {
	s := &Store{
		medium: medium,
		now:    time.Now,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = TimeIDs{Now: s.now}
	}
	return s
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(isoMillis)
}

// track records metrics for one operation; call via defer with a named
// error return.
func track(coll, op string, start time.Time, err *error) {
	metrics.Observe(coll, op, start, *err)
}

// ── Serialization helpers ─────────────────────────────────────────────────────

// loadList reads the collection at key, or an empty slice when the key is
// absent. Corrupt JSON is returned as an error, never papered over.
func loadList[T any](m kv.Medium, key string) ([]T, error) {
	raw, ok, err := m.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return items, nil
}

// loadMap is loadList for the one map-shaped collection.
func loadMap[T any](m kv.Medium, key string) (map[string]T, error) {
	raw, ok, err := m.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]T{}, nil
	}
	var items map[string]T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return items, nil
}

func saveJSON(m kv.Medium, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return m.Set(key, string(data))
}

// ── Initialization ────────────────────────────────────────────────────────────

// Init prepares the store for use and is safe to run on every start.
// It forces the admin seed account back to its fixed fields (creating it
// if absent) and always rewrites the users collection; categories and
// products are seeded with their defaults only when empty.
func (s *Store) Init() (err error) {
	defer track("store", "init", time.Now(), &err)

	if err := s.initAdmin(); err != nil {
		return err
	}
	if err := s.initCategories(); err != nil {
		return err
	}
	return s.initProducts()
}

func (s *Store) initAdmin() error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := loadList[models.User](s.medium, usersKey)
	if err != nil {
		return err
	}

	admin := adminUser(s.timestamp())
	idx := collection.FindIndex(users, func(u models.User) bool { return u.Email == AdminEmail })
	if idx != -1 {
		users[idx] = admin
		s.log.Info("admin account updated, password reset", "email", AdminEmail)
	} else {
		users = append(users, admin)
		s.log.Info("admin account created", "email", AdminEmail)
	}

	return saveJSON(s.medium, usersKey, users)
}

func (s *Store) initCategories() error {
	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()

	categories, err := loadList[models.Category](s.medium, categoriesKey)
	if err != nil {
		return err
	}
	if len(categories) > 0 {
		return nil
	}
	return saveJSON(s.medium, categoriesKey, defaultCategories())
}

func (s *Store) initProducts() error {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := loadMap[models.Product](s.medium, productsKey)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}
	return saveJSON(s.medium, productsKey, defaultProducts())
}
