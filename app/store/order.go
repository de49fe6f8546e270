package store

import (
	"fmt"
	"time"

	"github.com/familycar/datastore/app/models"
	"github.com/familycar/datastore/pkg/collection"
)

// Orders returns every order in insertion order.
func (s *Store) Orders() (orders []models.Order, err error) {
	defer track("orders", "list", time.Now(), &err)

	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	return loadList[models.Order](s.medium, ordersKey)
}

// CreateOrder appends order, filling id, date and status (pending) when
// absent, and returns the stored record.
func (s *Store) CreateOrder(order models.Order) (stored models.Order, err error) {
	defer track("orders", "create", time.Now(), &err)

	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	orders, err := loadList[models.Order](s.medium, ordersKey)
	if err != nil {
		return models.Order{}, err
	}

	if order.ID == "" {
		order.ID = s.ids.ID("order")
	}
	if order.Date == "" {
		order.Date = s.timestamp()
	}
	if order.Status == "" {
		order.Status = models.OrderPending
	}

	orders = append(orders, order)
	if err := saveJSON(s.medium, ordersKey, orders); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateOrder patches the order with the given id. Fails with
// ErrOrderNotFound when no order matches.
func (s *Store) UpdateOrder(id string, patch models.OrderPatch) (updated models.Order, err error) {
	defer track("orders", "update", time.Now(), &err)

	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	orders, err := loadList[models.Order](s.medium, ordersKey)
	if err != nil {
		return models.Order{}, err
	}

	idx := collection.FindIndex(orders, func(o models.Order) bool { return o.ID == id })
	if idx == -1 {
		return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}

	orders[idx] = patch.Apply(orders[idx])
	if err := saveJSON(s.medium, ordersKey, orders); err != nil {
		return models.Order{}, err
	}
	return orders[idx], nil
}

// DeleteOrder removes the order with the given id and reports whether
// anything was removed.
func (s *Store) DeleteOrder(id string) (removed bool, err error) {
	defer track("orders", "delete", time.Now(), &err)

	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	orders, err := loadList[models.Order](s.medium, ordersKey)
	if err != nil {
		return false, err
	}

	kept := collection.Reject(orders, func(o models.Order) bool { return o.ID == id })
	if len(kept) == len(orders) {
		return false, nil
	}
	if kept == nil {
		kept = []models.Order{}
	}
	if err := saveJSON(s.medium, ordersKey, kept); err != nil {
		return false, err
	}
	return true, nil
}
