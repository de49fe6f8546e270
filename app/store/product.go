package store

import (
	"time"

	"github.com/familycar/datastore/app/models"
)

// Products returns the catalog keyed by product id. The map shape (rather
// than the list shape every other collection uses) is part of the stored
// contract and is preserved all the way out.
func (s *Store) Products() (products map[string]models.Product, err error) {
	defer track("products", "list", time.Now(), &err)

	s.productsMu.Lock()
	defer s.productsMu.Unlock()
	return loadMap[models.Product](s.medium, productsKey)
}

// SaveProduct sets the product at id unconditionally, inserting or
// overwriting.
func (s *Store) SaveProduct(id string, product models.Product) (err error) {
	defer track("products", "save", time.Now(), &err)

	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := loadMap[models.Product](s.medium, productsKey)
	if err != nil {
		return err
	}

	products[id] = product
	return saveJSON(s.medium, productsKey, products)
}

// DeleteProduct removes the product at id and reports whether it was
// present. Nothing is written when it was not.
func (s *Store) DeleteProduct(id string) (removed bool, err error) {
	defer track("products", "delete", time.Now(), &err)

	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := loadMap[models.Product](s.medium, productsKey)
	if err != nil {
		return false, err
	}

	if _, ok := products[id]; !ok {
		return false, nil
	}

	delete(products, id)
	if err := saveJSON(s.medium, productsKey, products); err != nil {
		return false, err
	}
	return true, nil
}
