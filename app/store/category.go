package store

import (
	"time"

	"github.com/familycar/datastore/app/models"
	"github.com/familycar/datastore/pkg/collection"
)

// Categories returns every category in insertion order.
func (s *Store) Categories() (categories []models.Category, err error) {
	defer track("categories", "list", time.Now(), &err)

	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()
	return loadList[models.Category](s.medium, categoriesKey)
}

// SaveCategory upserts cat. A set id that matches an existing record
// replaces it wholesale; a set id with no match appends as-is; an empty id
// gets a generated one and appends. Returns the stored record.
func (s *Store) SaveCategory(cat models.Category) (stored models.Category, err error) {
	defer track("categories", "save", time.Now(), &err)

	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()

	categories, err := loadList[models.Category](s.medium, categoriesKey)
	if err != nil {
		return models.Category{}, err
	}

	if cat.ID != "" {
		idx := collection.FindIndex(categories, func(c models.Category) bool { return c.ID == cat.ID })
		if idx != -1 {
			categories[idx] = cat
		} else {
			categories = append(categories, cat)
		}
	} else {
		cat.ID = s.ids.ID("cat")
		categories = append(categories, cat)
	}

	if err := saveJSON(s.medium, categoriesKey, categories); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// DeleteCategory removes the category with the given id and reports
// whether anything was removed.
func (s *Store) DeleteCategory(id string) (removed bool, err error) {
	defer track("categories", "delete", time.Now(), &err)

	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()

	categories, err := loadList[models.Category](s.medium, categoriesKey)
	if err != nil {
		return false, err
	}

	kept := collection.Reject(categories, func(c models.Category) bool { return c.ID == id })
	if len(kept) == len(categories) {
		return false, nil
	}
	if kept == nil {
		kept = []models.Category{}
	}
	if err := saveJSON(s.medium, categoriesKey, kept); err != nil {
		return false, err
	}
	return true, nil
}
