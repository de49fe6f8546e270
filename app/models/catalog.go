package models

// Category is a catalog grouping. The id is either caller-supplied (the
// seed data uses the brand name itself) or generated.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StatusAvailable is the status the seed products carry. The field is an
// open string, not an enum.
const StatusAvailable = "available"

// Product is one catalog entry. Products are stored keyed by id (a JSON
// object, not an array) — consumers of the stored data depend on that shape.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}
