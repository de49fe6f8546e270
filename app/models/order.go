package models

import "encoding/json"

// Order statuses observed in stored data. The field is open-ended; these
// are the common values, not a closed set.
const (
	OrderPending  = "pending"
	OrderPaid     = "paid"
	OrderApproved = "approved"
)

// Order is one placed order. Beyond id, date and status, callers attach
// arbitrary fields (amount, cart lines, customer details); those live in
// Fields and are flattened into the same JSON object on disk, so stored
// orders keep the exact shape existing consumers expect.
type Order struct {
	ID     string
	Date   string
	Status string
	Fields map[string]any
}

// MarshalJSON flattens Fields and the fixed fields into one object.
// Fixed fields win on a name collision.
func (o Order) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(o.Fields)+3)
	for k, v := range o.Fields {
		out[k] = v
	}
	out["id"] = o.ID
	out["date"] = o.Date
	out["status"] = o.Status
	return json.Marshal(out)
}

// UnmarshalJSON splits the fixed fields back out of the flat object.
func (o *Order) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["id"].(string); ok {
		o.ID = v
	}
	if v, ok := raw["date"].(string); ok {
		o.Date = v
	}
	if v, ok := raw["status"].(string); ok {
		o.Status = v
	}
	delete(raw, "id")
	delete(raw, "date")
	delete(raw, "status")

	if len(raw) > 0 {
		o.Fields = raw
	} else {
		o.Fields = nil
	}
	return nil
}

// OrderPatch is a partial update for an order. Fields entries are merged
// key-by-key over the order's extra fields, patch values winning.
type OrderPatch struct {
	Date   *string
	Status *string
	Fields map[string]any
}

// Apply merges p onto o and returns the result.
func (p OrderPatch) Apply(o Order) Order {
	if p.Date != nil {
		o.Date = *p.Date
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if len(p.Fields) > 0 {
		merged := make(map[string]any, len(o.Fields)+len(p.Fields))
		for k, v := range o.Fields {
			merged[k] = v
		}
		for k, v := range p.Fields {
			merged[k] = v
		}
		o.Fields = merged
	}
	return o
}
