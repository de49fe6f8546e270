package store

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDSource generates record identifiers. The prefix names the entity kind
// ("user", "cat", "order"); sources join it to something unique.
type IDSource interface {
	ID(prefix string) string
}

// TimeIDs derives ids from the wall clock in milliseconds ("user_1718000000000"),
// the scheme all existing stored data uses. Two calls within the same
// millisecond collide; acceptable for a single-writer store, inject
// UUIDs where that is not.
type TimeIDs struct {
	Now func() time.Time // defaults to time.Now
}

func (t TimeIDs) ID(prefix string) string {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	return fmt.Sprintf("%s_%d", prefix, now().UnixMilli())
}

// UUIDs generates collision-free ids ("user_2f6e4a...").
type UUIDs struct{}

func (UUIDs) ID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// SequenceIDs counts up from 1 ("user_1", "user_2"). Deterministic, for tests.
type SequenceIDs struct {
	n atomic.Int64
}

func (s *SequenceIDs) ID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, s.n.Add(1))
}
