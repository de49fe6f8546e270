package store_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/familycar/datastore/app/store"
)

func TestTimeIDs(t *testing.T) {
	fixed := time.UnixMilli(1718000000000)
	ids := store.TimeIDs{Now: func() time.Time { return fixed }}

	assert.Equal(t, "user_1718000000000", ids.ID("user"))
	assert.Equal(t, "order_1718000000000", ids.ID("order"))
}

func TestUUIDs(t *testing.T) {
	ids := store.UUIDs{}

	a := ids.ID("cat")
	b := ids.ID("cat")
	assert.True(t, strings.HasPrefix(a, "cat_"))
	assert.NotEqual(t, a, b)
}

func TestSequenceIDs(t *testing.T) {
	ids := &store.SequenceIDs{}

	assert.Equal(t, "user_1", ids.ID("user"))
	assert.Equal(t, "user_2", ids.ID("user"))
	assert.Equal(t, "order_3", ids.ID("order"), "one counter across prefixes")
}
