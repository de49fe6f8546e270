package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familycar/datastore/app/models"
)

func TestUserPatchApply(t *testing.T) {
	u := models.User{
		ID:    "user_1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  models.RoleUser,
		Phone: "555-0000",
	}

	name := "Alicia"
	phone := "555-1111"
	patched := models.UserPatch{Name: &name, Phone: &phone}.Apply(u)

	assert.Equal(t, "Alicia", patched.Name)
	assert.Equal(t, "555-1111", patched.Phone)
	assert.Equal(t, u.Email, patched.Email, "unpatched fields keep their values")
	assert.Equal(t, u.Role, patched.Role)
}

func TestUserWithoutPasswordMarshalsNoPasswordKey(t *testing.T) {
	u := models.User{ID: "user_1", Email: "alice@example.com", Password: "secret"}

	data, err := json.Marshal(u.WithoutPassword())
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.NotContains(t, flat, "password")
}
