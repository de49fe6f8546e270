package models

// Roles a user record may carry.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a registered account. Email is the natural key: uniqueness is
// checked when the record is created, and lookups go through it.
//
// Password is stored in clear text, matching the data this module must stay
// wire-compatible with; omitempty lets the session copy marshal without a
// password key at all.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Role       string `json:"role"`
	Phone      string `json:"phone,omitempty"`
	JoinedDate string `json:"joinedDate"`
}

// WithoutPassword returns a copy of u with the password cleared, the only
// form the session slot ever stores.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// UserPatch is a partial update. Only non-nil fields are applied; a patch
// may change the email without any uniqueness check, matching the contract
// of the update operations.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// Apply merges p onto u, patch fields winning, and returns the result.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	return u
}
