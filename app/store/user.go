package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/familycar/datastore/app/models"
	"github.com/familycar/datastore/pkg/collection"
)

// Users returns every registered user, in insertion order. An
// uninitialized store yields an empty slice.
func (s *Store) Users() (users []models.User, err error) {
	defer track("users", "list", time.Now(), &err)

	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	return loadList[models.User](s.medium, usersKey)
}

// CreateUser registers user, filling id, role and joinedDate when absent.
// Fails with ErrDuplicateEmail if the email is already taken; the stored
// collection is untouched in that case. The returned record still carries
// the password — callers decide what to expose.
func (s *Store) CreateUser(user models.User) (stored models.User, err error) {
	defer track("users", "create", time.Now(), &err)

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := loadList[models.User](s.medium, usersKey)
	if err != nil {
		return models.User{}, err
	}

	if collection.Contains(users, func(u models.User) bool { return u.Email == user.Email }) {
		return models.User{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, user.Email)
	}

	if user.ID == "" {
		user.ID = s.ids.ID("user")
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.JoinedDate == "" {
		user.JoinedDate = s.timestamp()
	}

	users = append(users, user)
	if err := saveJSON(s.medium, usersKey, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login matches email and password exactly against the stored records.
// On success the password-stripped copy becomes the current session and is
// returned. A miss returns (nil, nil): wrong password and unknown email
// are deliberately indistinguishable.
func (s *Store) Login(email, password string) (user *models.User, err error) {
	defer track("session", "login", time.Now(), &err)

	s.usersMu.Lock()
	users, err := loadList[models.User](s.medium, usersKey)
	s.usersMu.Unlock()
	if err != nil {
		return nil, err
	}

	match, ok := collection.First(users, func(u models.User) bool {
		return u.Email == email && u.Password == password
	})
	if !ok {
		return nil, nil
	}

	safe := match.WithoutPassword()
	if err := s.saveSession(safe); err != nil {
		return nil, err
	}
	return &safe, nil
}

// UpdateCurrentUser patches the logged-in user's stored record and
// refreshes the session copy. Fails with ErrNoActiveSession when nobody is
// logged in, and with ErrUserNotFound when the session points at an email
// that no longer exists (stale session).
func (s *Store) UpdateCurrentUser(patch models.UserPatch) (user *models.User, err error) {
	defer track("users", "update_current", time.Now(), &err)

	current, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNoActiveSession
	}

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := loadList[models.User](s.medium, usersKey)
	if err != nil {
		return nil, err
	}

	idx := collection.FindIndex(users, func(u models.User) bool { return u.Email == current.Email })
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, current.Email)
	}

	users[idx] = patch.Apply(users[idx])
	if err := saveJSON(s.medium, usersKey, users); err != nil {
		return nil, err
	}

	safe := users[idx].WithoutPassword()
	if err := s.saveSession(safe); err != nil {
		return nil, err
	}
	return &safe, nil
}

// UpdateUserByEmail patches any user's record, admin style. Returns the
// full updated record, password included. It does not refresh the session
// even when it targets the logged-in user — long-standing behavior that
// existing callers compensate for.
func (s *Store) UpdateUserByEmail(email string, patch models.UserPatch) (user models.User, err error) {
	defer track("users", "update_by_email", time.Now(), &err)

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := loadList[models.User](s.medium, usersKey)
	if err != nil {
		return models.User{}, err
	}

	idx := collection.FindIndex(users, func(u models.User) bool { return u.Email == email })
	if idx == -1 {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, email)
	}

	users[idx] = patch.Apply(users[idx])
	if err := saveJSON(s.medium, usersKey, users); err != nil {
		return models.User{}, err
	}
	return users[idx], nil
}

// DeleteUser removes every record with the given email (normally at most
// one) and reports whether anything was removed. An active session for the
// deleted user is left in place, matching the behavior callers rely on.
func (s *Store) DeleteUser(email string) (removed bool, err error) {
	defer track("users", "delete", time.Now(), &err)

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := loadList[models.User](s.medium, usersKey)
	if err != nil {
		return false, err
	}

	kept := collection.Reject(users, func(u models.User) bool { return u.Email == email })
	if len(kept) == len(users) {
		return false, nil
	}
	if kept == nil {
		kept = []models.User{}
	}
	if err := saveJSON(s.medium, usersKey, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Logout clears the session slot. A no-op when nobody is logged in.
func (s *Store) Logout() (err error) {
	defer track("session", "logout", time.Now(), &err)

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	return s.medium.Remove(sessionKey)
}

// CurrentUser returns the session record, or nil when nobody is logged in.
// The session is an independent copy: it can be stale relative to the
// users collection and is never reconciled against it here.
func (s *Store) CurrentUser() (user *models.User, err error) {
	defer track("session", "current", time.Now(), &err)

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	raw, ok, err := s.medium.Get(sessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", sessionKey, err)
	}
	return &u, nil
}

func (s *Store) saveSession(u models.User) error {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	return saveJSON(s.medium, sessionKey, u.WithoutPassword())
}
