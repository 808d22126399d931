package fixture

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/churchweb/mockapi/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// QueueSignUp stores a pending sign-up payload for the next /signUp call,
// simulating "the form was filled". Only one payload is held at a time.
func (s *Store) QueueSignUp(payload domain.SignUpPayload) error {
	if err := validate.Struct(payload); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingSignUp = &payload
	return nil
}

// TakePendingSignUp returns and clears the queued payload.
func (s *Store) TakePendingSignUp() (domain.SignUpPayload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingSignUp == nil {
		return domain.SignUpPayload{}, false
	}
	payload := *s.pendingSignUp
	s.pendingSignUp = nil
	return payload, true
}

// CreateUser registers a new unapproved USER account from a sign-up payload.
func (s *Store) CreateUser(payload domain.SignUpPayload) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain.User{
		Id:         s.nextUserId,
		Username:   payload.Account,
		Password:   payload.Password,
		Email:      payload.Email,
		Name:       payload.Name,
		Role:       domain.RoleUser,
		IsApproved: false,
	}
	s.nextUserId++
	s.users[user.Username] = user
	return user
}

// AddUser inserts a fully specified account, assigning an id when none is
// given. Priming helper for membership and admin scenarios.
func (s *Store) AddUser(user domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.Id == 0 {
		user.Id = s.nextUserId
		s.nextUserId++
	}
	s.users[user.Username] = user
	return user
}

func (s *Store) FindUser(username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	return user, ok
}

func (s *Store) FindUserById(id domain.UserId) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUserByIdLocked(id)
}

func (s *Store) findUserByIdLocked(id domain.UserId) (domain.User, bool) {
	for _, user := range s.users {
		if user.Id == id {
			return user, true
		}
	}
	return domain.User{}, false
}

// Users returns every account ordered by id.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}

// PendingUsers lists USER accounts still waiting for approval.
func (s *Store) PendingUsers() []domain.User {
	var out []domain.User
	for _, user := range s.Users() {
		if user.Role == domain.RoleUser && !user.IsApproved {
			out = append(out, user)
		}
	}
	return out
}

// ApprovedUsers lists approved accounts of any role.
func (s *Store) ApprovedUsers() []domain.User {
	var out []domain.User
	for _, user := range s.Users() {
		if user.IsApproved {
			out = append(out, user)
		}
	}
	return out
}

// ApproveUser flips the approval flag. Unknown id reports false.
func (s *Store) ApproveUser(id domain.UserId) (domain.User, bool) {
	return s.mutateUser(id, func(u *domain.User) { u.IsApproved = true })
}

// RevokeApproval clears the approval flag. Unknown id reports false.
func (s *Store) RevokeApproval(id domain.UserId) (domain.User, bool) {
	return s.mutateUser(id, func(u *domain.User) { u.IsApproved = false })
}

// UpdateUserRole sets the account's role. Unknown id reports false.
func (s *Store) UpdateUserRole(id domain.UserId, role domain.Role) (domain.User, bool) {
	return s.mutateUser(id, func(u *domain.User) { u.Role = role })
}

func (s *Store) mutateUser(id domain.UserId, mutate func(*domain.User)) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.findUserByIdLocked(id)
	if !ok {
		return domain.User{}, false
	}
	mutate(&user)
	s.users[user.Username] = user
	return user, true
}
