package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Authenticator is the slice of the remote API the store needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Register(ctx context.Context, input domain.RegisterInput) (*domain.Session, error)
}

// Store is the single source of truth for "who is logged in". It owns all
// writes to the durable blob; everything else reads through File.Token.
type Store struct {
	file *File
	auth Authenticator
	log  logger.Logger

	mu        sync.RWMutex
	user      *domain.User
	loading   bool
	listeners []func(*domain.User)
}

func NewStore(file *File, auth Authenticator, log logger.Logger) *Store {
	return &Store{
		file:    file,
		auth:    auth,
		log:     log,
		loading: true,
	}
}

// Restore populates the in-memory identity from the durable blob. It must
// run before guarded screens are served; Loading reports true until then.
func (s *Store) Restore() {
	blob, ok := s.file.Load()

	s.mu.Lock()
	if ok {
		s.user = blob.User
	}
	s.loading = false
	user := s.user
	s.mu.Unlock()

	if ok {
		s.log.Info("session restored",
			logger.String("user_id", user.ID),
			logger.String("role", string(user.Role)),
		)
		s.notify(user)
	}
}

func (s *Store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	sess, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.persist(sess)
	return sess.User, nil
}

func (s *Store) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	sess, err := s.auth.Register(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.persist(sess)
	return sess.User, nil
}

// Logout clears both the in-memory identity and the durable blob. No
// network call is involved; calling it twice is fine.
func (s *Store) Logout() {
	if err := s.file.Clear(); err != nil {
		s.log.Error("failed to clear session file",
			logger.String("error", err.Error()),
		)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.notify(nil)
}

func (s *Store) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// OnChange registers an observer for identity changes. Observers run
// after login, register, logout and a successful restore.
func (s *Store) OnChange(fn func(*domain.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) persist(sess *domain.Session) {
	if err := s.file.Save(&Blob{Token: sess.Token, User: sess.User}); err != nil {
		// The session still works for this process; it just won't
		// survive a restart.
		s.log.Error("failed to persist session",
			logger.String("error", err.Error()),
		)
	}

	s.mu.Lock()
	s.user = sess.User
	s.mu.Unlock()

	s.notify(sess.User)
}

func (s *Store) notify(user *domain.User) {
	s.mu.RLock()
	listeners := make([]func(*domain.User), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(user)
	}
}
