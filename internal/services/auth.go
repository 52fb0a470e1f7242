package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL is the lifetime of a session when none is configured.
const DefaultSessionTTL = 24 * time.Hour

// UserRepository defines the user operations of the store.
type UserRepository interface {
	CreateUser(ctx context.Context, email string, passwordHash string, isParent bool) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// SessionRepository persists server-side session records.
type SessionRepository interface {
	Save(ctx context.Context, sess *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenManager signs session ids into client tokens and reads them back.
type TokenManager interface {
	Generate(ctx context.Context, sessionID string) (string, error)
	GetSessionID(ctx context.Context, token string) (string, error)
}

// AuthService binds requests to an identity: it opens sessions on
// registration, login and guest entry, and resolves tokens back to the
// identity their session grants.
type AuthService struct {
	users    UserRepository
	sessions SessionRepository
	tokens   TokenManager
	ttl      time.Duration
	now      func() time.Time
	newID    func() string
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithSessionTTL sets the lifetime of new sessions.
func WithSessionTTL(ttl time.Duration) AuthOption {
	return func(s *AuthService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithAuthClock overrides the clock used for session expiry.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthService) {
		s.now = now
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserRepository, sessions SessionRepository, tokens TokenManager, opts ...AuthOption) *AuthService {
	s := &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareWithDummy spends the same bcrypt work as a real comparison so an
// unknown email cannot be told apart from a wrong password by timing.
func compareWithDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("mundo-divertido"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Register creates an account and opens an authenticated session for it.
// The session currentSessionID, when set, is replaced by the new one.
func (s *AuthService) Register(ctx context.Context, email, password string, isParent bool, currentSessionID string) (*models.User, string, error) {
	verr := models.NewValidationError()
	email = strings.TrimSpace(email)
	if email == "" {
		verr.Add("email", "is required")
	} else if !strings.Contains(email, "@") {
		verr.Add("email", "must be a valid email address")
	}
	if password == "" {
		verr.Add("password", "is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := s.users.CreateUser(ctx, email, string(hashedPassword), isParent)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			logger.Log.Infow("email already in use", "email", email)
		} else {
			logger.Log.Errorw("failed to create user", "email", email, "err", err)
		}
		return nil, "", err
	}

	token, err := s.openSession(ctx, currentSessionID, models.SessionUser, user.ID, user.IsParent)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and opens an authenticated session that
// replaces currentSessionID. Failed logins leave the current session alone.
func (s *AuthService) Login(ctx context.Context, email, password, currentSessionID string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, "", err
	}
	if user == nil {
		compareWithDummy(password)
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, "", models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, currentSessionID, models.SessionUser, user.ID, user.IsParent)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GuestLogin opens a guest session in place of currentSessionID.
// It never fails on input.
func (s *AuthService) GuestLogin(ctx context.Context, currentSessionID string) (string, error) {
	return s.openSession(ctx, currentSessionID, models.SessionGuest, 0, false)
}

// Logout destroys the session. Unknown ids are not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "sessionID", sessionID, "err", err)
		return err
	}
	return nil
}

// Resolve maps a client token to the identity of its session. A missing,
// malformed or expired token yields Anonymous with an empty session id;
// only store failures are returned as errors.
func (s *AuthService) Resolve(ctx context.Context, token string) (models.Identity, string, error) {
	if token == "" {
		return models.Anonymous{}, "", nil
	}

	sessionID, err := s.tokens.GetSessionID(ctx, token)
	if err != nil {
		logger.Log.Debugw("rejected session token", "err", err)
		return models.Anonymous{}, "", nil
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to load session", "sessionID", sessionID, "err", err)
		return models.Anonymous{}, "", err
	}
	if sess == nil || sess.Expired(s.now()) {
		return models.Anonymous{}, "", nil
	}

	return sess.Identity(), sess.ID, nil
}

// CurrentUser returns the public view of the caller.
func (s *AuthService) CurrentUser(ctx context.Context, identity models.Identity) (*models.CurrentUser, error) {
	switch id := identity.(type) {
	case models.Guest:
		return models.GuestUser(), nil
	case models.Authenticated:
		user, err := s.users.GetUser(ctx, id.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get user", "userID", id.UserID, "err", err)
			return nil, err
		}
		if user == nil {
			// the account behind a live session is gone
			return nil, models.ErrUnauthenticated
		}
		return models.NewCurrentUser(user), nil
	}
	return nil, models.ErrUnauthenticated
}

// openSession destroys the replaced session, if any, and saves a new one.
func (s *AuthService) openSession(ctx context.Context, replaced, kind string, userID int64, isParent bool) (string, error) {
	if err := s.Logout(ctx, replaced); err != nil {
		return "", err
	}

	sess := &models.Session{
		ID:        s.newID(),
		Kind:      kind,
		UserID:    userID,
		IsParent:  isParent,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		logger.Log.Errorw("failed to save session", "kind", kind, "userID", userID, "err", err)
		return "", err
	}

	token, err := s.tokens.Generate(ctx, sess.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "sessionID", sess.ID, "err", err)
		return "", err
	}
	return token, nil
}
