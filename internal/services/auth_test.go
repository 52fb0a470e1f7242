package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
	"github.com/sbilibin2017/mundo-divertido/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	users    *services.MockUserRepository
	sessions *services.MockSessionRepository
	tokens   *services.MockTokenManager
}

func newAuthService(t *testing.T, opts ...services.AuthOption) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := authMocks{
		users:    services.NewMockUserRepository(ctrl),
		sessions: services.NewMockSessionRepository(ctrl),
		tokens:   services.NewMockTokenManager(ctrl),
	}
	return services.NewAuthService(m.users, m.sessions, m.tokens, opts...), m
}

func TestAuthService_Register(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		email       string
		password    string
		isParent    bool
		createErr   error
		saveErr     error
		wantErr     error
		wantInvalid []string
		wantToken   string
	}{
		{
			name:      "successful registration",
			email:     "a@x.com",
			password:  "pw",
			isParent:  true,
			wantToken: "token123",
		},
		{
			name:      "email already in use",
			email:     "a@x.com",
			password:  "pw",
			createErr: models.ErrConflict,
			wantErr:   models.ErrConflict,
		},
		{
			name:        "missing fields",
			email:       "",
			password:    "",
			wantInvalid: []string{"email", "password"},
		},
		{
			name:        "malformed email",
			email:       "not-an-email",
			password:    "pw",
			wantInvalid: []string{"email"},
		},
		{
			name:      "store error",
			email:     "b@x.com",
			password:  "pw",
			createErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "session store error",
			email:    "c@x.com",
			password: "pw",
			saveErr:  errors.New("redis down"),
			wantErr:  errors.New("redis down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t,
				services.WithAuthClock(func() time.Time { return now }),
				services.WithSessionTTL(time.Hour),
			)

			if tt.wantInvalid == nil {
				m.users.EXPECT().
					CreateUser(gomock.Any(), tt.email, gomock.Any(), tt.isParent).
					DoAndReturn(func(_ context.Context, email, hash string, isParent bool) (*models.User, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						if tt.createErr != nil {
							return nil, tt.createErr
						}
						return &models.User{ID: 1, Email: email, PasswordHash: hash, IsParent: isParent}, nil
					})
			}
			if tt.wantInvalid == nil && tt.createErr == nil {
				m.sessions.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sess *models.Session) error {
						assert.Equal(t, models.SessionUser, sess.Kind)
						assert.Equal(t, int64(1), sess.UserID)
						assert.Equal(t, tt.isParent, sess.IsParent)
						assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt)
						assert.NotEmpty(t, sess.ID)
						return tt.saveErr
					})
			}
			if tt.wantInvalid == nil && tt.createErr == nil && tt.saveErr == nil {
				m.tokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tt.wantToken, nil)
			}

			user, token, err := svc.Register(context.Background(), tt.email, tt.password, tt.isParent, "")

			switch {
			case tt.wantInvalid != nil:
				var verr *models.ValidationError
				require.ErrorAs(t, err, &verr)
				for _, field := range tt.wantInvalid {
					assert.Contains(t, verr.Fields, field)
				}
				assert.Nil(t, user)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.isParent, user.IsParent)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	password := "secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.User
		readerErr error
		jwtErr    error
		wantErr   error
		wantToken string
	}{
		{
			name:      "successful login",
			email:     "alice@x.com",
			loginPass: password,
			user:      &models.User{ID: 7, Email: "alice@x.com", PasswordHash: string(hashed), IsParent: true},
			wantToken: "token123",
		},
		{
			name:      "unknown email",
			email:     "bob@x.com",
			loginPass: password,
			wantErr:   models.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "carol@x.com",
			loginPass: "wrongpass",
			user:      &models.User{ID: 8, Email: "carol@x.com", PasswordHash: string(hashed)},
			wantErr:   models.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "eve@x.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token generation error",
			email:     "dan@x.com",
			loginPass: password,
			user:      &models.User{ID: 9, Email: "dan@x.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)

			m.users.EXPECT().GetUserByEmail(gomock.Any(), tt.email).Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.loginPass == password {
				m.sessions.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sess *models.Session) error {
						assert.Equal(t, tt.user.ID, sess.UserID)
						assert.Equal(t, tt.user.IsParent, sess.IsParent)
						return nil
					})
				m.tokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tt.wantToken, tt.jwtErr)
			}

			user, token, err := svc.Login(context.Background(), tt.email, tt.loginPass, "")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.user, user)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_GuestLogin(t *testing.T) {
	svc, m := newAuthService(t)

	var saved *models.Session
	m.sessions.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sess *models.Session) error {
			saved = sess
			return nil
		})
	m.tokens.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sessionID string) (string, error) {
			return "guest-" + sessionID, nil
		})

	token, err := svc.GuestLogin(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, models.SessionGuest, saved.Kind)
	assert.Equal(t, int64(0), saved.UserID)
	assert.Equal(t, "guest-"+saved.ID, token)
	assert.Equal(t, models.Guest{}, saved.Identity())
}

func TestAuthService_ReplacesCurrentSession(t *testing.T) {
	password := "secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 7, Email: "alice@x.com", PasswordHash: string(hashed), IsParent: true}
	ctx := context.Background()

	t.Run("login deletes the guest session before saving", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		gomock.InOrder(
			m.sessions.EXPECT().Delete(gomock.Any(), "sid-guest").Return(nil),
			m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		)
		m.tokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("token", nil)

		_, token, err := svc.Login(ctx, user.Email, password, "sid-guest")
		require.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("failed login keeps the current session", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, _, err := svc.Login(ctx, user.Email, "wrong", "sid-guest")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("register replaces the current session", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().CreateUser(gomock.Any(), "b@x.com", gomock.Any(), false).
			Return(&models.User{ID: 8, Email: "b@x.com"}, nil)
		m.sessions.EXPECT().Delete(gomock.Any(), "sid-1").Return(nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.tokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("token", nil)

		_, _, err := svc.Register(ctx, "b@x.com", "pw", false, "sid-1")
		require.NoError(t, err)
	})

	t.Run("delete failure aborts", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.sessions.EXPECT().Delete(gomock.Any(), "sid-1").Return(errors.New("redis down"))

		_, err := svc.GuestLogin(ctx, "sid-1")
		assert.EqualError(t, err, "redis down")
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	m.sessions.EXPECT().Delete(ctx, "sid-1").Return(nil)
	assert.NoError(t, svc.Logout(ctx, "sid-1"))

	m.sessions.EXPECT().Delete(ctx, "sid-2").Return(errors.New("redis down"))
	assert.EqualError(t, svc.Logout(ctx, "sid-2"), "redis down")

	// no session, nothing to delete
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestAuthService_Resolve(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		token        string
		sessionID    string
		tokenErr     error
		session      *models.Session
		storeErr     error
		wantIdentity models.Identity
		wantSession  string
		wantErr      bool
	}{
		{
			name:         "no token",
			wantIdentity: models.Anonymous{},
		},
		{
			name:         "invalid token",
			token:        "garbage",
			tokenErr:     errors.New("bad signature"),
			wantIdentity: models.Anonymous{},
		},
		{
			name:         "unknown session",
			token:        "tok",
			sessionID:    "sid",
			wantIdentity: models.Anonymous{},
		},
		{
			name:         "expired session",
			token:        "tok",
			sessionID:    "sid",
			session:      &models.Session{ID: "sid", Kind: models.SessionGuest, ExpiresAt: now},
			wantIdentity: models.Anonymous{},
		},
		{
			name:         "guest session",
			token:        "tok",
			sessionID:    "sid",
			session:      &models.Session{ID: "sid", Kind: models.SessionGuest, ExpiresAt: now.Add(time.Minute)},
			wantIdentity: models.Guest{},
			wantSession:  "sid",
		},
		{
			name:         "parent session",
			token:        "tok",
			sessionID:    "sid",
			session:      &models.Session{ID: "sid", Kind: models.SessionUser, UserID: 3, IsParent: true, ExpiresAt: now.Add(time.Minute)},
			wantIdentity: models.Authenticated{UserID: 3, IsParent: true},
			wantSession:  "sid",
		},
		{
			name:         "store error",
			token:        "tok",
			sessionID:    "sid",
			storeErr:     errors.New("redis down"),
			wantIdentity: models.Anonymous{},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t, services.WithAuthClock(func() time.Time { return now }))

			if tt.token != "" {
				m.tokens.EXPECT().GetSessionID(gomock.Any(), tt.token).Return(tt.sessionID, tt.tokenErr)
			}
			if tt.token != "" && tt.tokenErr == nil {
				m.sessions.EXPECT().Get(gomock.Any(), tt.sessionID).Return(tt.session, tt.storeErr)
			}

			identity, sessionID, err := svc.Resolve(context.Background(), tt.token)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantIdentity, identity)
			assert.Equal(t, tt.wantSession, sessionID)
		})
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("guest", func(t *testing.T) {
		svc, _ := newAuthService(t)
		user, err := svc.CurrentUser(ctx, models.Guest{})
		require.NoError(t, err)
		assert.Equal(t, &models.CurrentUser{ID: 0, Email: "guest", IsParent: false, IsGuest: true}, user)
	})

	t.Run("authenticated", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetUser(ctx, int64(4)).Return(&models.User{ID: 4, Email: "p@x.com", IsParent: true}, nil)

		user, err := svc.CurrentUser(ctx, models.Authenticated{UserID: 4, IsParent: true})
		require.NoError(t, err)
		assert.Equal(t, &models.CurrentUser{ID: 4, Email: "p@x.com", IsParent: true}, user)
	})

	t.Run("account removed", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetUser(ctx, int64(5)).Return(nil, nil)

		_, err := svc.CurrentUser(ctx, models.Authenticated{UserID: 5})
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, err := svc.CurrentUser(ctx, models.Anonymous{})
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})
}
