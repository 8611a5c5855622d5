package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honesttour/internal/models/db_models"
	"honesttour/internal/models/response_models"
	"honesttour/pkg/utils"
)

type stubVerifier struct {
	user response_models.SessionUser
	err  error
}

func (s *stubVerifier) Verify(ctx context.Context, credential string) (response_models.SessionUser, error) {
	return s.user, s.err
}

type stubSessionRepo struct {
	sessions map[uuid.UUID]*db_models.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[uuid.UUID]*db_models.Session)}
}

func (s *stubSessionRepo) CreateSession(ctx context.Context, session *db_models.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	stored := *session
	s.sessions[session.ID] = &stored
	return nil
}

func (s *stubSessionRepo) GetSession(ctx context.Context, id uuid.UUID) (*db_models.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	out := *session
	return &out, nil
}

func (s *stubSessionRepo) DeleteSession(ctx context.Context, id uuid.UUID) error {
	delete(s.sessions, id)
	return nil
}

func newTestAuthService(verifier CredentialVerifier, repo *stubSessionRepo, now func() time.Time) *AuthService {
	return &AuthService{
		verifier:    verifier,
		sessionRepo: repo,
		tokens:      utils.NewTokenManager("test-secret", 30*24*time.Hour),
		maxAge:      30 * 24 * time.Hour,
		now:         now,
	}
}

func TestSignInCreatesSessionAndToken(t *testing.T) {
	repo := newStubSessionRepo()
	svc := newTestAuthService(&stubVerifier{user: response_models.SessionUser{
		Name: "Anna", Email: "anna@example.com", Picture: "https://p/a.jpg",
	}}, repo, time.Now)

	resp, err := svc.SignIn(context.Background(), "credential")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "anna@example.com", resp.User.Email)
	assert.Len(t, repo.sessions, 1)

	claims, err := utils.NewTokenManager("test-secret", time.Hour).ValidateToken(resp.Token)
	require.NoError(t, err)
	_, err = uuid.Parse(claims.SessionID)
	assert.NoError(t, err)
}

func TestSignInRejectsBadCredential(t *testing.T) {
	svc := newTestAuthService(&stubVerifier{err: utils.ErrInvalidCredential}, newStubSessionRepo(), time.Now)

	_, err := svc.SignIn(context.Background(), "garbage")
	assert.ErrorIs(t, err, utils.ErrInvalidCredential)
}

func TestGetSessionWithinWindow(t *testing.T) {
	repo := newStubSessionRepo()
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	id := uuid.New()
	repo.sessions[id] = &db_models.Session{ID: id, Name: "Anna", Email: "anna@example.com", CreatedAt: created}

	// 29 days in: still valid
	svc := newTestAuthService(&stubVerifier{}, repo, func() time.Time {
		return created.Add(29 * 24 * time.Hour)
	})

	user, err := svc.GetSession(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", user.Email)
}

func TestGetSessionExpiredIsPurged(t *testing.T) {
	repo := newStubSessionRepo()
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	id := uuid.New()
	repo.sessions[id] = &db_models.Session{ID: id, Email: "anna@example.com", CreatedAt: created}

	svc := newTestAuthService(&stubVerifier{}, repo, func() time.Time {
		return created.Add(30*24*time.Hour + time.Second)
	})

	_, err := svc.GetSession(context.Background(), id.String())
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	assert.Empty(t, repo.sessions)
}

func TestGetSessionUnknownID(t *testing.T) {
	svc := newTestAuthService(&stubVerifier{}, newStubSessionRepo(), time.Now)

	_, err := svc.GetSession(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	_, err = svc.GetSession(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestLogoutDeletesSession(t *testing.T) {
	repo := newStubSessionRepo()
	id := uuid.New()
	repo.sessions[id] = &db_models.Session{ID: id, CreatedAt: time.Now()}

	svc := newTestAuthService(&stubVerifier{}, repo, time.Now)
	require.NoError(t, svc.Logout(context.Background(), id.String()))
	assert.Empty(t, repo.sessions)
}
