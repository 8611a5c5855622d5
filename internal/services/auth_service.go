package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/idtoken"

	"honesttour/internal/models/db_models"
	"honesttour/internal/models/response_models"
	"honesttour/internal/repositories"
	"honesttour/pkg/utils"
)

// CredentialVerifier checks a third-party identity credential and returns
// the verified user. The credential is never trusted before verification.
type CredentialVerifier interface {
	Verify(ctx context.Context, credential string) (response_models.SessionUser, error)
}

// GoogleVerifier validates Google ID tokens server-side against the
// configured OAuth client id.
type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

func (g *GoogleVerifier) Verify(ctx context.Context, credential string) (response_models.SessionUser, error) {
	payload, err := idtoken.Validate(ctx, credential, g.clientID)
	if err != nil {
		log.Printf("Google credential verification failed: %v", err)
		return response_models.SessionUser{}, utils.ErrInvalidCredential
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return response_models.SessionUser{}, utils.ErrInvalidCredential
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return response_models.SessionUser{Name: name, Email: email, Picture: picture}, nil
}

type AuthServiceInterface interface {
	SignIn(ctx context.Context, credential string) (*response_models.SignInResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response_models.SessionUser, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthService struct {
	verifier    CredentialVerifier
	sessionRepo repositories.SessionRepositoryInterface
	tokens      *utils.TokenManager
	maxAge      time.Duration
	now         func() time.Time
}

func NewAuthService(
	verifier CredentialVerifier,
	sessionRepo repositories.SessionRepositoryInterface,
	tokens *utils.TokenManager,
	maxAge time.Duration,
) AuthServiceInterface {
	return &AuthService{
		verifier:    verifier,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		maxAge:      maxAge,
		now:         time.Now,
	}
}

func (a *AuthService) SignIn(ctx context.Context, credential string) (*response_models.SignInResponse, error) {
	user, err := a.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	session := &db_models.Session{
		Name:    user.Name,
		Email:   user.Email,
		Picture: user.Picture,
	}
	if err := a.sessionRepo.CreateSession(ctx, session); err != nil {
		log.Printf("Error creating session: %v", err)
		return nil, utils.ErrDatabaseError
	}

	token, err := a.tokens.CreateToken(session.ID.String())
	if err != nil {
		return nil, err
	}

	return &response_models.SignInResponse{Token: token, User: user}, nil
}

// GetSession loads a session and enforces the 30-day validity window: a
// stored session past the window is purged and reported absent.
func (a *AuthService) GetSession(ctx context.Context, sessionID string) (*response_models.SessionUser, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}

	session, err := a.sessionRepo.GetSession(ctx, id)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	if a.now().Sub(session.CreatedAt) > a.maxAge {
		if err := a.sessionRepo.DeleteSession(ctx, id); err != nil {
			log.Printf("Error purging expired session: %v", err)
		}
		return nil, utils.ErrSessionNotFound
	}

	return &response_models.SessionUser{
		Name:    session.Name,
		Email:   session.Email,
		Picture: session.Picture,
	}, nil
}

func (a *AuthService) Logout(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return utils.ErrSessionNotFound
	}
	if err := a.sessionRepo.DeleteSession(ctx, id); err != nil {
		log.Printf("Error deleting session: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
