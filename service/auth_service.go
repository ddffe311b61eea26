package services

import (
	"fmt"
	"log"

	"chronos/api/chronos"
	"chronos/session"
)

// AuthService performs login/registration against the backend and
// keeps the persisted session in step. Unlike the calendar paths,
// auth failures are surfaced to the caller verbatim.
type AuthService struct {
	chronosApi  chronos.ChronosAPI
	sess        *session.Session
	sessionPath string
}

// NewAuthService constructs an AuthService.
func NewAuthService(chronosApi chronos.ChronosAPI, sess *session.Session, sessionPath string) *AuthService {
	return &AuthService{
		chronosApi:  chronosApi,
		sess:        sess,
		sessionPath: sessionPath,
	}
}

// Login exchanges credentials for a token, installs it on the API
// client and persists it in the session file.
func (as *AuthService) Login(username, password string) error {
	resp, err := as.chronosApi.Login(username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	as.sess.Token = resp.Token
	as.sess.UserID = resp.UserID
	as.chronosApi.SetToken(resp.Token)

	if err := as.sess.Save(as.sessionPath); err != nil {
		log.Printf("[AuthService] Failed to persist session: %v", err)
	}
	log.Printf("[AuthService] Logged in as user %d", resp.UserID)
	return nil
}

// Register creates a new account. The caller still needs to log in.
func (as *AuthService) Register(username, email, password string) error {
	if err := as.chronosApi.Register(username, email, password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	log.Printf("[AuthService] Registered account %q", username)
	return nil
}
