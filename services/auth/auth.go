package auth

import (
	"fmt"

	"mealtrack-go-api/database"
	"mealtrack-go-api/models"
	"mealtrack-go-api/repository"
	"mealtrack-go-api/services/trackLog"
	"mealtrack-go-api/structs"
)

// Result covers every terminal outcome of a login or registration attempt.
type Result int

const (
	ResultOK Result = iota
	ResultInvalidToken
	ResultInvalidPassword
	ResultUnknownUser
	ResultUserExists
	ResultFailed
)

type AuthService struct {
	Users repository.UserRepo

	// reconnect defaults to database.Reconnect; injectable for tests.
	Reconnect func() error
}

func (s *AuthService) reconnect() error {
	if s.Reconnect != nil {
		return s.Reconnect()
	}
	return database.Reconnect()
}

// Login verifies the credentials triple. A user that registered through a
// different, possibly stale, cached connection may not be visible yet; on
// the first user-not-found with a non-empty name the connection is refreshed
// and the whole login runs once more.
func (s *AuthService) Login(credentials structs.CredentialsItem) (*models.User, Result) {
	return s.login(credentials, false)
}

func (s *AuthService) login(credentials structs.CredentialsItem, alreadyAttempted bool) (*models.User, Result) {
	if !database.IsTokenValid(credentials.Token) {
		return nil, ResultInvalidToken
	}

	status, err := s.Users.CheckPassword(credentials)
	if err != nil {
		trackLog.Error(fmt.Sprintf("login: credential check failed: %s", err.Error()), true)
		return nil, ResultFailed
	}

	switch status {
	case repository.StatusUnknownUser:
		if credentials.UserName == "" || alreadyAttempted {
			return nil, ResultUnknownUser
		}
		if err := s.reconnect(); err != nil {
			trackLog.Error(fmt.Sprintf("login: reconnect failed: %s", err.Error()), true)
			return nil, ResultUnknownUser
		}
		return s.login(credentials, true)
	case repository.StatusInvalidToken:
		return nil, ResultInvalidToken
	case repository.StatusInvalidPassword:
		return nil, ResultInvalidPassword
	}

	user, err := s.Users.GetByName(credentials.UserName)
	if err != nil {
		// Positive password check but the record is gone; treat as absent
		// rather than crashing, this should not occur under correct
		// concurrency.
		trackLog.Warning(fmt.Sprintf("login: user vanished after password check: %s", credentials.UserName), true)
		return nil, ResultUnknownUser
	}
	return user, ResultOK
}

// Register creates the user when the token is valid and the name is free.
func (s *AuthService) Register(credentials structs.CredentialsItem) (*models.User, Result) {
	if !database.IsTokenValid(credentials.Token) {
		return nil, ResultInvalidToken
	}
	user, err := s.Users.CreateFromCredentials(credentials)
	if err != nil {
		if err == repository.ErrUserExists {
			return nil, ResultUserExists
		}
		trackLog.Error(fmt.Sprintf("register: create user failed: %s", err.Error()), true)
		return nil, ResultFailed
	}
	return user, ResultOK
}
