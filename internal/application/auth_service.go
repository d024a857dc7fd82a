package application

import (
	"context"
	"strings"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
)

func findUserIDByEmail(st *entity.Snapshot, email string) string {
	for id, u := range st.Users {
		if u.Email == email {
			return id
		}
	}
	return ""
}

func (s *Store) storedPassword(plain string) (string, error) {
	if !s.HashPasswords {
		return plain, nil
	}
	return helpers.HashPassword(plain)
}

// Register creates a user with an empty watcher set and returns a credential for it.
func (s *Store) Register(ctx context.Context, email, password, name string) (*entity.AuthResult, error) {
	var (
		res     *entity.AuthResult
		summary entity.UserSummary
	)
	err := s.mutate(ctx, func(st *entity.Snapshot) error {
		if findUserIDByEmail(st, email) != "" {
			return ErrEmailRegistered
		}
		userID, err := GenerateID(func(id string) bool {
			_, ok := st.Users[id]
			return ok
		}, len(st.Users), maxUserID)
		if err != nil {
			return err
		}
		pwd, err := s.storedPassword(password)
		if err != nil {
			return err
		}
		token, err := s.JWT.GenerateToken(userID)
		if err != nil {
			return err
		}
		st.Users[userID] = &entity.User{
			Email:            email,
			Password:         pwd,
			Name:             name,
			WatchedByUserIDs: map[string]bool{},
		}
		res = &entity.AuthResult{Token: token, UserID: atoi(userID)}
		summary = entity.UserSummary{ID: atoi(userID), Email: email, Name: name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", res.UserID).Info("user registered")
	_ = s.indexUser(ctx, summary)
	return res, nil
}

// Login requires an exact email and password match.
func (s *Store) Login(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	var userID string
	err := s.read(func(st *entity.Snapshot) error {
		userID = findUserIDByEmail(st, email)
		if userID == "" || !helpers.PasswordMatches(st.Users[userID].Password, password) {
			return ErrInvalidCredentials
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	token, err := s.JWT.GenerateToken(userID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("generate token failed")
		return nil, err
	}
	return &entity.AuthResult{Token: token, UserID: atoi(userID)}, nil
}

// Authorize resolves an Authorization header value to a user id.
// Any parse failure, and any token naming a user that no longer exists, is an AccessError.
func (s *Store) Authorize(ctx context.Context, authorization string) (string, error) {
	token := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	if token == "" {
		return "", ErrInvalidToken
	}
	claims, err := s.JWT.ParseToken(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	if err := s.AssertValidUserID(ctx, claims.UserID); err != nil {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
