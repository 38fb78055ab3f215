package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/jarvis787/scribe/internal/common"
)

func NewUserService(db *sql.DB, mb common.MessageProducer, logger *slog.Logger) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		logger: logger,
	}
}

// CreateUser registers a new account and publishes a user.signedup event for
// the welcome mail pipeline. A publish failure is logged but never fails the
// signup itself.
func (s *UserService) CreateUser(ctx context.Context, email, password string, name *string) (*User, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Email:    email,
		Password: password,
		Name:     name,
	}

	if err := s.m.insert(ctx, &u); err != nil {
		return nil, err
	}

	data := struct {
		Email string
		Name  *string
	}{
		Email: u.Email,
		Name:  u.Name,
	}

	msg, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("could not marshal signup event", slog.String("error", err.Error()))
		return &u, nil
	}

	if err := s.mb.Publish(ctx, msg, common.UserSignedUpKey, common.UserExchange); err != nil {
		s.logger.Error("could not publish signup event", slog.String("email", u.Email), slog.String("error", err.Error()))
	}

	return &u, nil
}

// AuthenticateUser resolves a user by exact email and password match.
// Returns ErrNotFound when no such pair exists.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*User, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByCredentials(ctx, email, password)
}
