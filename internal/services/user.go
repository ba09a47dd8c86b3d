package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-greeter/internal/logger"
	"github.com/sbilibin2017/gw-greeter/internal/models"
)

// Error variables
var (
	ErrGenerateUserID = errors.New("failed to generate user id")
)

// IDGenerator returns a new random identifier.
type IDGenerator func() (uuid.UUID, error)

// UserService builds users from create requests. Users are not persisted.
type UserService struct {
	newID IDGenerator
}

// NewUserService creates a UserService that draws ids from uuid.NewRandom.
func NewUserService() *UserService {
	return &UserService{newID: uuid.NewRandom}
}

// NewUserServiceWithGenerator creates a UserService with a custom id source.
func NewUserServiceWithGenerator(gen IDGenerator) *UserService {
	return &UserService{newID: gen}
}

// Create builds a User with a fresh random id for the given username.
func (svc *UserService) Create(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := svc.newID()
	if err != nil {
		logger.Log.Errorw("failed to generate user id", "err", err)
		return nil, errors.Join(ErrGenerateUserID, err)
	}

	user := &models.User{
		ID:       id,
		Username: username,
	}
	logger.Log.Debugw("user created", "user_id", user.ID, "username", user.Username)

	return user, nil
}
