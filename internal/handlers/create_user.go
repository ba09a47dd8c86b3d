package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-greeter/internal/logger"
	"github.com/sbilibin2017/gw-greeter/internal/middlewares"
	"github.com/sbilibin2017/gw-greeter/internal/models"
)

//go:generate mockgen -source=create_user.go -destination=mock_user_creator.go -package=handlers

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, username string) (*models.User, error)
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// The id of the created user is not part of the response.
// @Summary Create a user
// @Description Parses the body and answers with an application-level status id.
// @Description 1 created, 86 missing content type, 87 wrong shape, 88 syntax error, 89 unreadable body, 99 unknown.
// @Tags users
// @Accept json
// @Produce json
// @Param createUser body models.CreateUser true "User creation request"
// @Success 201 {object} models.StatusMessage "User created"
// @Failure 400 {object} models.StatusMessage "Request body rejected"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator, extractor *JSONExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUser

		if err := extractor.Extract(w, r, &req); err != nil {
			msg := rejectionStatus(err)
			logger.Log.Debugw("create user rejected",
				"request_id", middlewares.RequestIDFromContext(r.Context()),
				"status_id", msg.ID,
				"err", err,
			)
			writeJSON(w, http.StatusBadRequest, msg)
			return
		}

		user, err := svc.Create(r.Context(), *req.Username)
		if err != nil {
			logger.Log.Errorw("failed to create user",
				"request_id", middlewares.RequestIDFromContext(r.Context()),
				"err", err,
			)
			writeJSON(w, http.StatusBadRequest, RejectionUnknown.StatusMessage())
			return
		}

		writeJSON(w, http.StatusCreated, models.StatusMessage{
			ID:          StatusIDCreated,
			Description: user.Username + " created",
		})
	}
}
