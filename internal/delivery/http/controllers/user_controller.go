package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// SyncUserRequest is the body the auth provider posts to POST /users when a
// user signs up.
type SyncUserRequest struct {
	ExternalAuthID string `json:"external_auth_id" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,max=100"`
	FirstName      string `json:"first_name" validate:"max=100"`
	LastName       string `json:"last_name" validate:"max=100"`
	PhotoURL       string `json:"photo_url" validate:"omitempty,url"`
}

// UserSuccessResponse is the success envelope for user endpoints.
type UserSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// SyncUser godoc
// @Summary Sync a user from the auth provider
// @Description Creates the user for an auth-provider principal. Replays of the same principal return the existing user with 200.
// @Tags users
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared webhook secret"
// @Param user body SyncUserRequest true "Auth-provider user"
// @Success 201 {object} controllers.UserSuccessResponse "user created"
// @Success 200 {object} controllers.UserSuccessResponse "user already synced"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users [post]
func (c *UserController) SyncUser(w http.ResponseWriter, r *http.Request) {
	var req SyncUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in := domain.NewUser(req.ExternalAuthID, req.Email, req.Username, req.FirstName, req.LastName, req.PhotoURL, time.Now().UTC())
	user, created, err := c.Service.SyncUser(r.Context(), in)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
		c.Logger.InfoContext(r.Context(), "user synced", "user_id", user.ID)
	}
	helpers.WriteJSONSuccess(w, status, user)
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} controllers.UserSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := c.Service.GetUser(r.Context(), r.PathValue("userID"))
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
