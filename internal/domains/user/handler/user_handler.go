package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookreview-backend/internal/domains/user"
	"bookreview-backend/internal/shared/response"
	"bookreview-backend/pkg/logger"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register handles new account creation
// POST /signup
func (h *UserHandler) Register(c *gin.Context) {
	// Step 1: Bind request body
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	// Step 2: Call service
	dto, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			// Duplicate username is a 400 per the API contract
			response.ErrorResponse(c, http.StatusBadRequest, "CONFLICT", "user already exists")
		case isValidationError(err):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("register failed", err)
			response.InternalServerError(c, "server error")
		}
		return
	}

	// Step 3: Return success
	response.Success(c, http.StatusCreated, dto)
}

// Login authenticates a user and returns an access token
// POST /login
func (h *UserHandler) Login(c *gin.Context) {
	// Step 1: Bind request body
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	// Step 2: Call service
	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			response.ErrorResponse(c, http.StatusBadRequest, "INVALID_CREDENTIALS", "invalid credentials")
		case isValidationError(err):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("login failed", err)
			response.InternalServerError(c, "server error")
		}
		return
	}

	// Step 3: Return token
	response.Success(c, http.StatusOK, resp)
}

// isValidationError reports whether err came from DTO validation.
// Store failures never unwrap to validation.Errors, so they fall through
// to the generic 500 path without leaking internal detail.
func isValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
