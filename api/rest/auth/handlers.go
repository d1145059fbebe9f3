package auth

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/bookshelf/server/bookshelf/users"
	"codeberg.org/bookshelf/server/internal/auth"
	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// SignInHandler godoc
// @Summary Sign in
// @Description Exchanges an e-mail and password for a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users.Credentials true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /api/v1/auth/signin [post]
func SignInHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds users.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userRepo.Authenticate(c.Request.Context(), creds)
		if err != nil {
			errors.PublicError(c, statusFor(err), err, "Failed to sign in. Please try again.")
			return
		}

		respondWithToken(c, http.StatusOK, user)
	}
}

// SignUpHandler godoc
// @Summary Sign up
// @Description Creates a reader account and signs it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users.Credentials true "Credentials"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /api/v1/auth/signup [post]
func SignUpHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds users.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userRepo.SignUp(c.Request.Context(), creds)
		if err != nil {
			errors.PublicError(c, statusFor(err), err, "Failed to create account. Please try again.")
			return
		}

		respondWithToken(c, http.StatusCreated, user)
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get the authenticated account
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func GetCurrentUserHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			if stderrors.Is(err, users.ErrUserNotFound) {
				errors.NotFound(c, "user")
				return
			}

			errors.PublicError(c, http.StatusInternalServerError, err, "Failed to load account.")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

func respondWithToken(c *gin.Context, status int, user *users.User) {
	token, err := auth.GenerateJWT(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		errors.InternalError(c, "failed to generate token", err)
		return
	}

	c.JSON(status, AuthResponse{
		User:  user,
		Token: token,
	})
}

func statusFor(err error) int {
	switch {
	case stderrors.Is(err, users.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case stderrors.Is(err, users.ErrEmailNotConfirmed), stderrors.Is(err, users.ErrSignupDisabled):
		return http.StatusForbidden
	case stderrors.Is(err, users.ErrUserExists):
		return http.StatusConflict
	case stderrors.Is(err, users.ErrWeakPassword):
		return http.StatusBadRequest
	default:
		return errors.StatusFor(err)
	}
}
