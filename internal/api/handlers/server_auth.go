package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	entuser "crewcycle.io/crewcycle/ent/user"
	"crewcycle.io/crewcycle/internal/api/middleware"
	apperrors "crewcycle.io/crewcycle/internal/pkg/errors"
	"crewcycle.io/crewcycle/internal/pkg/logger"
)

const passwordHashCost = 12

// RegisterRequest is the applicant self-signup payload.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
}

// Register handles POST /auth/register. New accounts always start as
// applicants; staff roles are assigned afterwards by privileged users.
func (s *Server) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "username, email and a password of at least 8 characters are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		respondError(c, err)
		return
	}

	u, err := s.client.User.Create().
		SetID(generateID()).
		SetUsername(req.Username).
		SetEmail(req.Email).
		SetDisplayName(req.DisplayName).
		SetPasswordHash(string(hash)).
		SetRole(entuser.RoleAPPLICANT).
		Save(c.Request.Context())
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, APIError{
				Code:    apperrors.CodeNameExists,
				Message: "username or email is already taken",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserInfo(u))
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the minted token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserInfo  `json:"user"`
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "username and password are required")
		return
	}

	user, err := s.client.User.Query().
		Where(entuser.UsernameEQ(req.Username)).
		Where(entuser.EnabledEQ(true)).
		Only(c.Request.Context())
	if err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, APIError{
			Code:    apperrors.CodeInvalidCredentials,
			Message: "invalid username or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, APIError{
			Code:    apperrors.CodeInvalidCredentials,
			Message: "invalid username or password",
		})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.Username)
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		respondError(c, err)
		return
	}

	now := time.Now()
	if err := s.client.User.UpdateOneID(user.ID).SetLastLoginAt(now).Exec(c.Request.Context()); err != nil {
		logger.Warn("failed to update last_login_at", zap.Error(err), zap.String("user_id", user.ID))
	}

	if s.audit != nil {
		if err := s.audit.LogAction(c.Request.Context(), "user.login", "user", user.ID, user.ID, nil); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "user.login"),
				zap.String("user_id", user.ID),
			)
		}
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserInfo(user),
	})
}

// GetCurrentUser handles GET /auth/me.
func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{
			Code:    apperrors.CodeNotAuthenticated,
			Message: "authentication required",
		})
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, APIError{
			Code:    apperrors.CodeUserNotFound,
			Message: "user not found",
		})
		return
	}

	c.JSON(http.StatusOK, toUserInfo(user))
}

// ChangePasswordRequest is the password rotation payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword handles POST /auth/change-password.
func (s *Server) ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{
			Code:    apperrors.CodeNotAuthenticated,
			Message: "authentication required",
		})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "old_password and a new_password of at least 8 characters are required")
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, APIError{
			Code:    apperrors.CodeUserNotFound,
			Message: "user not found",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		c.JSON(http.StatusBadRequest, APIError{
			Code:    apperrors.CodeInvalidCredentials,
			Message: "current password is incorrect",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), passwordHashCost)
	if err != nil {
		logger.Error("failed to hash new password", zap.Error(err), zap.String("user_id", userID))
		respondError(c, err)
		return
	}

	if err := s.client.User.UpdateOneID(userID).
		SetPasswordHash(string(hash)).
		Exec(c.Request.Context()); err != nil {
		logger.Error("failed to update password", zap.Error(err), zap.String("user_id", userID))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HashPassword hashes a password using bcrypt (used by the seed command).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
