package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookhaven/catalog-api/internal/core/domain"
	"github.com/bookhaven/catalog-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-login limiter (Redis). A nil throttle
// disables limiting.
type LoginThrottle interface {
	Blocked(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}

// AuthHandler implements registration and login.
type AuthHandler struct {
	users    ports.UserService
	throttle LoginThrottle
	log      zerolog.Logger
}

func NewAuthHandler(users ports.UserService, throttle LoginThrottle, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{users: users, throttle: throttle, log: log}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
	Token   string       `json:"token"`
}

// Register handles POST /register. Any payload is accepted: no
// duplicate-username check, no field validation.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	user, err := h.users.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, registerResponse{
		Message: "User registered successfully",
		User:    userResponse{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}

// Login handles POST /login. The username field also accepts an email.
//
// @Summary      Login as a registered user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials (username or email + password)"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()

	if h.throttle != nil {
		blocked, err := h.throttle.Blocked(ctx, req.Username)
		if err != nil {
			h.log.Warn().Err(err).Str("identifier", req.Username).Msg("throttle check failed, allowing attempt")
		} else if blocked {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many failed login attempts, try again later"})
		}
	}

	user, token, err := h.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAuthFailed) {
			if h.throttle != nil {
				if terr := h.throttle.RecordFailure(ctx, req.Username); terr != nil {
					h.log.Warn().Err(terr).Str("identifier", req.Username).Msg("failed to record login failure")
				}
			}
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid username/email or password"})
		}
		return err
	}

	if h.throttle != nil {
		if terr := h.throttle.Reset(ctx, req.Username); terr != nil {
			h.log.Warn().Err(terr).Str("identifier", req.Username).Msg("failed to reset login throttle")
		}
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		User:    userResponse{ID: user.ID, Username: user.Username, Email: user.Email},
		Token:   token,
	})
}
