package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Norumai01/HonkaiBackendV2/internal/config"
	"github.com/Norumai01/HonkaiBackendV2/internal/dtos"
	"github.com/Norumai01/HonkaiBackendV2/internal/middleware"
	"github.com/Norumai01/HonkaiBackendV2/internal/services"
	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

type AuthController struct {
	userService      services.UserService
	jwtService       services.JWTService
	blacklistService services.BlacklistService
	cfg              *config.Config
}

func NewAuthController(
	userService services.UserService,
	jwtService services.JWTService,
	blacklistService services.BlacklistService,
	cfg *config.Config,
) *AuthController {
	return &AuthController{
		userService:      userService,
		jwtService:       jwtService,
		blacklistService: blacklistService,
		cfg:              cfg,
	}
}

var authValidate = validator.New()

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Identity and password are required", nil, err,
		)
		return
	}

	user, err := c.userService.Authenticate(r.Context(), req.Identity, req.Password)
	if err != nil {
		// One generic message for every credential failure: callers
		// cannot learn whether the identity or the password was wrong.
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid credentials.", nil, err,
		)
		return
	}

	token, err := c.jwtService.GenerateToken(user)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Error occurred while attempting to login.", nil, err,
		)
		return
	}

	utils.SetJWTCookie(w, token, c.cfg.TokenExpiry)

	utils.Logger.Infof("Successfully logged in: %s.", user.Username)
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{User: user})
}

// ---------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------

// Logout is idempotent and never fails from the caller's point of view:
// a missing token means already-logged-out, and internal revocation
// errors are swallowed so logout cannot be used to probe token
// validity. The cookie is always cleared.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	defer func() {
		utils.ClearJWTCookie(w)
		utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Logged out successfully."})
	}()

	tokenStr := middleware.ExtractToken(r)
	if tokenStr == "" {
		return
	}

	// Best-effort identity for the audit value; token freshness is
	// irrelevant here, a stale token still deserves blacklisting.
	subject, err := c.jwtService.ExtractSubject(tokenStr)
	if err != nil {
		utils.Logger.WithError(err).Warn("Could not extract identity from token during logout")
		subject = "unknown"
	}

	if err := c.blacklistService.Revoke(r.Context(), tokenStr, subject); err != nil {
		utils.Logger.WithError(err).Error("Error occurred while attempting to logout.")
	}
}

// ---------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid registration fields", nil, err,
		)
		return
	}

	user, err := c.userService.Register(r.Context(), req.Username, req.Email, req.Password, req.Bio)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrUsernameExists):
			utils.RespondErrorWithCode(
				w, http.StatusConflict, utils.ErrCodeConflict, "User with username already exists.", nil,
			)
		case errors.Is(err, utils.ErrEmailExists):
			utils.RespondErrorWithCode(
				w, http.StatusConflict, utils.ErrCodeConflict, "User with email already exists.", nil,
			)
		default:
			utils.RespondErrorWithCode(
				w, http.StatusInternalServerError, utils.ErrCodeInternal, "Error occurred while creating user.", nil, err,
			)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.LoginResponse{User: user})
}

// ---------------------------------------------------------------------
// ListUsers – debug/administrative listing, requires a principal
// ---------------------------------------------------------------------

func (c *AuthController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.userService.GetAllUsers(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Unable to obtain the list of all users.", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.UsersResponse{Users: users})
}
