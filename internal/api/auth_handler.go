package api

import (
	"net/http"

	"github.com/hbnb-platform/hbnb-api/internal/api/shared"
	"github.com/hbnb-platform/hbnb-api/internal/platform/logger"
	"github.com/hbnb-platform/hbnb-api/internal/service"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
)

// AuthHandler handles authentication requests.
type AuthHandler struct {
	facade     service.Facade
	jwtService auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(facade service.Facade, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		facade:     facade,
		jwtService: jwtService,
	}
}

// Login handles POST /auth/login. It exchanges an email and password for an
// access token carrying the user's ID and admin flag.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.facade.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.IsAdmin)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	logger.FromContext(r.Context()).Info("user logged in", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
