package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/forgo/biblio/internal/middleware"
	"github.com/forgo/biblio/internal/model"
	"github.com/forgo/biblio/internal/service"
)

// AuthService defines the auth operations the handler needs
type AuthService interface {
	Register(ctx context.Context, req service.RegisterRequest) (*service.AuthResult, error)
	Login(ctx context.Context, req service.LoginRequest) (*service.AuthResult, error)
	GetMember(ctx context.Context, memberID string) (*model.Member, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the register endpoint request body
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents the login endpoint request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse represents a token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// MemberResponse represents a member in API responses
type MemberResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AuthResponse combines the member and their token
type AuthResponse struct {
	Member MemberResponse `json:"member"`
	Token  TokenResponse  `json:"token"`
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, toAuthResponse(result), map[string]string{
		"self": "/v1/auth/me",
	})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toAuthResponse(result), map[string]string{
		"self": "/v1/auth/me",
	})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	memberID := middleware.GetMemberID(r.Context())
	if memberID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	member, err := h.authService.GetMember(r.Context(), memberID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toMemberResponse(member), nil)
}

func toAuthResponse(result *service.AuthResult) AuthResponse {
	return AuthResponse{
		Member: toMemberResponse(result.Member),
		Token: TokenResponse{
			AccessToken: result.Token,
			TokenType:   "Bearer",
			ExpiresIn:   result.ExpiresIn,
		},
	}
}

func toMemberResponse(member *model.Member) MemberResponse {
	return MemberResponse{
		ID:        member.ID,
		Username:  member.Username,
		Role:      string(member.Role),
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
		UpdatedAt: member.UpdatedAt.Format(time.RFC3339),
	}
}
