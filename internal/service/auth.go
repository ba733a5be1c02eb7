package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/forgo/biblio/internal/model"
	"github.com/forgo/biblio/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// Credential constraints
	minPasswordLength = 8
	maxPasswordLength = 128
	maxUsernameLength = 64
)

// MemberRepository defines the interface for member storage
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id string) (*model.Member, error)
	GetByUsername(ctx context.Context, username string) (*model.Member, error)
	SetRole(ctx context.Context, memberID string, role model.MemberRole) error
}

// AuthService handles member registration, login and token validation
type AuthService struct {
	memberRepo MemberRepository
	tokens     *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(memberRepo MemberRepository, tokens *jwt.Service) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		tokens:     tokens,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string
	Password string
}

// AuthResult represents a successful registration or login
type AuthResult struct {
	Member    *model.Member
	Token     string
	ExpiresIn int64
}

// Register creates a new member account with the user role
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	username := strings.TrimSpace(req.Username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	member := &model.Member{
		Username: username,
		Hash:     hash,
		Role:     model.MemberRoleUser,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	slog.Info("member registered",
		slog.String("member_id", member.ID),
		slog.String("username", member.Username))

	return s.issueToken(member)
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string
	Password string
}

// Login authenticates a member with username/password
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	username := strings.TrimSpace(req.Username)

	member, err := s.memberRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrInvalidCredentials
	}

	if !checkPassword(req.Password, member.Hash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(member)
}

// GetMember retrieves a member by ID
func (s *AuthService) GetMember(ctx context.Context, memberID string) (*model.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// ValidateToken validates an access token and returns its claims
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return s.tokens.Validate(token)
}

// EnsureAdmin creates the bootstrap admin account if it does not exist, and
// promotes it if an earlier run left it with a lesser role. Called once at
// startup; a no-op when the admin is already in place.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	existing, err := s.memberRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role == model.MemberRoleAdmin {
			return nil
		}
		slog.Info("promoting bootstrap admin", slog.String("member_id", existing.ID))
		return s.memberRepo.SetRole(ctx, existing.ID, model.MemberRoleAdmin)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	member := &model.Member{
		Username: username,
		Hash:     hash,
		Role:     model.MemberRoleAdmin,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return err
	}

	slog.Info("bootstrap admin created", slog.String("member_id", member.ID))
	return nil
}

func (s *AuthService) issueToken(member *model.Member) (*AuthResult, error) {
	token, err := s.tokens.Sign(jwt.Claims{
		Subject:  member.ID,
		MemberID: member.ID,
		Username: member.Username,
		Role:     string(member.Role),
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Member:    member,
		Token:     token,
		ExpiresIn: int64(s.tokens.GetExpiration().Seconds()),
	}, nil
}

// Helper functions

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}
