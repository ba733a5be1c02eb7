package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/biblio/internal/database"
	"github.com/forgo/biblio/internal/model"
)

// MemberRepository handles member data access
type MemberRepository struct {
	db database.Database
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db database.Database) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member. The username column carries a unique index;
// collisions surface as database.ErrDuplicate.
func (r *MemberRepository) Create(ctx context.Context, member *model.Member) error {
	role := member.Role
	if role == "" {
		role = model.MemberRoleUser
	}

	query := `
		CREATE member CONTENT {
			username: $username,
			hash: $hash,
			role: $role,
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"username": member.Username,
		"hash":     member.Hash,
		"role":     string(role),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: username already exists", database.ErrDuplicate)
		}
		return err
	}

	created := rows(result)
	if len(created) == 0 {
		return errors.New("no result returned")
	}
	data, ok := created[0].(map[string]interface{})
	if !ok {
		return errors.New("unexpected result format")
	}

	member.ID = recordID(data["id"])
	member.Role = role
	member.CreatedAt = parseTime(data["created_at"])
	member.UpdatedAt = parseTime(data["updated_at"])
	return nil
}

// GetByID retrieves a member by ID. Returns (nil, nil) when the ID does not resolve.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*model.Member, error) {
	if !isRecordRef(id) {
		return nil, nil
	}

	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	member, ok := parseMember(result)
	if !ok {
		return nil, nil
	}
	return member, nil
}

// GetByUsername retrieves a member by username. Returns (nil, nil) when absent.
func (r *MemberRepository) GetByUsername(ctx context.Context, username string) (*model.Member, error) {
	query := `SELECT * FROM member WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	member, ok := parseMember(result)
	if !ok {
		return nil, nil
	}
	return member, nil
}

// SetRole updates a member's role
func (r *MemberRepository) SetRole(ctx context.Context, memberID string, role model.MemberRole) error {
	query := `UPDATE type::record($id) SET role = $role, updated_at = time::now()`
	vars := map[string]interface{}{
		"id":   memberID,
		"role": string(role),
	}

	return r.db.Execute(ctx, query, vars)
}

func parseMember(result interface{}) (*model.Member, bool) {
	data, ok := row(result)
	if !ok {
		return nil, false
	}
	return memberFromRow(data), true
}

func memberFromRow(data map[string]interface{}) *model.Member {
	return &model.Member{
		ID:        recordID(data["id"]),
		Username:  parseString(data["username"]),
		Hash:      parseString(data["hash"]),
		Role:      model.MemberRole(parseString(data["role"])),
		CreatedAt: parseTime(data["created_at"]),
		UpdatedAt: parseTime(data["updated_at"]),
	}
}
