package repository

import (
	"context"
	"errors"

	"skillswap/internal/domain/entity"
)

// ErrSkillNotFound is returned when a skill is not found.
var ErrSkillNotFound = errors.New("skill not found")

// SkillFilter narrows a skill listing. Nil fields are ignored.
type SkillFilter struct {
	UserID         *int64
	SubcategoryID  *int64
	TypeOfProposal *entity.ProposalType
}

// SkillRepository defines the operations for skill persistence.
type SkillRepository interface {
	List(ctx context.Context, filter SkillFilter) ([]entity.Skill, error)
	FindByID(ctx context.Context, id int64) (*entity.Skill, error)
	Create(ctx context.Context, skill *entity.Skill) error
	Update(ctx context.Context, skill *entity.Skill) error
	Delete(ctx context.Context, id int64) error
}
