package usecase

import (
	"context"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

// SkillInput carries the writable skill fields. The owner and timestamps are
// always server-assigned.
type SkillInput struct {
	SubcategoryID  int64               `json:"subcategoryId" validate:"required"`
	Title          string              `json:"title" validate:"required"`
	Description    string              `json:"description"`
	TypeOfProposal entity.ProposalType `json:"type_of_proposal" validate:"required,oneof=offer request"`
	Images         []string            `json:"images"`
}

// SkillUsecase defines the skill listing operations.
type SkillUsecase interface {
	// List returns skills matching the filter, newest data as stored.
	List(ctx context.Context, filter repository.SkillFilter) ([]entity.Skill, error)

	// Get returns one skill by id.
	Get(ctx context.Context, id int64) (*entity.Skill, error)

	// Create stores a new skill owned by ownerID. The subcategory must
	// exist.
	Create(ctx context.Context, ownerID int64, input SkillInput) (*entity.Skill, error)

	// Update replaces the writable fields of an existing skill.
	Update(ctx context.Context, id int64, input SkillInput) (*entity.Skill, error)

	// Delete removes a skill by id.
	Delete(ctx context.Context, id int64) error
}
