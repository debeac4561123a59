package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
)

// skillService implements the SkillUsecase interface.
type skillService struct {
	skills        repository.SkillRepository
	subcategories repository.SubcategoryRepository
	logger        *slog.Logger
}

// NewSkillService is the constructor for skillService.
func NewSkillService(
	skills repository.SkillRepository,
	subcategories repository.SubcategoryRepository,
	logger *slog.Logger,
) SkillUsecase {
	return &skillService{skills: skills, subcategories: subcategories, logger: logger}
}

func (srv *skillService) List(ctx context.Context, filter repository.SkillFilter) ([]entity.Skill, error) {
	skills, err := srv.skills.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list skills")
	}

	return skills, nil
}

func (srv *skillService) Get(ctx context.Context, id int64) (*entity.Skill, error) {
	skill, err := srv.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, domainerrors.ErrSkillNotFound
		}

		return nil, errors.Wrap(err, "find skill")
	}

	return skill, nil
}

// Create stores a new skill. The owner comes from the token, never the body.
func (srv *skillService) Create(ctx context.Context, ownerID int64, input SkillInput) (*entity.Skill, error) {
	if _, err := srv.subcategories.FindByID(ctx, input.SubcategoryID); err != nil {
		if errors.Is(err, repository.ErrSubcategoryNotFound) {
			return nil, domainerrors.BadRequest("subcategory does not exist")
		}

		return nil, errors.Wrap(err, "check subcategory")
	}

	skill := entity.Skill{
		UserID:           ownerID,
		SubcategoryID:    input.SubcategoryID,
		Title:            input.Title,
		Description:      input.Description,
		TypeOfProposal:   input.TypeOfProposal,
		Images:           input.Images,
		ModifiedDatetime: time.Now(),
	}
	if skill.Images == nil {
		skill.Images = []string{}
	}

	if err := srv.skills.Create(ctx, &skill); err != nil {
		return nil, errors.Wrap(err, "create skill")
	}
	srv.logger.Info("skill created", "skillID", skill.ID, "userID", ownerID)

	return &skill, nil
}

// Update replaces the writable fields of the skill with the given id. The id
// comes from the URL and the owner stays whoever created the skill.
func (srv *skillService) Update(ctx context.Context, id int64, input SkillInput) (*entity.Skill, error) {
	skill, err := srv.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, domainerrors.ErrSkillNotFound
		}

		return nil, errors.Wrap(err, "find skill")
	}

	skill.SubcategoryID = input.SubcategoryID
	skill.Title = input.Title
	skill.Description = input.Description
	skill.TypeOfProposal = input.TypeOfProposal
	if input.Images != nil {
		skill.Images = input.Images
	}
	skill.ModifiedDatetime = time.Now()

	if err := srv.skills.Update(ctx, skill); err != nil {
		return nil, errors.Wrap(err, "update skill")
	}

	return skill, nil
}

func (srv *skillService) Delete(ctx context.Context, id int64) error {
	if err := srv.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return domainerrors.ErrSkillNotFound
		}

		return errors.Wrap(err, "delete skill")
	}

	return nil
}
