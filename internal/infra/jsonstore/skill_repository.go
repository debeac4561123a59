package jsonstore

import (
	"context"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

const skillsCollection = "skills"

// skillRepository implements repository.SkillRepository over skills.json.
type skillRepository struct {
	store *Store
}

// NewSkillRepository is the constructor for skillRepository.
func NewSkillRepository(store *Store) repository.SkillRepository {
	return &skillRepository{store: store}
}

func (repo *skillRepository) List(_ context.Context, filter repository.SkillFilter) ([]entity.Skill, error) {
	skills := Read[entity.Skill](repo.store, skillsCollection)

	filtered := make([]entity.Skill, 0, len(skills))
	for _, skill := range skills {
		if filter.UserID != nil && skill.UserID != *filter.UserID {
			continue
		}
		if filter.SubcategoryID != nil && skill.SubcategoryID != *filter.SubcategoryID {
			continue
		}
		if filter.TypeOfProposal != nil && skill.TypeOfProposal != *filter.TypeOfProposal {
			continue
		}
		filtered = append(filtered, skill)
	}

	return filtered, nil
}

func (repo *skillRepository) FindByID(_ context.Context, id int64) (*entity.Skill, error) {
	for _, skill := range Read[entity.Skill](repo.store, skillsCollection) {
		if skill.ID == id {
			return &skill, nil
		}
	}

	return nil, repository.ErrSkillNotFound
}

func (repo *skillRepository) Create(_ context.Context, skill *entity.Skill) error {
	return Update(repo.store, skillsCollection, func(skills []entity.Skill) ([]entity.Skill, error) {
		var maxID int64
		for _, existing := range skills {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		skill.ID = maxID + 1

		return append(skills, *skill), nil
	})
}

func (repo *skillRepository) Update(_ context.Context, skill *entity.Skill) error {
	return Update(repo.store, skillsCollection, func(skills []entity.Skill) ([]entity.Skill, error) {
		for i, existing := range skills {
			if existing.ID == skill.ID {
				skills[i] = *skill

				return skills, nil
			}
		}

		return nil, repository.ErrSkillNotFound
	})
}

func (repo *skillRepository) Delete(_ context.Context, id int64) error {
	return Update(repo.store, skillsCollection, func(skills []entity.Skill) ([]entity.Skill, error) {
		filtered := make([]entity.Skill, 0, len(skills))
		for _, skill := range skills {
			if skill.ID != id {
				filtered = append(filtered, skill)
			}
		}
		if len(filtered) == len(skills) {
			return nil, repository.ErrSkillNotFound
		}

		return filtered, nil
	})
}
