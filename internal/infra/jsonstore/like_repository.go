package jsonstore

import (
	"context"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

const likesCollection = "likes"

// likeRepository implements repository.LikeRepository over likes.json.
type likeRepository struct {
	store *Store
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(store *Store) repository.LikeRepository {
	return &likeRepository{store: store}
}

func (repo *likeRepository) List(_ context.Context) ([]entity.Like, error) {
	return listRecords[entity.Like](repo.store, likesCollection)
}

func (repo *likeRepository) FindByID(_ context.Context, id int64) (*entity.Like, error) {
	return findRecord(repo.store, likesCollection,
		func(l entity.Like) bool { return l.ID == id }, repository.ErrLikeNotFound)
}

func (repo *likeRepository) FindByPair(_ context.Context, fromUserID, toUserID int64) (*entity.Like, error) {
	return findRecord(repo.store, likesCollection,
		func(l entity.Like) bool { return l.FromUserID == fromUserID && l.ToUserID == toUserID },
		repository.ErrLikeNotFound)
}

func (repo *likeRepository) CountByTarget(_ context.Context, toUserID int64) (int, error) {
	count := 0
	for _, like := range Read[entity.Like](repo.store, likesCollection) {
		if like.ToUserID == toUserID {
			count++
		}
	}

	return count, nil
}

func (repo *likeRepository) Create(_ context.Context, like *entity.Like) error {
	return createRecord(repo.store, likesCollection, like,
		func(l entity.Like) int64 { return l.ID },
		func(l *entity.Like, id int64) { l.ID = id })
}

func (repo *likeRepository) Delete(_ context.Context, id int64) error {
	return deleteRecord(repo.store, likesCollection, id,
		func(l entity.Like) int64 { return l.ID }, repository.ErrLikeNotFound)
}
