package reactions

import (
	"context"
	"errors"
	"time"

	"churchfeed-app/internal/domain/reactions"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, postID, userID uuid.UUID) (*reactions.Reaction, error) {
	var r reactions.Reaction
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (s *GormStore) Upsert(ctx context.Context, r *reactions.Reaction) error {
	r.CreatedAt = time.Now()
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "created_at"}),
	}).Create(r).Error
}

func (s *GormStore) Delete(ctx context.Context, postID, userID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&reactions.Reaction{}).Error
}

func (s *GormStore) ListByPost(ctx context.Context, postID uuid.UUID) ([]reactions.Reaction, error) {
	var rows []reactions.Reaction
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&rows).Error
	return rows, err
}
