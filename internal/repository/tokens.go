package repository

import (
	"errors"
	"time"

	"github.com/blues/pts/internal/model"
	"gorm.io/gorm"
)

// TokenRepo persists refresh tokens.
type TokenRepo struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) *TokenRepo {
	return &TokenRepo{db: db}
}

func (r *TokenRepo) Create(token *model.RefreshToken) error {
	return r.db.Create(token).Error
}

// ByHash returns the token row or (nil, nil) when absent.
func (r *TokenRepo) ByHash(hash string) (*model.RefreshToken, error) {
	var token model.RefreshToken
	if err := r.db.Where("token_hash = ?", hash).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// Revoke marks the token unusable without deleting the row.
func (r *TokenRepo) Revoke(id uint, now time.Time) error {
	return r.db.Model(&model.RefreshToken{}).
		Where("id = ?", id).
		Update("revoked_at", now).Error
}

// PurgeDead deletes tokens that are expired or revoked. Returns the
// number of rows removed.
func (r *TokenRepo) PurgeDead(now time.Time) (int64, error) {
	result := r.db.
		Where("expires_at < ? OR revoked_at IS NOT NULL", now).
		Delete(&model.RefreshToken{})
	return result.RowsAffected, result.Error
}
