package repository

import (
	"errors"

	"github.com/blues/pts/internal/model"
	"gorm.io/gorm"
)

// ContributorRepo persists project membership rows.
type ContributorRepo struct {
	db *gorm.DB
}

func NewContributorRepo(db *gorm.DB) *ContributorRepo {
	return &ContributorRepo{db: db}
}

func (r *ContributorRepo) Create(contributor *model.Contributor) error {
	return r.db.Create(contributor).Error
}

// Exists reports whether the user holds a contributor row on the project.
func (r *ContributorRepo) Exists(projectID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Contributor{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ByProject lists the project's contributors with their users preloaded.
func (r *ContributorRepo) ByProject(projectID uint) ([]model.Contributor, error) {
	var contributors []model.Contributor
	err := r.db.Preload("User").
		Where("project_id = ?", projectID).
		Find(&contributors).Error
	if err != nil {
		return nil, err
	}
	return contributors, nil
}

// ByProjectAndUser returns the row or (nil, nil) when absent.
func (r *ContributorRepo) ByProjectAndUser(projectID, userID uint) (*model.Contributor, error) {
	var contributor model.Contributor
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&contributor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contributor, nil
}

func (r *ContributorRepo) Delete(id uint) error {
	return r.db.Delete(&model.Contributor{}, id).Error
}
