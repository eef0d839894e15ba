package repository

import (
	"errors"

	"github.com/blues/pts/internal/model"
	"gorm.io/gorm"
)

// IssueRepo persists issues and handles the comment cascade.
type IssueRepo struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) *IssueRepo {
	return &IssueRepo{db: db}
}

func (r *IssueRepo) Create(issue *model.Issue) error {
	return r.db.Create(issue).Error
}

// ByProjectAndID returns the issue only when it belongs to the project,
// or (nil, nil) otherwise.
func (r *IssueRepo) ByProjectAndID(projectID, issueID uint) (*model.Issue, error) {
	var issue model.Issue
	err := r.db.Where("project_id = ? AND id = ?", projectID, issueID).
		First(&issue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &issue, nil
}

func (r *IssueRepo) ByProject(projectID uint) ([]model.Issue, error) {
	var issues []model.Issue
	if err := r.db.Where("project_id = ?", projectID).Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *IssueRepo) Save(issue *model.Issue) error {
	return r.db.Save(issue).Error
}

// Delete removes the issue and its comments in one transaction.
func (r *IssueRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("issue_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Issue{}, id).Error
	})
}
