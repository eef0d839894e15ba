package repository

import (
	"errors"

	"github.com/blues/pts/internal/model"
	"gorm.io/gorm"
)

// CommentRepo persists comments.
type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// ByIssueAndID returns the comment only when it belongs to the issue,
// or (nil, nil) otherwise.
func (r *CommentRepo) ByIssueAndID(issueID, commentID uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("issue_id = ? AND id = ?", issueID, commentID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepo) ByIssue(issueID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("issue_id = ?", issueID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepo) Save(comment *model.Comment) error {
	return r.db.Save(comment).Error
}

func (r *CommentRepo) Delete(id uint) error {
	return r.db.Delete(&model.Comment{}, id).Error
}
