package repository

import (
	"errors"

	"github.com/blues/pts/internal/model"
	"gorm.io/gorm"
)

// ProjectRepo persists projects and handles the delete cascade.
type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

// ByID returns the project or (nil, nil) when absent.
func (r *ProjectRepo) ByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// VisibleTo returns the union of projects the user authored and
// projects where the user holds a contributor row.
func (r *ProjectRepo) VisibleTo(userID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.
		Distinct("project.*").
		Joins("LEFT JOIN contributor ON contributor.project_id = project.id AND contributor.deleted_at IS NULL").
		Where("project.author_id = ? OR contributor.user_id = ?", userID, userID).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepo) Save(project *model.Project) error {
	return r.db.Save(project).Error
}

// Delete removes the project together with its contributors, issues and
// the comments on those issues, in one transaction.
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var issueIDs []uint
		if err := tx.Model(&model.Issue{}).Where("project_id = ?", id).Pluck("id", &issueIDs).Error; err != nil {
			return err
		}
		if len(issueIDs) > 0 {
			if err := tx.Where("issue_id IN ?", issueIDs).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", id).Delete(&model.Issue{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Contributor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, id).Error
	})
}
