package logic

import (
	"fmt"
	"testing"

	"github.com/blues/pts/internal/auth"
	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// testEnv wires the repositories against a fresh in-memory database.
type testEnv struct {
	db           *gorm.DB
	users        *repository.UserRepo
	projects     *repository.ProjectRepo
	contributors *repository.ContributorRepo
	issues       *repository.IssueRepo
	comments     *repository.CommentRepo
	tokens       *repository.TokenRepo
	gate         *AccessGate
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	// A second pooled connection would see its own empty memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	projects := repository.NewProjectRepo(db)
	contributors := repository.NewContributorRepo(db)
	return &testEnv{
		db:           db,
		users:        repository.NewUserRepo(db),
		projects:     projects,
		contributors: contributors,
		issues:       repository.NewIssueRepo(db),
		comments:     repository.NewCommentRepo(db),
		tokens:       repository.NewTokenRepo(db),
		gate:         NewAccessGate(projects, contributors),
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := &model.User{
		Email:        email,
		FirstName:    "Test",
		LastName:     fmt.Sprintf("User-%s", email),
		PasswordHash: hash,
		IsActive:     true,
	}
	require.NoError(t, e.users.Create(user))
	return user
}

func (e *testEnv) createProject(t *testing.T, author *model.User) *model.Project {
	t.Helper()
	project := &model.Project{
		Title:    "Alpha",
		Type:     model.ProjectTypeBackEnd,
		AuthorID: author.ID,
	}
	require.NoError(t, e.projects.Create(project))
	return project
}

func (e *testEnv) addContributor(t *testing.T, project *model.Project, user *model.User, permission model.Permission) *model.Contributor {
	t.Helper()
	contributor := &model.Contributor{
		UserID:     user.ID,
		ProjectID:  project.ID,
		Permission: permission,
		Role:       "dev",
	}
	require.NoError(t, e.contributors.Create(contributor))
	return contributor
}

func (e *testEnv) createIssue(t *testing.T, project *model.Project, author, assignee *model.User) *model.Issue {
	t.Helper()
	issue := &model.Issue{
		Title:      "crash on start",
		Tag:        model.IssueTagBug,
		Priority:   model.IssuePriorityHigh,
		Status:     model.IssueStatusTodo,
		ProjectID:  project.ID,
		AuthorID:   author.ID,
		AssigneeID: assignee.ID,
	}
	require.NoError(t, e.issues.Create(issue))
	return issue
}

func (e *testEnv) createComment(t *testing.T, issue *model.Issue, author *model.User) *model.Comment {
	t.Helper()
	comment := &model.Comment{
		Description: "looking into it",
		AuthorID:    author.ID,
		IssueID:     issue.ID,
	}
	require.NoError(t, e.comments.Create(comment))
	return comment
}
