package logic

import (
	"testing"

	"github.com/blues/pts/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIssueInput(assigneeID uint) IssueInput {
	return IssueInput{
		Title:      "crash on start",
		Desc:       "panics during boot",
		Tag:        model.IssueTagBug,
		Priority:   model.IssuePriorityHigh,
		Status:     model.IssueStatusTodo,
		AssigneeID: assigneeID,
	}
}

func TestIssueCreateMemberGated(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@example.com")
	stranger := env.createUser(t, "stranger@example.com")
	project := env.createProject(t, author)

	issueLogic := NewIssueLogic(env.issues, env.users, env.gate, nil)

	_, err := issueLogic.Create(project.ID, stranger.ID, validIssueInput(author.ID))
	assert.ErrorIs(t, err, ErrForbidden)

	issue, err := issueLogic.Create(project.ID, author.ID, validIssueInput(author.ID))
	require.NoError(t, err)
	assert.Equal(t, author.ID, issue.AuthorID)
}

func TestIssueRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@example.com")
	assignee := env.createUser(t, "assignee@example.com")
	project := env.createProject(t, author)
	env.addContributor(t, project, assignee, model.PermissionGranted)

	issueLogic := NewIssueLogic(env.issues, env.users, env.gate, nil)

	in := validIssueInput(assignee.ID)
	created, err := issueLogic.Create(project.ID, author.ID, in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	listed, err := issueLogic.List(project.ID, assignee.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	got := listed[0]
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Desc, got.Desc)
	assert.Equal(t, in.Tag, got.Tag)
	assert.Equal(t, in.Priority, got.Priority)
	assert.Equal(t, in.Status, got.Status)
	assert.Equal(t, in.AssigneeID, got.AssigneeID)
	assert.Equal(t, author.ID, got.AuthorID)
}

func TestIssueCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@example.com")
	project := env.createProject(t, author)

	issueLogic := NewIssueLogic(env.issues, env.users, env.gate, nil)

	in := validIssueInput(author.ID)
	in.Tag = "FEATURE"
	_, err := issueLogic.Create(project.ID, author.ID, in)
	assert.True(t, IsValidation(err))

	in = validIssueInput(9999)
	_, err = issueLogic.Create(project.ID, author.ID, in)
	assert.True(t, IsValidation(err))
}

func TestIssueUpdateIssueAuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	projectAuthor := env.createUser(t, "owner@example.com")
	issueAuthor := env.createUser(t, "filer@example.com")
	project := env.createProject(t, projectAuthor)
	env.addContributor(t, project, issueAuthor, model.PermissionGranted)
	issue := env.createIssue(t, project, issueAuthor, issueAuthor)

	issueLogic := NewIssueLogic(env.issues, env.users, env.gate, nil)

	// Owning the project is not enough; only the issue author may mutate.
	in := validIssueInput(issueAuthor.ID)
	in.Status = model.IssueStatusDone
	_, err := issueLogic.Update(project.ID, issue.ID, projectAuthor.ID, in)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := issueLogic.Update(project.ID, issue.ID, issueAuthor.ID, in)
	require.NoError(t, err)
	assert.Equal(t, model.IssueStatusDone, updated.Status)
}

func TestIssueScopedToProject(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@example.com")
	projectA := env.createProject(t, author)
	projectB := env.createProject(t, author)
	issue := env.createIssue(t, projectA, author, author)

	issueLogic := NewIssueLogic(env.issues, env.users, env.gate, nil)

	// An issue addressed under the wrong project is absent, not leaked.
	_, err := issueLogic.Update(projectB.ID, issue.ID, author.ID, validIssueInput(author.ID))
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, issueLogic.Delete(projectB.ID, issue.ID, author.ID), ErrNotFound)
}

func TestIssueDeleteCascadesComments(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@example.com")
	project := env.createProject(t, author)
	issue := env.createIssue(t, project, author, author)
	env.createComment(t, issue, author)

	issueLogic := NewIssueLogic(env.issues, env.users, env.gate, nil)

	require.NoError(t, issueLogic.Delete(project.ID, issue.ID, author.ID))

	comments, err := env.comments.ByIssue(issue.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
