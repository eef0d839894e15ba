package logic

import (
	"testing"

	"github.com/blues/pts/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributorAddAuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@example.com")
	member := env.createUser(t, "member@example.com")
	other := env.createUser(t, "other@example.com")
	project := env.createProject(t, author)
	env.addContributor(t, project, member, model.PermissionGranted)

	contributorLogic := NewContributorLogic(env.contributors, env.users, env.gate)

	// Even members may not manage the roster.
	_, err := contributorLogic.Add(project.ID, member.ID, other.ID, model.PermissionGranted, "dev")
	assert.ErrorIs(t, err, ErrForbidden)

	contributor, err := contributorLogic.Add(project.ID, author.ID, other.ID, model.PermissionGranted, "dev")
	require.NoError(t, err)
	assert.Equal(t, other.ID, contributor.UserID)
}

func TestContributorAddValidation(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@example.com")
	member := env.createUser(t, "member@example.com")
	project := env.createProject(t, author)
	env.addContributor(t, project, member, model.PermissionGranted)

	contributorLogic := NewContributorLogic(env.contributors, env.users, env.gate)

	_, err := contributorLogic.Add(project.ID, author.ID, 9999, model.PermissionGranted, "dev")
	assert.True(t, IsValidation(err))

	_, err = contributorLogic.Add(project.ID, author.ID, member.ID, "maybe", "dev")
	assert.True(t, IsValidation(err))

	_, err = contributorLogic.Add(project.ID, author.ID, member.ID, model.PermissionGranted, "dev")
	assert.ErrorIs(t, err, ErrDuplicateContributor)
}

func TestContributorNames(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@example.com")
	member := env.createUser(t, "member@example.com")
	stranger := env.createUser(t, "stranger@example.com")
	project := env.createProject(t, author)
	env.addContributor(t, project, member, model.PermissionGranted)

	contributorLogic := NewContributorLogic(env.contributors, env.users, env.gate)

	names, err := contributorLogic.Names(project.ID, member.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{member.LastName}, names)

	_, err = contributorLogic.Names(project.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestContributorRemove(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author@example.com")
	member := env.createUser(t, "member@example.com")
	project := env.createProject(t, author)
	env.addContributor(t, project, member, model.PermissionGranted)

	contributorLogic := NewContributorLogic(env.contributors, env.users, env.gate)

	assert.ErrorIs(t, contributorLogic.Remove(project.ID, member.ID, member.ID), ErrForbidden)
	assert.ErrorIs(t, contributorLogic.Remove(project.ID, author.ID, 9999), ErrNotFound)

	require.NoError(t, contributorLogic.Remove(project.ID, author.ID, member.ID))

	// The row is gone, so membership is too.
	_, err := env.gate.RequireMember(project.ID, member.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
