package notify

import (
	"testing"
	"time"

	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func newTestRepo(t *testing.T) *repository.NotificationRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repository.Migrate(db))
	return repository.NewNotificationRepo(db)
}

func TestDispatcherWritesNotifications(t *testing.T) {
	notifications := newTestRepo(t)
	dispatcher, err := NewDispatcher(notifications, 2)
	require.NoError(t, err)
	defer dispatcher.Close()

	issue := &model.Issue{ID: 1, ProjectID: 2, AuthorID: 3, AssigneeID: 4, Title: "crash on start"}
	dispatcher.IssueAssigned(issue)
	dispatcher.CommentPosted(issue, &model.Comment{ID: 5, IssueID: 1, AuthorID: 4})

	// Writes happen off the calling goroutine.
	require.Eventually(t, func() bool {
		assigned, err := notifications.ByUser(4, 10)
		if err != nil || len(assigned) != 1 {
			return false
		}
		commented, err := notifications.ByUser(3, 10)
		return err == nil && len(commented) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assigned, err := notifications.ByUser(4, 10)
	require.NoError(t, err)
	assert.Equal(t, model.NotificationIssueAssigned, assigned[0].Type)
	assert.Contains(t, assigned[0].Payload, `"issue_id":1`)

	commented, err := notifications.ByUser(3, 10)
	require.NoError(t, err)
	assert.Equal(t, model.NotificationCommentPosted, commented[0].Type)
}

func TestDispatcherClosedPoolDropsQuietly(t *testing.T) {
	notifications := newTestRepo(t)
	dispatcher, err := NewDispatcher(notifications, 1)
	require.NoError(t, err)
	dispatcher.Close()

	// Submissions after Close are logged and dropped, never panic.
	issue := &model.Issue{ID: 1, ProjectID: 2, AuthorID: 3, AssigneeID: 4, Title: "crash on start"}
	dispatcher.IssueAssigned(issue)

	time.Sleep(50 * time.Millisecond)
	rows, err := notifications.ByUser(4, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
