package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantity262/Myweb/internal/apperr"
	"github.com/quantity262/Myweb/internal/models"
)

type fakeMessages struct {
	rows   []models.Message
	nextID int64
}

func (f *fakeMessages) Create(ctx context.Context, userID int64, username, content string) (int64, error) {
	f.nextID++
	f.rows = append(f.rows, models.Message{
		ID:       f.nextID,
		UserID:   userID,
		Username: username,
		Content:  content,
		Status:   models.MessageActive,
	})
	return f.nextID, nil
}

func (f *fakeMessages) ListActive(ctx context.Context, limit int) ([]models.Message, error) {
	var out []models.Message
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].Status == models.MessageActive {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeMessages) ListAll(ctx context.Context) ([]models.Message, error) {
	out := make([]models.Message, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		out = append(out, f.rows[i])
	}
	return out, nil
}

func (f *fakeMessages) SoftDelete(ctx context.Context, id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = models.MessageDeleted
			return nil
		}
	}
	return apperr.ErrNotFound
}

func TestCreateMessage_LengthBoundaries(t *testing.T) {
	t.Parallel()

	svc := NewMessageService(&fakeMessages{})
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "alice", strings.Repeat("x", 1000))
	require.NoError(t, err)

	_, err = svc.Create(ctx, 1, "alice", strings.Repeat("x", 1001))
	require.ErrorIs(t, err, apperr.ErrContentTooLong)

	// the limit counts characters, not bytes
	_, err = svc.Create(ctx, 1, "alice", strings.Repeat("留", 1000))
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, "alice", strings.Repeat("留", 1001))
	require.ErrorIs(t, err, apperr.ErrContentTooLong)

	_, err = svc.Create(ctx, 1, "alice", "   \t\n  ")
	require.ErrorIs(t, err, apperr.ErrEmptyContent)

	_, err = svc.Create(ctx, 1, "alice", "")
	require.ErrorIs(t, err, apperr.ErrEmptyContent)
}

func TestCreateMessage_StoresTrimmedWithSnapshot(t *testing.T) {
	t.Parallel()

	repo := &fakeMessages{}
	svc := NewMessageService(repo)

	id, err := svc.Create(context.Background(), 9, "bob", "  hello  ")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Equal(t, "hello", repo.rows[0].Content)
	require.Equal(t, "bob", repo.rows[0].Username)
	require.Equal(t, int64(9), repo.rows[0].UserID)
}

func TestSoftDelete_AdminOnly(t *testing.T) {
	t.Parallel()

	repo := &fakeMessages{}
	svc := NewMessageService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, "alice", "hi")
	require.NoError(t, err)

	err = svc.SoftDelete(ctx, id, models.RoleUser)
	require.ErrorIs(t, err, apperr.ErrForbidden)

	err = svc.SoftDelete(ctx, id, models.RoleAdmin)
	require.NoError(t, err)

	err = svc.SoftDelete(ctx, 999, models.RoleAdmin)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSoftDelete_VisibilitySplit(t *testing.T) {
	t.Parallel()

	repo := &fakeMessages{}
	svc := NewMessageService(repo)
	ctx := context.Background()

	keep, err := svc.Create(ctx, 1, "alice", "keep me")
	require.NoError(t, err)
	gone, err := svc.Create(ctx, 1, "alice", "delete me")
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, gone, models.RoleAdmin))

	active, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, keep, active[0].ID)

	all, err := svc.AdminList(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	statuses := map[int64]string{all[0].ID: all[0].Status, all[1].ID: all[1].Status}
	require.Equal(t, models.MessageDeleted, statuses[gone])
	require.Equal(t, models.MessageActive, statuses[keep])
}
