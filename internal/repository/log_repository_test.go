package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oshilog/internal/model"
	"oshilog/internal/storage"
)

func newTestLogRepo(t *testing.T) *LogRepo {
	t.Helper()
	kv, err := storage.NewFileKV(t.TempDir())
	require.NoError(t, err)
	repo, err := NewLogRepo(context.Background(), kv, nil)
	require.NoError(t, err)
	return repo
}

func sampleLog(seatID, title string) LogData {
	return LogData{
		SeatID:   seatID,
		Title:    title,
		Date:     "2024-04-20",
		ShowTime: "matinee",
		TimeType: model.TimeMatinee,
		Theater:  "Grand Theater",
	}
}

func TestLogRepoAddAndGetBySeatID(t *testing.T) {
	repo := newTestLogRepo(t)
	ctx := context.Background()

	created, err := repo.Add(ctx, sampleLog("1F-20-20", "Show A"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, ok := repo.GetBySeatID("1F-20-20")
	require.True(t, ok)
	assert.Equal(t, created, got)

	_, ok = repo.GetBySeatID("1F-20-21")
	assert.False(t, ok)
}

func TestLogRepoCurrentLogIsMostRecent(t *testing.T) {
	repo := newTestLogRepo(t)
	ctx := context.Background()

	_, err := repo.Add(ctx, sampleLog("2F-2-LB7", "First visit"))
	require.NoError(t, err)
	second, err := repo.Add(ctx, sampleLog("2F-2-LB7", "Second visit"))
	require.NoError(t, err)

	// last written wins for the current view
	cur, ok := repo.GetBySeatID("2F-2-LB7")
	require.True(t, ok)
	assert.Equal(t, second.ID, cur.ID)

	// but the older log is still there
	all := repo.GetAllBySeatID("2F-2-LB7")
	require.Len(t, all, 2)
	assert.Equal(t, "Second visit", all[0].Title)
	assert.Equal(t, "First visit", all[1].Title)
}

func TestLogRepoUpdateReplacesFieldsKeepsID(t *testing.T) {
	repo := newTestLogRepo(t)
	ctx := context.Background()

	created, err := repo.Add(ctx, sampleLog("1F-5-20", "Show A"))
	require.NoError(t, err)

	data := sampleLog("1F-5-20", "Show A (evening)")
	data.ShowTime = "soiree"
	data.TimeType = model.TimeSoiree
	require.NoError(t, repo.Update(ctx, created.ID, data))

	got, ok := repo.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Show A (evening)", got.Title)
	assert.Equal(t, "soiree", got.ShowTime)
}

func TestLogRepoDeleteAndUnknownIDNoOp(t *testing.T) {
	repo := newTestLogRepo(t)
	ctx := context.Background()

	created, err := repo.Add(ctx, sampleLog("1F-1-23", "Show A"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "missing"))
	require.Len(t, repo.All(), 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.Empty(t, repo.All())
}

func TestLogRepoRoundTrip(t *testing.T) {
	kv, err := storage.NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	repo, err := NewLogRepo(ctx, kv, nil)
	require.NoError(t, err)
	created, err := repo.Add(ctx, LogData{
		SeatID:   "3F-2-RB8",
		Title:    "Show B",
		Date:     "2024-05-02",
		ShowTime: "18:30",
		TimeType: model.TimeCustom,
		Theater:  "Grand Theater",
		Memo:     "great view",
	})
	require.NoError(t, err)

	reloaded, err := NewLogRepo(ctx, kv, nil)
	require.NoError(t, err)
	got, ok := reloaded.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}
