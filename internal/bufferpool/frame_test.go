package bufferpool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/bufpool/internal/pagestore"
)

func TestFrame_InitialStateIsEmpty(t *testing.T) {
	f := newFrame(pagestore.PageSize)
	require.False(t, f.IsValid())
	require.True(t, f.NotPinned())
	require.False(t, f.IsDirty())
	require.Equal(t, InvalidPageID, f.PageID())
}

func TestFrame_PinUnpinTracksCount(t *testing.T) {
	f := newFrame(pagestore.PageSize)
	f.SetPageID(1)

	f.Pin()
	f.Pin()
	require.Equal(t, 2, f.PinCount())
	require.False(t, f.NotPinned())

	f.Unpin()
	require.Equal(t, 1, f.PinCount())

	f.Unpin()
	require.True(t, f.NotPinned())
}

func TestFrame_ReadClearsDirtyAndSetsPageID(t *testing.T) {
	store := pagestore.NewInMemoryStore()
	pid, err := store.AllocatePage(1)
	require.NoError(t, err)

	f := newFrame(pagestore.PageSize)
	f.MarkDirty()

	require.NoError(t, f.Read(store, pid))
	require.Equal(t, pid, f.PageID())
	require.False(t, f.IsDirty(), "a freshly loaded page must be clean")
}

func TestFrame_ReadFailureLeavesPageIDUnchanged(t *testing.T) {
	store := pagestore.NewInMemoryStore()

	f := newFrame(pagestore.PageSize)
	f.SetPageID(7)

	err := f.Read(store, pagestore.InvalidPageID)
	require.Error(t, err)
	require.Equal(t, pagestore.PageID(7), f.PageID())
}

func TestFrame_WriteClearsDirty(t *testing.T) {
	store := pagestore.NewInMemoryStore()
	pid, err := store.AllocatePage(1)
	require.NoError(t, err)

	f := newFrame(pagestore.PageSize)
	f.SetPageID(pid)
	f.MarkDirty()
	f.Page()[0] = 9

	require.NoError(t, f.Write(store))
	require.False(t, f.IsDirty())

	buf := make([]byte, pagestore.PageSize)
	require.NoError(t, store.ReadPage(pid, buf))
	require.Equal(t, byte(9), buf[0])
}

func TestFrame_Reset(t *testing.T) {
	f := newFrame(pagestore.PageSize)
	f.SetPageID(3)
	f.Pin()
	f.MarkDirty()

	f.Reset()
	require.Equal(t, InvalidPageID, f.PageID())
	require.Equal(t, 0, f.PinCount())
	require.False(t, f.IsDirty())
}
