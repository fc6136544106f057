package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"volunteerhub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_GetMissingKey(t *testing.T) {
	s := openTestStore(t)

	var v map[string]string
	err := s.Get("nothing", &v)
	assert.ErrorIs(t, err, types.ErrKeyNotFound)
}

func TestStore_PutGetRoundtrip(t *testing.T) {
	s := openTestStore(t)

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, s.Put("counts", in))

	var out map[string]int
	require.NoError(t, s.Get("counts", &out))
	assert.Equal(t, in, out)
}

func TestStore_PutReplacesWholeValue(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put("list", []string{"one", "two"}))
	require.NoError(t, s.Put("list", []string{"three"}))

	var out []string
	require.NoError(t, s.Get("list", &out))
	assert.Equal(t, []string{"three"}, out)
}

func TestStore_CorruptDataPreservedUntilReset(t *testing.T) {
	s := openTestStore(t)
	dir := s.dir

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	var v map[string]string
	err := s.Get("broken", &v)
	assert.ErrorIs(t, err, types.ErrCorruptData)

	// The corrupt bytes stay on disk until explicitly reset.
	raw, err := s.Raw("broken")
	require.NoError(t, err)
	assert.Equal(t, []byte("{not json"), raw)

	require.NoError(t, s.Reset("broken"))

	err = s.Get("broken", &v)
	assert.ErrorIs(t, err, types.ErrKeyNotFound)
}

func TestStore_DeleteMissingKeyIsNoOp(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Delete("absent"))
}

func TestStore_SubscribeNotifiesOnPutAndDelete(t *testing.T) {
	s := openTestStore(t)

	var seen []string
	cancel := s.Subscribe(func(key string) {
		seen = append(seen, key)
	})

	require.NoError(t, s.Put("alpha", 1))
	require.NoError(t, s.Delete("alpha"))
	assert.Equal(t, []string{"alpha", "alpha"}, seen)

	cancel()
	require.NoError(t, s.Put("beta", 2))
	assert.Len(t, seen, 2)
}
