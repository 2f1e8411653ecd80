package static_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heavyk/kiss/core/static"
)

func TestMount(t *testing.T) {
	t.Parallel()

	t.Run("rejects_prefix_without_leading_slash", func(t *testing.T) {
		t.Parallel()
		srv := static.New()
		err := srv.Mount("assets", t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, static.ErrMountPrefix)
		assert.Empty(t, srv.Mounts())
	})

	t.Run("empty_prefix_defaults_to_root", func(t *testing.T) {
		t.Parallel()
		srv := static.New()
		require.NoError(t, srv.Mount("", t.TempDir()))
		mounts := srv.Mounts()
		require.Len(t, mounts, 1)
		assert.Equal(t, "/", mounts[0].Prefix)
	})

	t.Run("normalizes_trailing_slash", func(t *testing.T) {
		t.Parallel()
		srv := static.New()
		require.NoError(t, srv.Mount("/assets", t.TempDir()))
		assert.Equal(t, "/assets/", srv.Mounts()[0].Prefix)
	})

	t.Run("resolves_directory_to_absolute_path", func(t *testing.T) {
		t.Parallel()
		srv := static.New()
		require.NoError(t, srv.Mount("/", "./testdata"))
		assert.True(t, filepath.IsAbs(srv.Mounts()[0].Dir))
	})

	t.Run("preserves_registration_order", func(t *testing.T) {
		t.Parallel()
		srv := static.New()
		require.NoError(t, srv.Mount("/", t.TempDir()))
		require.NoError(t, srv.Mount("/assets/", t.TempDir()))
		require.NoError(t, srv.Mount("/docs/", t.TempDir()))

		mounts := srv.Mounts()
		require.Len(t, mounts, 3)
		assert.Equal(t, "/", mounts[0].Prefix)
		assert.Equal(t, "/assets/", mounts[1].Prefix)
		assert.Equal(t, "/docs/", mounts[2].Prefix)
	})
}
