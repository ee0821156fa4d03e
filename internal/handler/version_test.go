package handler

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Alchemy_Go/internal/catalog"
)

func TestHandleVersion(t *testing.T) {
	t.Run("with catalog", func(t *testing.T) {
		store := newTestStore(t)
		c, err := store.Current()
		require.NoError(t, err)

		w := httptest.NewRecorder()
		HandleVersion(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

		require.Equal(t, http.StatusOK, w.Code)
		info := decodeBody[VersionInfo](t, w)
		assert.NotEmpty(t, info.Version)
		assert.Equal(t, runtime.Version(), info.GoVersion)
		assert.Equal(t, c.Version(), info.CatalogVersion)
	})

	t.Run("before first load", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleVersion(catalog.NewStore(nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "catalog_version")
	})
}
