package reference

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasRowsAndNotes(t *testing.T) {
	tbl := Default()

	require.Len(t, tbl.Entries, 7)
	assert.NotEmpty(t, tbl.Notes)
	assert.NotEmpty(t, tbl.Abbreviations)
	for _, e := range tbl.Entries {
		assert.NotEmpty(t, e.Agent)
		assert.NotEmpty(t, e.InitialDose, e.Agent)
	}
}

func TestGetReference(t *testing.T) {
	tbl := Default()

	r := chi.NewRouter()
	RegisterRoutes(r, tbl)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reference", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got tableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Entries, len(tbl.Entries))
	assert.Equal(t, tbl.Entries[0].Agent, got.Entries[0].Agent)
	assert.Equal(t, tbl.Entries[0].MaxDose, got.Entries[0].MaxDose)
	assert.Equal(t, tbl.Notes, got.Notes)
}
