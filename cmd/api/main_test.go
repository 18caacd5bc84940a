package main

import (
	"path/filepath"
	"testing"

	"infusion-rate-calculator/internal/adapters/storage/formulary"
	"infusion-rate-calculator/internal/domain/drugs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFormulary_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formulary.yaml")
	require.NoError(t, exportFormulary(path))

	c, err := formulary.Load(path)
	require.NoError(t, err)
	assert.Equal(t, drugs.Builtin().All(), c.All())
}

func TestExportFormulary_BadPath(t *testing.T) {
	err := exportFormulary(filepath.Join(t.TempDir(), "missing", "formulary.yaml"))
	assert.Error(t, err)
}
