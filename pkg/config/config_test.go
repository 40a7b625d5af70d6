package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathsFromDataPath(t *testing.T) {
	t.Setenv("DATA_PATH", "/srv/respond")
	t.Setenv("RESPOND_TEMPLATE_PATH", "")
	t.Setenv("RESPOND_DB_PATH", "")

	assert.Equal(t, "/srv/respond", GetDataPath())
	assert.Equal(t, filepath.Join("/srv/respond", "templates"), GetTemplatePath())
	assert.Equal(t, filepath.Join("/srv/respond", "plat-respond.db"), GetDatabasePath())
}

func TestPathOverrides(t *testing.T) {
	t.Setenv("DATA_PATH", "/srv/respond")
	t.Setenv("RESPOND_TEMPLATE_PATH", "/tmp/tpl")
	t.Setenv("RESPOND_DB_PATH", "/tmp/db.sqlite")

	assert.Equal(t, "/tmp/tpl", GetTemplatePath())
	assert.Equal(t, "/tmp/db.sqlite", GetDatabasePath())
}

func TestDefaultDataPath(t *testing.T) {
	t.Setenv("DATA_PATH", "")
	assert.Equal(t, ".data", filepath.Base(GetDataPath()))
}
