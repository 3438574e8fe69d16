package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Backend: BackendSQLite, DataDir: "/tmp/data"}.Validate())
	assert.NoError(t, Config{DataDir: "/tmp/data"}.Validate(), "empty backend means sqlite")
	assert.ErrorIs(t, Config{Backend: "postgres", DataDir: "/tmp/data"}.Validate(), ErrBackendUnknown)
	assert.ErrorIs(t, Config{Backend: BackendSQLite}.Validate(), ErrDataDirEmpty)
}
