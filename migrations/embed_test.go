package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-yandex-mesto/migrations"
)

func TestFS_UpAndDownArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "postgres/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(migrations.FS, down)
		require.NoError(t, err, "нет down-миграции для %s", up)
	}
}
