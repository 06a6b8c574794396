package sqlfql

import (
	"testing"

	"github.com/freeeve/machparse"
	"github.com/freeeve/machparse/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_translateAlter(t *testing.T) {
	t.Parallel()
	t.Run("drop-default", func(t *testing.T) {
		t.Parallel()
		stmt, err := machparse.Parse("ALTER TABLE users ALTER COLUMN name DROP DEFAULT")
		require.NoError(t, err)
		expr, err := translateAlter(stmt.(*ast.AlterTableStmt))
		require.NoError(t, err)
		got, err := jsonOf(t, expr)
		require.NoError(t, err)
		assert.Contains(t, got, `"default":null`)
	})

	t.Run("add-column-rejected", func(t *testing.T) {
		t.Parallel()
		stmt, err := machparse.Parse("ALTER TABLE users ADD COLUMN age INT")
		require.NoError(t, err)
		_, err = translateAlter(stmt.(*ast.AlterTableStmt))
		require.Error(t, err)
		assert.ErrorContains(t, err, "only ALTER COLUMN is currently supported")
	})
}

func Test_translateDrop(t *testing.T) {
	t.Parallel()
	stmt, err := machparse.Parse("DROP TABLE users")
	require.NoError(t, err)
	expr, err := translateDrop(stmt.(*ast.DropTableStmt))
	require.NoError(t, err)
	got, err := jsonOf(t, expr)
	require.NoError(t, err)
	assert.Contains(t, got, `"delete"`)
	assert.Contains(t, got, "users")
}
