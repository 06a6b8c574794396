package sqlfql

import (
	"testing"

	"github.com/freeeve/machparse"
	"github.com/freeeve/machparse/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_translateUpdate(t *testing.T) {
	t.Parallel()
	t.Run("single-assignment", func(t *testing.T) {
		t.Parallel()
		stmt, err := machparse.Parse("UPDATE users SET name = 'bob' WHERE id = '42'")
		require.NoError(t, err)
		table, expr, err := translateUpdate(stmt.(*ast.UpdateStmt))
		require.NoError(t, err)
		assert.Equal(t, "users", table)
		got, err := jsonOf(t, expr)
		require.NoError(t, err)
		assert.Contains(t, got, `"count"`)
		assert.Contains(t, got, "bob")
	})
}

func Test_translateDelete(t *testing.T) {
	t.Parallel()
	stmt, err := machparse.Parse("DELETE FROM users WHERE id = '42'")
	require.NoError(t, err)
	table, expr, err := translateDelete(stmt.(*ast.DeleteStmt))
	require.NoError(t, err)
	assert.Equal(t, "users", table)
	got, err := jsonOf(t, expr)
	require.NoError(t, err)
	assert.Contains(t, got, "delete")
}
