package sqlfql

import (
	"testing"

	"github.com/freeeve/machparse"
	"github.com/freeeve/machparse/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectOf(t *testing.T, sql string) *ast.SelectStmt {
	t.Helper()
	stmt, err := machparse.Parse(sql)
	require.NoError(t, err)
	sel, ok := stmt.(*ast.SelectStmt)
	require.True(t, ok)
	return sel
}

func Test_parseSelectColumns(t *testing.T) {
	t.Parallel()
	t.Run("star", func(t *testing.T) {
		t.Parallel()
		sel := selectOf(t, "SELECT * FROM users")
		cols, star, err := parseSelectColumns(opSelect, sel.Columns)
		require.NoError(t, err)
		assert.True(t, star)
		assert.Empty(t, cols)
	})
	t.Run("aliased-column", func(t *testing.T) {
		t.Parallel()
		sel := selectOf(t, "SELECT users.name AS user_name FROM users")
		cols, star, err := parseSelectColumns(opSelect, sel.Columns)
		require.NoError(t, err)
		assert.False(t, star)
		require.Len(t, cols, 1)
		assert.Equal(t, "name", cols[0].Name)
		assert.Equal(t, "user_name", cols[0].Alias)
		assert.Equal(t, "user_name", cols[0].effectiveName())
	})
}

func Test_parseSingleTable(t *testing.T) {
	t.Parallel()
	t.Run("single-table", func(t *testing.T) {
		t.Parallel()
		sel := selectOf(t, "SELECT * FROM users")
		table, err := parseSingleTable(opSelect, sel.From)
		require.NoError(t, err)
		assert.Equal(t, "users", table)
	})
	t.Run("join-rejected", func(t *testing.T) {
		t.Parallel()
		sel := selectOf(t, "SELECT * FROM a, b")
		_, err := parseSingleTable(opSelect, sel.From)
		require.Error(t, err)
		assert.ErrorContains(t, err, "Only one table per query")
	})
}

func Test_Table_ColumnAliasMap(t *testing.T) {
	t.Parallel()
	tbl := Table{Columns: []Column{
		{Name: "id"},
		{Name: "name", Alias: "user_name"},
	}}
	m := tbl.ColumnAliasMap()
	assert.Equal(t, "id", m["id"])
	assert.Equal(t, "user_name", m["name"])
}
