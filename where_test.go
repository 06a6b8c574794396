package sqlfql

import (
	"testing"

	"github.com/freeeve/machparse"
	"github.com/freeeve/machparse/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whereOf(t *testing.T, sql string) ast.Expr {
	t.Helper()
	stmt, err := machparse.Parse(sql)
	require.NoError(t, err)
	sel, ok := stmt.(*ast.SelectStmt)
	require.True(t, ok)
	return sel.Where
}

func Test_parseWhere(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		sql             string
		wantErrContains string
		check           func(t *testing.T, c Comparisons)
	}{
		{
			name: "no-where",
			sql:  "SELECT * FROM users",
			check: func(t *testing.T, c Comparisons) {
				assert.False(t, c.HasID)
				assert.Empty(t, c.ByIndex)
			},
		},
		{
			name: "equality-on-id",
			sql:  "SELECT * FROM users WHERE id = '42'",
			check: func(t *testing.T, c Comparisons) {
				assert.True(t, c.HasID)
				assert.Equal(t, "42", c.ByID)
			},
		},
		{
			name: "equality-on-field",
			sql:  "SELECT * FROM users WHERE name = 'alice'",
			check: func(t *testing.T, c Comparisons) {
				require.Len(t, c.ByIndex, 1)
				assert.Equal(t, "name", c.ByIndex[0].Field)
				assert.Equal(t, "alice", c.ByIndex[0].Value)
			},
		},
		{
			name: "and-joined",
			sql:  "SELECT * FROM users WHERE name = 'alice' AND age = 30",
			check: func(t *testing.T, c Comparisons) {
				require.Len(t, c.ByIndex, 2)
			},
		},
		{
			name:            "greater-than-rejected",
			sql:             "SELECT * FROM users WHERE age > 1",
			wantErrContains: "Only column-value equality conditions",
		},
		{
			name:            "between-rejected",
			sql:             "SELECT * FROM users WHERE age BETWEEN 1 AND 2",
			wantErrContains: "BETWEEN not yet supported",
		},
		{
			name:            "or-rejected",
			sql:             "SELECT * FROM users WHERE a = 1 OR b = 2",
			wantErrContains: "OR not yet supported",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := parseWhere("SELECT", whereOf(t, tt.sql))
			if tt.wantErrContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErrContains)
				assert.ErrorIs(t, err, ErrNotSupported)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func Test_matchedRecords(t *testing.T) {
	t.Parallel()
	t.Run("no-where-uses-all-index", func(t *testing.T) {
		t.Parallel()
		expr := matchedRecords("users", Comparisons{})
		data, err := jsonOf(t, expr)
		require.NoError(t, err)
		assert.Contains(t, data, "all_users")
	})
	t.Run("by-id-uses-ref", func(t *testing.T) {
		t.Parallel()
		expr := matchedRecords("users", Comparisons{HasID: true, ByID: "42"})
		data, err := jsonOf(t, expr)
		require.NoError(t, err)
		assert.Contains(t, data, `"ref"`)
		assert.Contains(t, data, "42")
	})
}
