package sqlfql

import (
	"github.com/freeeve/machparse/ast"
	"github.com/kicktipper/sqlfql/fql"
)

const opDelete = "DELETE"

// translateDelete emits delete(select("ref", get(<matched>))). A
// WHERE-less DELETE is permitted and resolves against the table's
// all_<table> intersection; since get requires its set to match
// exactly one document, deleting every row of a multi-row table this
// way surfaces as an Internal error from the document database rather
// than a bulk delete. That behavior is preserved deliberately — see
// DESIGN.md.
func translateDelete(stmt *ast.DeleteStmt) (string, fql.Expr, error) {
	table, err := parseSingleTable(opDelete, stmt.Table)
	if err != nil {
		return "", nil, err
	}
	cmp, err := parseWhere(opDelete, stmt.Where)
	if err != nil {
		return "", nil, err
	}
	matched := matchedRecords(table, cmp)
	ref := fql.Select{Path: []any{"ref"}, From: fql.Get{Ref: matched}}
	return table, fql.Delete{Ref: ref}, nil
}
