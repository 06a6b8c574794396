package sqlfql

import (
	"github.com/freeeve/machparse/ast"
	"github.com/kicktipper/sqlfql/fql"
)

const opUpdate = "UPDATE"

// translateUpdate supports a single SET assignment; the document
// database does the merge. The emitted `let`/`do` pair updates the one
// field of the single document get(<matched>) resolves to, then counts
// the matched set and returns that count as the result row.
func translateUpdate(stmt *ast.UpdateStmt) (string, fql.Expr, error) {
	table, err := parseSingleTable(opUpdate, stmt.Table)
	if err != nil {
		return "", nil, err
	}
	if len(stmt.Set) != 1 {
		return "", nil, programmingf(opUpdate, "only a single SET assignment is currently supported")
	}
	assign := stmt.Set[0]
	if assign.Column == nil {
		return "", nil, programmingf(opUpdate, "SET clause is missing a column")
	}
	lit, ok := assign.Expr.(*ast.Literal)
	if !ok {
		return "", nil, notSupportedf(opUpdate, "only literal values are currently supported in SET")
	}
	value, err := ExtractValue(lit)
	if err != nil {
		return "", nil, err
	}

	cmp, err := parseWhere(opUpdate, stmt.Where)
	if err != nil {
		return "", nil, err
	}
	matched := matchedRecords(table, cmp)

	refs := fql.Select{Path: []any{"ref"}, From: fql.Get{Ref: matched}}

	expr := fql.Let{
		Bindings: []fql.LetBinding{
			{Name: "count", Value: fql.Do{Exprs: []fql.Expr{
				fql.Update{
					Ref:    refs,
					Params: fql.Obj{"data": fql.Obj{assign.Column.Name(): value}},
				},
				fql.Count{Set: matched},
			}}},
		},
		In: fql.Obj{"data": []any{fql.Obj{"count": fql.Var{Name: "count"}}}},
	}
	return table, expr, nil
}
