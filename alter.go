package sqlfql

import (
	"github.com/freeeve/machparse/ast"
	"github.com/kicktipper/sqlfql/fql"
)

const opAlter = "ALTER TABLE"

// translateAlter supports exactly one shape: ALTER TABLE t ALTER
// COLUMN c DROP DEFAULT. Every other action raises NotSupported.
func translateAlter(stmt *ast.AlterTableStmt) (fql.Expr, error) {
	table := stmt.Table.Name()

	if len(stmt.Actions) != 1 {
		return nil, notSupportedf(opAlter, "only a single ALTER COLUMN action is currently supported")
	}
	modify, ok := stmt.Actions[0].(*ast.ModifyColumn)
	if !ok {
		return nil, notSupportedf(opAlter, "only ALTER COLUMN is currently supported")
	}
	if !modify.DropDefault {
		return nil, notSupportedf(opAlter, "only ALTER COLUMN ... DROP DEFAULT is currently supported")
	}

	update := fql.Update{
		Ref: fql.Collection{Name: table},
		Params: fql.Obj{"data": fql.Obj{
			"metadata": fql.Obj{"fields": fql.Obj{modify.Name: fql.Obj{"default": nil}}},
		}},
	}

	expr := fql.Let{
		Bindings: []fql.LetBinding{{Name: "ref", Value: update}},
		In:       fql.Obj{"data": []any{fql.Obj{idColumnName: fql.Var{Name: "ref"}}}},
	}
	return expr, nil
}
