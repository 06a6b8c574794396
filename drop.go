package sqlfql

import (
	"github.com/freeeve/machparse/ast"
	"github.com/kicktipper/sqlfql/fql"
)

const opDrop = "DROP TABLE"

// translateDrop emits delete(collection(t)); the returned ref is
// shaped by shapeRefRow, stripping the metadata key.
func translateDrop(stmt *ast.DropTableStmt) (fql.Expr, error) {
	if len(stmt.Tables) != 1 {
		return nil, notSupportedf(opDrop, "Only one table per query is currently supported")
	}
	return fql.Delete{Ref: fql.Collection{Name: stmt.Tables[0].Name()}}, nil
}
