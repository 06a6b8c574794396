package sqlfql

import (
	"github.com/freeeve/machparse"
	"github.com/freeeve/machparse/ast"
)

const opParse = "parse"

// parseSingleStatement splits query into statements and rejects
// anything but exactly one, matching the "one SQL string, one
// statement" invariant the rest of the translator relies on.
func parseSingleStatement(query string) (ast.Statement, error) {
	stmts, err := machparse.ParseAll(query)
	if err != nil {
		return nil, programmingf(opParse, "%s", err.Error())
	}
	if len(stmts) != 1 {
		return nil, notSupportedf(opParse, "Only one SQL statement at a time is currently supported")
	}
	return stmts[0], nil
}

// formatSQL re-serializes a parsed statement to upper-cased, single
// line SQL, for inclusion in error logs.
func formatSQL(stmt ast.Statement) string {
	return machparse.String(stmt)
}
