package sqlfql

import (
	"context"

	"github.com/freeeve/machparse/ast"
	"github.com/kicktipper/sqlfql/dbclient"
	"github.com/kicktipper/sqlfql/fql"
)

const opInsert = "INSERT"

// translateInsert builds the record to write from the statement's
// column/value lists and the collection's stored field metadata:
// every field in metadata is written, taking the provided value or,
// if omitted, the metadata default. Given columns that are not present
// in metadata are silently dropped: the record only ever carries
// metadata fields.
func translateInsert(ctx context.Context, db *executor, stmt *ast.InsertStmt) (fql.Expr, error) {
	table, err := parseSingleTable(opInsert, stmt.Table)
	if err != nil {
		return nil, err
	}
	if len(stmt.Columns) != len(valuesRow(stmt)) {
		return nil, programmingf(opInsert, "column count does not match value count")
	}

	given := fql.Obj{}
	for i, col := range stmt.Columns {
		lit, ok := valuesRow(stmt)[i].(*ast.Literal)
		if !ok {
			return nil, notSupportedf(opInsert, "only literal values are currently supported in INSERT")
		}
		v, err := ExtractValue(lit)
		if err != nil {
			return nil, err
		}
		given[col.Name()] = v
	}

	fields, err := db.fieldsMetadataOf(ctx, table)
	if err != nil {
		return nil, err
	}

	record := fql.Obj{}
	for name, raw := range fields {
		fm, _ := raw.(map[string]any)
		if v, ok := given[name]; ok {
			record[name] = v
			continue
		}
		record[name] = fm["default"]
	}

	return fql.Create{Collection: fql.Collection{Name: table}, Params: fql.Obj{"data": record}}, nil
}

func valuesRow(stmt *ast.InsertStmt) []ast.Expr {
	if len(stmt.Values) == 0 {
		return nil
	}
	return stmt.Values[0]
}

// translateInsertDuplicateError converts a document database "not
// unique" failure into the typed ProgrammingError the SQL surface
// promises on a duplicate UNIQUE value.
func translateInsertDuplicateError(err error) error {
	var badReq *dbclient.BadRequestError
	if asBadRequest(err, &badReq) && isDuplicateValueError(badReq.Description) {
		return programmingf(opInsert, "Tried to create a document with duplicate value for a unique field.")
	}
	return internalf(opInsert, err)
}
