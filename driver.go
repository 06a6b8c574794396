package sqlfql

import (
	"context"
	"log/slog"
	"os"

	"github.com/freeeve/machparse/ast"
	"github.com/kicktipper/sqlfql/dbclient"
)

// Driver dispatches SQL strings against one document database
// connection, translating each statement to FQL and shaping the
// response back into rows.
type Driver struct {
	db     *executor
	logger *slog.Logger
}

// NewDriver constructs a Driver authenticated with secret, connecting
// to the document database described by opts (scheme, domain, port).
func NewDriver(secret string, opts ...Option) (*Driver, error) {
	if secret == "" {
		return nil, programmingf("NewDriver", "secret cannot be empty")
	}
	o, err := getOpts(opts...)
	if err != nil {
		return nil, err
	}
	if o.domain == "" {
		return nil, programmingf("NewDriver", "domain cannot be empty; supply one with WithDomain")
	}
	o.secret = secret

	return &Driver{
		db:     &executor{client: dbclient.New(o.scheme, o.domain, o.port, o.secret)},
		logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}, nil
}

// Sql formats, parses, translates, and executes query, returning its
// rows. Exactly one statement is permitted per call.
func (d *Driver) Sql(ctx context.Context, query string) ([]Row, error) {
	stmt, err := parseSingleStatement(query)
	if err != nil {
		return nil, err
	}

	rows, err := d.dispatch(ctx, stmt)
	if err != nil {
		return nil, logFailedStatement(ctx, d.logger, stmt, err)
	}
	return rows, nil
}

func (d *Driver) dispatch(ctx context.Context, stmt ast.Statement) ([]Row, error) {
	switch s := stmt.(type) {
	case *ast.SelectStmt:
		return d.execSelect(ctx, s)
	case *ast.InsertStmt:
		return d.execInsert(ctx, s)
	case *ast.UpdateStmt:
		return d.execUpdate(ctx, s)
	case *ast.DeleteStmt:
		return d.execDelete(ctx, s)
	case *ast.CreateTableStmt:
		return d.execCreateTable(ctx, s)
	case *ast.CreateIndexStmt:
		return d.execCreateIndex(ctx, s)
	case *ast.AlterTableStmt:
		return d.execAlter(ctx, s)
	case *ast.DropTableStmt:
		return d.execDrop(ctx, s)
	default:
		return nil, notSupportedf("dispatch", "unsupported statement type")
	}
}

func (d *Driver) execSelect(ctx context.Context, s *ast.SelectStmt) ([]Row, error) {
	plan, err := translateSelect(s)
	if err != nil {
		return nil, err
	}
	if plan.infoSchema != "" {
		return executeInformationSchema(ctx, d.db, plan)
	}
	v, err := d.db.run(ctx, plan.expr)
	if err != nil {
		return nil, internalf(opSelect, err)
	}
	return shapeSelectRows(v, plan.aliasMap, plan.projectAll), nil
}

func (d *Driver) execInsert(ctx context.Context, s *ast.InsertStmt) ([]Row, error) {
	expr, err := translateInsert(ctx, d.db, s)
	if err != nil {
		return nil, err
	}
	doc, err := d.db.runDoc(ctx, expr)
	if err != nil {
		return nil, translateInsertDuplicateError(err)
	}
	return []Row{shapeDocument(doc, nil, true)}, nil
}

func (d *Driver) execUpdate(ctx context.Context, s *ast.UpdateStmt) ([]Row, error) {
	_, expr, err := translateUpdate(s)
	if err != nil {
		return nil, err
	}
	v, err := d.db.run(ctx, expr)
	if err != nil {
		return nil, internalf(opUpdate, err)
	}
	return shapeLetResultRows(v), nil
}

func (d *Driver) execDelete(ctx context.Context, s *ast.DeleteStmt) ([]Row, error) {
	_, expr, err := translateDelete(s)
	if err != nil {
		return nil, err
	}
	doc, err := d.db.runDoc(ctx, expr)
	if err != nil {
		return nil, internalf(opDelete, err)
	}
	return []Row{shapeRefRow(doc)}, nil
}

// execCreateTable dispatches the create_collection and its companion
// index do(...) as two separate round-trips: the collection must
// exist before its indexes can be created, and the DB's do(...) form
// does not let later expressions reference names bound in earlier
// ones in the same call.
func (d *Driver) execCreateTable(ctx context.Context, s *ast.CreateTableStmt) ([]Row, error) {
	exprs, err := translateCreateTable(s)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for _, expr := range exprs {
		v, err := runCreateWithRetry(ctx, d.db, expr)
		if err != nil {
			return nil, internalf("CREATE TABLE", err)
		}
		if doc, ok := v.(map[string]any); ok {
			rows = append(rows, shapeRefRow(doc))
		}
	}
	return rows, nil
}

func (d *Driver) execCreateIndex(ctx context.Context, s *ast.CreateIndexStmt) ([]Row, error) {
	expr, err := translateCreateIndex(s)
	if err != nil {
		return nil, err
	}
	v, err := runCreateWithRetry(ctx, d.db, expr)
	if err != nil {
		return nil, internalf("CREATE INDEX", err)
	}
	if doc, ok := v.(map[string]any); ok {
		return []Row{shapeRefRow(doc)}, nil
	}
	return nil, nil
}

func (d *Driver) execAlter(ctx context.Context, s *ast.AlterTableStmt) ([]Row, error) {
	expr, err := translateAlter(s)
	if err != nil {
		return nil, err
	}
	v, err := d.db.run(ctx, expr)
	if err != nil {
		return nil, internalf(opAlter, err)
	}
	return shapeLetResultRows(v), nil
}

func (d *Driver) execDrop(ctx context.Context, s *ast.DropTableStmt) ([]Row, error) {
	expr, err := translateDrop(s)
	if err != nil {
		return nil, err
	}
	doc, err := d.db.runDoc(ctx, expr)
	if err != nil {
		return nil, internalf(opDrop, err)
	}
	return []Row{shapeRefRow(doc)}, nil
}
