package sqlfql

import (
	"context"
	"log/slog"

	"github.com/freeeve/machparse/ast"
)

// logFailedStatement logs the offending SQL, formatted back to a
// single upper-cased line, alongside the error that aborted it, then
// returns err unchanged so callers can simply `return logFailedStatement(...)`.
func logFailedStatement(ctx context.Context, logger *slog.Logger, stmt ast.Statement, err error) error {
	logger.ErrorContext(ctx, "sql statement failed", "sql", formatSQL(stmt), "error", err)
	return err
}
