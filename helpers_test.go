package sqlfql

import (
	"encoding/json"
	"testing"

	"github.com/kicktipper/sqlfql/fql"
)

func jsonOf(t *testing.T, expr fql.Expr) (string, error) {
	t.Helper()
	b, err := json.Marshal(expr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
