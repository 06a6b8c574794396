package sqlfql

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/kicktipper/sqlfql/dbclient"
	"github.com/kicktipper/sqlfql/fql"
)

const maxCreateRetries = 10

// linearBackOff waits one additional second per attempt: 1s, 2s, 3s, …
type linearBackOff struct {
	attempt int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return time.Duration(b.attempt) * time.Second
}

func (b *linearBackOff) Reset() {
	b.attempt = 0
}

// runCreateWithRetry executes a single CREATE expression, retrying up
// to maxCreateRetries times on a "document data is not valid"
// response. Any other error is permanent.
func runCreateWithRetry(ctx context.Context, db *executor, expr fql.Expr) (any, error) {
	return backoff.Retry(ctx, func() (any, error) {
		v, err := db.run(ctx, expr)
		if err == nil {
			return v, nil
		}
		var badReq *dbclient.BadRequestError
		if asBadRequest(err, &badReq) && isInvalidDataError(badReq.Description) {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}, backoff.WithBackOff(&linearBackOff{}), backoff.WithMaxTries(maxCreateRetries+1))
}
