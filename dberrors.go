package sqlfql

import (
	"errors"
	"strings"

	"github.com/kicktipper/sqlfql/dbclient"
)

// asBadRequest is errors.As for *dbclient.BadRequestError, spelled out
// so call sites read as plain boolean checks.
func asBadRequest(err error, target **dbclient.BadRequestError) bool {
	return errors.As(err, target)
}

func isDuplicateValueError(description string) bool {
	return strings.Contains(description, "not unique")
}

func isInvalidDataError(description string) bool {
	return strings.Contains(description, "document data is not valid")
}
