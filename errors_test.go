package sqlfql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_notSupportedf(t *testing.T) {
	t.Parallel()
	err := notSupportedf("WHERE", "OR not yet supported in WHERE clauses")
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.ErrorContains(t, err, "OR not yet supported")
	var nse *NotSupportedError
	assert.True(t, errors.As(err, &nse))
	assert.Equal(t, "WHERE", nse.Op)
}

func Test_internalf(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	err := internalf("executor.run", cause)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, cause)
}
