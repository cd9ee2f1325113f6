package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BadBatchError(t *testing.T) {
	var err error = &BadBatchError[string]{IDs: []string{"p-3", "p-1"}}
	wrapped := fmt.Errorf("failed to add batch: %w", err)

	assert.ErrorIs(t, wrapped, ErrBadBatch)
	assert.NotErrorIs(t, wrapped, ErrInvalidProduct)
	assert.EqualError(t, err, "bad batch: ids already in catalogue: [p-3 p-1]")

	var badBatch *BadBatchError[string]
	require.True(t, errors.As(wrapped, &badBatch))
	assert.Equal(t, []string{"p-3", "p-1"}, badBatch.IDs)
}
