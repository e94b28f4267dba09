package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrNameCollision, "entry already exists")

	assert.Equal(t, ErrNameCollision, err.Code)
	assert.Equal(t, "entry already exists", err.Message)
	assert.Nil(t, err.Wrapped)
	assert.Equal(t, "[NAME_COLLISION] entry already exists", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrExtractionFailed, "failed to unpack %s", "foo.zip")

	assert.Equal(t, ErrExtractionFailed, err.Code)
	assert.Equal(t, "failed to unpack foo.zip", err.Message)
}

func TestWrap(t *testing.T) {
	inner := errors.New("permission denied")
	err := Wrap(inner, ErrInspectionFailed, "could not list scratch dir")

	require.NotNil(t, err)
	assert.Equal(t, ErrInspectionFailed, err.Code)
	assert.Equal(t, inner, err.Unwrap())
	assert.Contains(t, err.Error(), "permission denied")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "should be %s", "nil"))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPlacementFailed, "move failed").
		WithDetail("target", "/out/notes.txt").
		WithDetail("remaining", []string{"a", "b"})

	details := GetErrorDetails(err)
	assert.Equal(t, "/out/notes.txt", details["target"])
	assert.Equal(t, []string{"a", "b"}, details["remaining"])
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrNameCollision, "collision")

	assert.True(t, IsErrorCode(err, ErrNameCollision))
	assert.False(t, IsErrorCode(err, ErrPlacementFailed))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrNameCollision))
	assert.False(t, IsErrorCode(nil, ErrNameCollision))
}

func TestIsErrorCodeWrappedChain(t *testing.T) {
	inner := New(ErrNameCollision, "collision")
	outer := fmt.Errorf("extract: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrNameCollision))
	assert.Equal(t, ErrNameCollision, GetErrorCode(outer))
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestErrorsIs(t *testing.T) {
	err := New(ErrExtractionFailed, "unpack failed")

	assert.True(t, errors.Is(err, New(ErrExtractionFailed, "other message")))
	assert.False(t, errors.Is(err, New(ErrInspectionFailed, "unpack failed")))
}
