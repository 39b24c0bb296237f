package util

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("disk on fire")
	err := WrapErrorf(orig, ErrInternalServerError, "writing graph %s", "a.graph")

	assert.ErrorIs(t, err, orig)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "writing graph a.graph: disk on fire", err.Error())

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrInternalServerError, e.Code())

	plain := WrapErrorf(nil, ErrBadParamInput, "bad %d", 1)
	assert.Equal(t, "bad 1", plain.Error())
	assert.ErrorIs(t, plain, ErrBadParamInput)
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, math.Pi, DegreeToRadians(180), 1e-12)
	assert.InDelta(t, 90.0, RadiansToDegree(math.Pi/2), 1e-12)
	assert.InDelta(t, 2.5, SecondsToMinutes(150), 1e-12)
}

func TestStopConcurrentOperation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, StopConcurrentOperation(ctx))
	cancel()
	assert.True(t, StopConcurrentOperation(ctx))
}

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("first line\nlast"))

	line, err := ReadLine(br)
	require.NoError(t, err)
	assert.Equal(t, "first line", line)

	line, err = ReadLine(br)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = ReadLine(br)
	assert.ErrorIs(t, err, io.EOF)
}
