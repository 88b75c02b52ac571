package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopySecret_WritesBothFormats(t *testing.T) {
	cb := &fakeClipboard{}

	require.NoError(t, copySecret(cb, "p2"))

	assert.Equal(t, "p2", cb.text)
	assert.Equal(t, "p2", cb.unicode)
	assert.Equal(t, 1, cb.opens)
	assert.Equal(t, 1, cb.closes)
	assert.False(t, cb.isOpen)
}

func TestCopySecret_Twice(t *testing.T) {
	cb := &fakeClipboard{}

	require.NoError(t, copySecret(cb, "s3cret"))
	require.NoError(t, copySecret(cb, "s3cret"))

	assert.Equal(t, "s3cret", cb.text)
	assert.Equal(t, "s3cret", cb.unicode)
	assert.Equal(t, 2, cb.opens)
	assert.Equal(t, 2, cb.closes)
}

func TestCopySecret_OpenFailure(t *testing.T) {
	cb := &fakeClipboard{openErr: errors.New("access denied")}

	err := copySecret(cb, "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, cb.openErr)
	assert.Zero(t, cb.closes)
}

func TestCopySecret_WriteFailureStillCloses(t *testing.T) {
	cb := &fakeClipboard{setErr: errors.New("SetClipboardData failed")}

	err := copySecret(cb, "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, cb.setErr)
	assert.Equal(t, 1, cb.closes)
	assert.False(t, cb.isOpen)
	assert.Empty(t, cb.unicode)
}

func TestCopySecret_CloseFailureIsReported(t *testing.T) {
	cb := &fakeClipboard{closeErr: errors.New("CloseClipboard failed")}

	err := copySecret(cb, "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, cb.closeErr)
	assert.Equal(t, "p1", cb.unicode)
}
