package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuitHook_FiresOnce(t *testing.T) {
	calls := 0
	q := &quitHook{fn: func() { calls++ }}

	q.fire()
	q.fire()

	assert.Equal(t, 1, calls)
}

func TestQuitHook_DisarmedAfterStop(t *testing.T) {
	calls := 0
	q := &quitHook{fn: func() { calls++ }}

	q.disarm()
	q.fire()

	assert.Zero(t, calls)
}

func TestQuitHook_NilFunc(t *testing.T) {
	q := &quitHook{}
	assert.NotPanics(t, q.fire)
}
