package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilTrackerIsNoop(t *testing.T) {
	var tracker *Tracker

	assert.NotPanics(t, func() {
		tracker.Tick()
		tracker.Finish()
	})
}

func TestTrackerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTrackerWithWriter(&buf, "scanning", 2)

	tracker.Tick()
	tracker.Tick()
	tracker.Finish()

	assert.NotEmpty(t, buf.String())
}
