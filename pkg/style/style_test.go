package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStatusPlainWithoutTerminal(t *testing.T) {
	// Test binaries run without a TTY on stdout, so rendering must
	// degrade to the bare label.
	assert.Equal(t, "running", RenderStatus(StatusRunning))
	assert.Equal(t, "missing", RenderStatus(StatusMissing))
}

func TestPathPlainWithoutTerminal(t *testing.T) {
	assert.Equal(t, "/tmp/x", Path("/tmp/x"))
}

func TestStatusStyleCoversAllStatuses(t *testing.T) {
	for _, status := range []Status{StatusRunning, StatusStopped, StatusOK, StatusMissing, Status("other")} {
		assert.NotNil(t, StatusStyle(status))
	}
}
