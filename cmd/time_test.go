package cmd

import (
	"testing"
	"time"

	"github.com/mengelbart/gst-tutorials/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeFlags(t *testing.T) {
	seek := timeCmd.Flags().Lookup("seek")
	require.NotNil(t, seek)
	assert.Equal(t, "true", seek.DefValue)
	assert.Nil(t, timeCmd.Flags().Lookup("no-seek"))

	for _, name := range []string{"poll-interval", "seek-threshold", "seek-target"} {
		assert.NotNil(t, timeCmd.Flags().Lookup(name), name)
	}
}

func TestPlaybackOptions(t *testing.T) {
	cfg := config.Playback{PollInterval: 100 * time.Millisecond, SeekThreshold: 10 * time.Second, SeekTarget: 30 * time.Second}
	assert.Len(t, playbackOptions(cfg), 2)

	cfg.Seek = true
	assert.Len(t, playbackOptions(cfg), 3)
}
