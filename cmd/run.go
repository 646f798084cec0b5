package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mengelbart/gst-tutorials/pipeline"
	"github.com/mengelbart/gst-tutorials/playback"

	"github.com/sirupsen/logrus"
)

// play runs p until the stream ends, the pipeline fails or the process is
// interrupted.
func play(p pipeline.Pipeline, bus pipeline.Bus, options ...func(*playback.Controller)) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := playback.Play(ctx, p, bus, logrus.WithField("pipeline", p.Name()), options...)
	logrus.Info("exiting")
	return err
}
