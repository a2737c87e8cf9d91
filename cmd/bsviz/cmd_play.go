package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"bsviz/internal/render"
	"bsviz/internal/steplog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var playSpeed float64

// playCmd animates a search without the interactive UI
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Animate a binary search in plain text",
	Long: `Runs one search and prints a frame per comparison at the auto-play speed.
Press Ctrl-C to stop early.`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := prepareSearch(cfg)
	if err != nil {
		return err
	}
	defer sess.Stop()

	speed := playSpeed
	if speed == 0 {
		speed = cfg.Playback.Speed
	}
	speed = cfg.ClampSpeed(speed)
	interval := cfg.GetPlaybackInterval(speed)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	r := render.New(render.Options{
		Palette:       render.DefaultPalette(),
		Height:        cfg.UI.BarHeight,
		MarkdownStyle: "notty",
	})
	array := sess.Array()

	first, err := sess.Frame()
	if err != nil {
		return err
	}
	printFrame(out, r, array, first)

	logger.Info("auto-play",
		zap.String("session", sess.ID),
		zap.Float64("speed", speed),
		zap.Duration("interval", interval))

	// One frame per step; the buffer means onAdvance never blocks.
	frames := make(chan steplog.Frame, len(sess.Steps())+1)

	g, gctx := errgroup.WithContext(ctx)
	player, err := sess.Play(gctx, interval, func(f steplog.Frame) {
		frames <- f
	})
	if err != nil {
		return err
	}

	g.Go(func() error {
		<-player.Done()
		close(frames)
		return nil
	})
	g.Go(func() error {
		for f := range frames {
			printFrame(out, r, array, f)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if ctx.Err() != nil {
		fmt.Fprintln(out, "Interrupted")
		return nil
	}
	result, err := sess.Result()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Result: %s\n", result)
	return nil
}

func printFrame(w io.Writer, r *render.Renderer, array []int, f steplog.Frame) {
	fmt.Fprintf(w, "%s  [%s]\n", render.Title(f), r.Progress(f))
	fmt.Fprintln(w, r.Chart(array, f, 80))
	if n := len(f.Lines); n > 0 {
		fmt.Fprintln(w, f.Lines[n-1])
	}
	fmt.Fprintln(w)
}
