// ABOUTME: Demo binary: styled status region with a scrolling worker log above
// ABOUTME: Wires config, x/term size detection, lipgloss styling, errgroup workers

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/bottombar/internal/config"
	"github.com/mauromedda/bottombar/pkg/bottombar"
)

var version = "dev"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("bbdemo %s\n", version)
		return
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	cfg, err := config.Load(args.config)
	if err != nil {
		return err
	}
	if args.height > 0 {
		cfg.Height = args.height
	}
	if args.workers > 0 {
		cfg.Workers = args.workers
	}
	if args.level != "" {
		cfg.LogLevel = args.level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if args.tasks < 1 {
		return fmt.Errorf("tasks must be at least 1, got %d", args.tasks)
	}
	if cfg.Height < 3 {
		return fmt.Errorf("demo needs a region height of at least 3, got %d", cfg.Height)
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("getting terminal size: %w", err)
	}

	bar, err := bottombar.New(os.Stdout, cfg.Height)
	if err != nil {
		return err
	}
	bar.SetMaxWidth(cols)
	if err := bar.Open(); err != nil {
		return err
	}
	// Close must run on every exit path so the terminal is never left with
	// a partially drawn region.
	defer bar.Close()

	q := bottombar.NewQueue(bar)
	defer q.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(bottombar.NewHandler(q, level))

	rule := ruleStyle.Render("────────────────────────────────────────")
	if err := q.SetLine(0, titleStyle.Render(" "+cfg.Title)); err != nil {
		return err
	}
	if err := q.SetLine(cfg.Height-1, rule); err != nil {
		return err
	}

	statusRow := cfg.Height - 2
	total := cfg.Workers * args.tasks
	var done atomic.Int64
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		w := w
		g.Go(func() error {
			wlog := logger.With("worker", w)
			for task := 0; task < args.tasks; task++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(cfg.Tick.Std()):
				}

				wlog.Info("task finished", "task", task)
				d := done.Add(1)
				status := fmt.Sprintf(" completed %d/%d  elapsed %s",
					d, total, time.Since(start).Round(time.Millisecond))
				if err := q.SetLine(statusRow, statusStyle.Render(status)); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			logger.Warn("interrupted", "completed", done.Load(), "total", total)
			return nil
		}
		return err
	}

	logger.Info("all workers finished", "total", total, "elapsed", time.Since(start).Round(time.Millisecond).String())
	return q.SetLine(statusRow, statusStyle.Render(" done"))
}
