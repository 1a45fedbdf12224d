package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/rain"
	"github.com/gogpu/rain/frame"
	"github.com/gogpu/rain/internal/layout"
	"github.com/gogpu/rain/term"
)

func runTerminal(s settings) error {
	l, err := loadLayout(s)
	if err != nil {
		return err
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer scr.Fini()

	loop := frame.NewLoop(frame.WithFPS(l.FPS))
	var opts []term.Option
	if l.Narrow {
		opts = append(opts, term.WithNarrowGlyphs())
	}
	screen := term.NewScreen(scr, loop, opts...)

	renderers := make([]*rain.Renderer, len(l.Panes))
	for i, p := range l.Panes {
		pane := screen.AddPane(p.BackgroundColor())
		renderers[i] = rain.New(p.Config(), rendererOptions(s)...)
		renderers[i].Mount(pane, loop)
	}
	defer func() {
		for _, r := range renderers {
			r.Unmount()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return screen.Run(ctx)
	})
	g.Go(func() error {
		return watchReload(ctx, s, func(next *layout.Layout) {
			loop.Post(func() { apply(screen, renderers, next) })
		})
	})
	return g.Wait()
}

// watchReload reloads the layout on every reload signal until ctx is
// done. Invalid layouts are logged and skipped.
func watchReload(ctx context.Context, s settings, fn func(*layout.Layout)) error {
	sigs := reloadSignals()
	if len(sigs) == 0 {
		<-ctx.Done()
		return nil
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, sigs...)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hup:
			next, err := loadLayout(s)
			if err != nil {
				rain.Logger().Warn("reload failed", "err", err)
				continue
			}
			fn(next)
		}
	}
}

// apply pushes a reloaded layout to the running panes. It must run on the
// loop goroutine. Panes are matched by position; the pane count and the
// frame rate are fixed for the life of the screen.
func apply(screen *term.Screen, renderers []*rain.Renderer, next *layout.Layout) {
	panes := screen.Panes()
	if len(next.Panes) != len(panes) {
		rain.Logger().Warn("reload: pane count changed, extra panes ignored",
			"running", len(panes), "layout", len(next.Panes))
	}
	for i := range min(len(panes), len(next.Panes), len(renderers)) {
		panes[i].SetBackground(next.Panes[i].BackgroundColor())
		renderers[i].SetConfig(next.Panes[i].Config())
	}
	rain.Logger().Info("layout reloaded", "panes", len(next.Panes))
}
