package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	ui "github.com/gizak/termui/v3"

	"github.com/DrBitshift/statmon/internal/buildinfo"
	"github.com/DrBitshift/statmon/internal/config"
	"github.com/DrBitshift/statmon/internal/display"
	"github.com/DrBitshift/statmon/internal/procfs"
	"github.com/DrBitshift/statmon/internal/sampler"
	"github.com/DrBitshift/statmon/internal/server"
	"github.com/DrBitshift/statmon/internal/telemetry"
	"github.com/DrBitshift/statmon/model"
	"github.com/DrBitshift/statmon/storage"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildinfo.PrintBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.NewConfig()

	cfg.Logger.Infof("statmon config: Addr=%q, UI=%t, SettingsPath=%q, RefreshInterval=%ds",
		cfg.Addr, cfg.UI, cfg.SettingsPath, cfg.Settings.RefreshInterval)

	provider := config.NewProvider(cfg.Settings, cfg.SettingsPath, cfg.Logger)

	var (
		sink display.Sink
		bar  *display.StatusBar
	)
	if cfg.UI {
		var err error
		bar, err = display.NewStatusBar()
		if err != nil {
			cfg.Logger.Fatal(err)
		}
		defer bar.Close()
		sink = bar
	} else {
		sink = display.NewWriterSink(os.Stdout)
	}

	store := storage.NewLatestStore()
	metrics := telemetry.NewMetrics()

	smp := sampler.New(procfs.NewReader(cfg.Logger), provider, cfg.Logger)
	smp.OnReading(func(r model.Reading, text string) {
		store.Store(r, text)
		metrics.Observe(r)
	})

	smp.Enable(sink)
	defer smp.Disable()

	// Re-read the settings file on SIGHUP; the provider fans changes out
	// to the sampler.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				if err := provider.Reload(); err != nil {
					cfg.Logger.Errorf("settings reload failed: %v", err)
				}
			}
		}
	}()

	if cfg.Addr != "" {
		srv := server.NewServer(store, cfg, metrics.Handler())
		go func() {
			if err := srv.Run(ctx); err != nil {
				cfg.Logger.Errorf("http server stopped: %v", err)
			}
		}()
	}

	if bar != nil {
		runUI(ctx, bar)
	} else {
		<-ctx.Done()
	}
}

// runUI consumes terminal events until quit or the context ends.
func runUI(ctx context.Context, bar *display.StatusBar) {
	events := ui.PollEvents()
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events:
			switch {
			case e.Type == ui.KeyboardEvent && (e.ID == "q" || e.ID == "<C-c>"):
				return
			case e.Type == ui.ResizeEvent:
				payload := e.Payload.(ui.Resize)
				bar.Resize(payload.Width)
			}
		}
	}
}
