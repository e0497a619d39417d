// Package config provides application configuration structures and helpers.
package config

import (
	"flag"
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Settings holds everything the sampler consults while running: which
// metrics are enabled, how often to sample, label/separator texts, the
// formatting switches and the display style.
type Settings struct {
	RefreshInterval int // seconds between samples

	ShowCPU      bool
	ShowMemory   bool
	ShowSwap     bool
	ShowDownload bool
	ShowUpload   bool

	CPULabel      string
	MemoryLabel   string
	SwapLabel     string
	DownloadLabel string
	UploadLabel   string
	Separator     string

	ExtraSpacing bool // pad percentages to width 3 instead of 2
	ShowPercent  bool // append '%' to percentages
	ShowFullUnit bool // append '/s' to byte rates

	FontFamily string
	FontSize   int
	Color      string // color name, or "default"
	Bold       bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		RefreshInterval: 2,
		ShowCPU:         true,
		ShowMemory:      true,
		ShowSwap:        true,
		ShowDownload:    true,
		ShowUpload:      true,
		CPULabel:        "C ",
		MemoryLabel:     "M ",
		SwapLabel:       "S ",
		DownloadLabel:   "D ",
		UploadLabel:     "U ",
		Separator:       "  ",
		ShowPercent:     true,
		Color:           "default",
	}
}

// Config holds the process-level configuration for the statmon binary.
type Config struct {
	Addr         string // HTTP listen address; empty disables the server
	UI           bool   // render to an interactive terminal status bar
	SettingsPath string // JSON settings file, re-read on SIGHUP
	Logger       *zap.SugaredLogger
	Settings     Settings
}

// NewConfig creates a Config by parsing flags, an optional JSON settings
// file and environment variables. Precedence low to high: defaults, JSON
// file, flags, environment.
func NewConfig() *Config {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stderr", "statmon.log"}

	logger := zap.Must(logCfg.Build())

	cfg := &Config{
		Settings: DefaultSettings(),
	}

	var fAddr, fConf strFlag
	var fRefresh intFlag
	var fUI boolFlag
	flag.Var(&fAddr, "a", "HTTP server address (empty disables the server)")
	flag.Var(&fRefresh, "r", "refresh interval (seconds)")
	flag.Var(&fUI, "ui", "render to a terminal status bar")
	flag.Var(&fConf, "c", "Path to JSON settings file")
	flag.Var(&fConf, "config", "Path to JSON settings file (alias)")
	flag.Parse()

	if fConf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			fConf.v = v
		}
	}
	if fConf.v != "" {
		cfg.SettingsPath = fConf.v
		if js, err := loadSettingsJSON(fConf.v); err == nil {
			applySettingsJSON(&cfg.Settings, js)
		} else {
			log.Printf("settings file %s not applied: %v", fConf.v, err)
		}
	}

	if fAddr.set {
		cfg.Addr = fAddr.v
	}
	if fRefresh.set {
		cfg.Settings.RefreshInterval = fRefresh.v
	}
	if fUI.set {
		cfg.UI = fUI.v
	}

	cfg.Logger = logger.Sugar()

	readEnvironment(cfg)

	if cfg.Settings.RefreshInterval <= 0 {
		cfg.Settings.RefreshInterval = DefaultSettings().RefreshInterval
	}

	return cfg
}

func readEnvironment(cfg *Config) {
	if addr := os.Getenv("ADDRESS"); addr != "" {
		cfg.Addr = addr
	}

	refreshEnv := os.Getenv("REFRESH_INTERVAL")
	if refreshEnv != "" {
		v, err := strconv.Atoi(refreshEnv)
		if err == nil {
			cfg.Settings.RefreshInterval = v
		} else {
			log.Printf("invalid REFRESH_INTERVAL env var: %v", err)
		}
	}
}
