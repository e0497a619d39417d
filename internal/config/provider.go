package config

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Option identifies a single configurable setting in change notifications.
type Option string

const (
	OptRefreshInterval Option = "refresh-interval"

	OptShowCPU      Option = "show-cpu"
	OptShowMemory   Option = "show-memory"
	OptShowSwap     Option = "show-swap"
	OptShowDownload Option = "show-download"
	OptShowUpload   Option = "show-upload"

	OptCPULabel      Option = "cpu-label"
	OptMemoryLabel   Option = "memory-label"
	OptSwapLabel     Option = "swap-label"
	OptDownloadLabel Option = "download-label"
	OptUploadLabel   Option = "upload-label"
	OptSeparator     Option = "separator"

	OptExtraSpacing Option = "extra-spacing"
	OptShowPercent  Option = "show-percent"
	OptShowFullUnit Option = "show-full-unit"

	OptFontFamily Option = "font-family"
	OptFontSize   Option = "font-size"
	OptColor      Option = "color"
	OptBold       Option = "bold"
)

// StyleOption reports whether opt affects presentation only.
func StyleOption(opt Option) bool {
	switch opt {
	case OptFontFamily, OptFontSize, OptColor, OptBold:
		return true
	}
	return false
}

// Provider hands the current Settings to the sampler and notifies
// subscribers when options change, one event per changed option.
type Provider struct {
	path   string
	logger *zap.SugaredLogger

	mu       sync.RWMutex
	settings Settings
	nextID   int
	subs     map[int]func(Option, Settings)
}

// NewProvider returns a Provider starting from initial. path is the JSON
// settings file consulted by Reload; it may be empty.
func NewProvider(initial Settings, path string, logger *zap.SugaredLogger) *Provider {
	return &Provider{
		path:     path,
		logger:   logger,
		settings: initial,
		subs:     make(map[int]func(Option, Settings)),
	}
}

// Current returns the settings as of now.
func (p *Provider) Current() Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

// Subscribe registers fn to be called for every option change. The returned
// function cancels the subscription.
func (p *Provider) Subscribe(fn func(Option, Settings)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// Update replaces the current settings and fires one notification per
// option whose value changed. Callbacks run on the caller's goroutine,
// outside the provider lock.
func (p *Provider) Update(next Settings) {
	p.mu.Lock()
	old := p.settings
	p.settings = next
	subs := make([]func(Option, Settings), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, opt := range diffSettings(old, next) {
		for _, fn := range subs {
			fn(opt, next)
		}
	}
}

// Reload re-reads the JSON settings file and applies it over the current
// settings, notifying subscribers of what changed.
func (p *Provider) Reload() error {
	if p.path == "" {
		return nil
	}

	js, err := loadSettingsJSON(p.path)
	if err != nil {
		return fmt.Errorf("reloading settings from %s: %w", p.path, err)
	}

	next := p.Current()
	applySettingsJSON(&next, js)
	p.Update(next)

	if p.logger != nil {
		p.logger.Infof("settings reloaded from %s", p.path)
	}
	return nil
}

func diffSettings(old, next Settings) []Option {
	var changed []Option

	if old.RefreshInterval != next.RefreshInterval {
		changed = append(changed, OptRefreshInterval)
	}
	if old.ShowCPU != next.ShowCPU {
		changed = append(changed, OptShowCPU)
	}
	if old.ShowMemory != next.ShowMemory {
		changed = append(changed, OptShowMemory)
	}
	if old.ShowSwap != next.ShowSwap {
		changed = append(changed, OptShowSwap)
	}
	if old.ShowDownload != next.ShowDownload {
		changed = append(changed, OptShowDownload)
	}
	if old.ShowUpload != next.ShowUpload {
		changed = append(changed, OptShowUpload)
	}
	if old.CPULabel != next.CPULabel {
		changed = append(changed, OptCPULabel)
	}
	if old.MemoryLabel != next.MemoryLabel {
		changed = append(changed, OptMemoryLabel)
	}
	if old.SwapLabel != next.SwapLabel {
		changed = append(changed, OptSwapLabel)
	}
	if old.DownloadLabel != next.DownloadLabel {
		changed = append(changed, OptDownloadLabel)
	}
	if old.UploadLabel != next.UploadLabel {
		changed = append(changed, OptUploadLabel)
	}
	if old.Separator != next.Separator {
		changed = append(changed, OptSeparator)
	}
	if old.ExtraSpacing != next.ExtraSpacing {
		changed = append(changed, OptExtraSpacing)
	}
	if old.ShowPercent != next.ShowPercent {
		changed = append(changed, OptShowPercent)
	}
	if old.ShowFullUnit != next.ShowFullUnit {
		changed = append(changed, OptShowFullUnit)
	}
	if old.FontFamily != next.FontFamily {
		changed = append(changed, OptFontFamily)
	}
	if old.FontSize != next.FontSize {
		changed = append(changed, OptFontSize)
	}
	if old.Color != next.Color {
		changed = append(changed, OptColor)
	}
	if old.Bold != next.Bold {
		changed = append(changed, OptBold)
	}

	return changed
}
