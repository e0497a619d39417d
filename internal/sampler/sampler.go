// Package sampler drives the periodic sampling loop: each tick reads the
// kernel counter tables, differences them against the held previous state
// and emits a composed status line to the display sink.
package sampler

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DrBitshift/statmon/internal/config"
	"github.com/DrBitshift/statmon/internal/display"
	"github.com/DrBitshift/statmon/internal/procfs"
	"github.com/DrBitshift/statmon/internal/rate"
	"github.com/DrBitshift/statmon/model"
)

// Sources is what the sampler reads on each tick.
type Sources interface {
	ReadNetTotals() procfs.NetTotals
	ReadCPUStat() (procfs.CPUStat, bool)
	ReadMemory() model.MemorySnapshot
}

// SettingsProvider supplies per-tick settings and change notifications.
type SettingsProvider interface {
	Current() config.Settings
	Subscribe(fn func(config.Option, config.Settings)) func()
}

// Sampler owns the tick loop. It is Stopped until Enable and Running after;
// estimator state lives only while Running, so re-enabling always starts
// from a warm-up sample. A single goroutine consumes the ticker, so ticks
// never overlap.
type Sampler struct {
	sources   Sources
	provider  SettingsProvider
	logger    *zap.SugaredLogger
	onReading func(model.Reading, string)

	mu          sync.Mutex
	sink        display.Sink
	est         *rate.Estimator
	ticker      *time.Ticker
	done        chan struct{}
	running     bool
	lastTick    time.Time
	unsubscribe func()
}

// New returns a Sampler in the Stopped state.
func New(sources Sources, provider SettingsProvider, logger *zap.SugaredLogger) *Sampler {
	return &Sampler{
		sources:  sources,
		provider: provider,
		logger:   logger,
	}
}

// OnReading registers a hook invoked after every completed tick with the
// derived reading and the composed text. Must be set before Enable.
func (s *Sampler) OnReading(fn func(model.Reading, string)) {
	s.onReading = fn
}

// Enable transitions Stopped to Running: fresh estimator state, initial
// style application, settings subscription and the periodic timer.
func (s *Sampler) Enable(sink display.Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	cur := s.provider.Current()

	s.sink = sink
	s.est = rate.New()
	s.lastTick = time.Time{}

	if sink != nil {
		sink.ApplyStyle(styleFrom(cur))
	}

	s.startLocked(cur.RefreshInterval)
	s.unsubscribe = s.provider.Subscribe(s.onOption)
	s.running = true
}

// Disable transitions Running to Stopped: cancels the timer, releases the
// sink reference and the settings subscription and discards estimator
// state. An in-flight tick still completes but its result is dropped.
func (s *Sampler) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.stopLocked()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.sink = nil
	s.est = nil
	s.running = false
}

// Running reports whether the sampler is in the Running state.
func (s *Sampler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Sampler) startLocked(intervalSeconds int) {
	if intervalSeconds <= 0 {
		intervalSeconds = 1
	}
	s.ticker = time.NewTicker(time.Duration(intervalSeconds) * time.Second)
	s.done = make(chan struct{})
	go s.loop(s.ticker, s.done)
}

func (s *Sampler) stopLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
}

// restart swaps the ticker for a new interval and clears estimator state,
// forcing a fresh warm-up tick. Old timer out, new timer in, all under the
// lock: there is no window with two live timers.
func (s *Sampler) restart(intervalSeconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.stopLocked()
	s.est.Reset()
	s.lastTick = time.Time{}
	s.startLocked(intervalSeconds)
}

func (s *Sampler) loop(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			if !s.tick(now) {
				return
			}
		}
	}
}

func (s *Sampler) onOption(opt config.Option, cur config.Settings) {
	switch {
	case opt == config.OptRefreshInterval:
		s.logger.Infof("refresh interval changed to %ds", cur.RefreshInterval)
		s.restart(cur.RefreshInterval)
	case config.StyleOption(opt):
		s.mu.Lock()
		sink := s.sink
		s.mu.Unlock()
		if sink != nil {
			sink.ApplyStyle(styleFrom(cur))
		}
	}
	// Everything else is picked up from Current on the next tick.
}

// tick performs one sampling pass. The return value tells the loop whether
// to keep rescheduling; a torn-down sink stops the loop.
func (s *Sampler) tick(now time.Time) bool {
	s.mu.Lock()
	sink := s.sink
	est := s.est
	last := s.lastTick
	s.lastTick = now
	s.mu.Unlock()

	if sink == nil || est == nil {
		return false
	}

	cfg := s.provider.Current()

	var elapsed time.Duration
	if !last.IsZero() {
		elapsed = now.Sub(last)
	}

	reading := model.Reading{Time: now}
	var fragments []string

	// Occupancy ratios are cheap and stateless, read unconditionally.
	mem := s.sources.ReadMemory()

	if cfg.ShowCPU {
		if stat, ok := s.sources.ReadCPUStat(); ok {
			reading.CPUUsage = est.CPUUsage(stat.UsedTicks, stat.TotalTicks)
			reading.HasCPU = true
			fragments = append(fragments,
				cfg.CPULabel+display.FormatUsage(reading.CPUUsage, cfg.ExtraSpacing, cfg.ShowPercent))
		}
	}

	if cfg.ShowMemory {
		if usage, ok := rate.MemoryUsage(mem); ok {
			reading.MemUsage = usage
			reading.HasMem = true
			fragments = append(fragments,
				cfg.MemoryLabel+display.FormatUsage(usage, cfg.ExtraSpacing, cfg.ShowPercent))
		}
	}

	if cfg.ShowSwap {
		if usage, ok := rate.SwapUsage(mem); ok {
			reading.SwapUsage = usage
			reading.HasSwap = true
			fragments = append(fragments,
				cfg.SwapLabel+display.FormatUsage(usage, cfg.ExtraSpacing, cfg.ShowPercent))
		}
	}

	if cfg.ShowDownload || cfg.ShowUpload {
		totals := s.sources.ReadNetTotals()
		reading.DownloadBps = est.DownloadRate(totals.DownBytes, elapsed)
		reading.UploadBps = est.UploadRate(totals.UpBytes, elapsed)
		reading.HasNet = true
		if cfg.ShowDownload {
			fragments = append(fragments,
				cfg.DownloadLabel+display.FormatNetSpeed(reading.DownloadBps, cfg.ShowFullUnit))
		}
		if cfg.ShowUpload {
			fragments = append(fragments,
				cfg.UploadLabel+display.FormatNetSpeed(reading.UploadBps, cfg.ShowFullUnit))
		}
	}

	text := strings.Join(fragments, cfg.Separator)
	sink.SetText(text)

	if s.onReading != nil {
		s.onReading(reading, text)
	}
	return true
}

func styleFrom(s config.Settings) display.Style {
	return display.Style{
		FontFamily: s.FontFamily,
		FontSize:   s.FontSize,
		Color:      s.Color,
		Bold:       s.Bold,
	}
}
