package sampler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DrBitshift/statmon/internal/config"
	"github.com/DrBitshift/statmon/internal/display"
	"github.com/DrBitshift/statmon/internal/procfs"
	"github.com/DrBitshift/statmon/model"
)

type fakeSources struct {
	net      procfs.NetTotals
	netReads int

	cpu      procfs.CPUStat
	cpuOK    bool
	cpuReads int

	mem      model.MemorySnapshot
	memReads int
}

func (f *fakeSources) ReadNetTotals() procfs.NetTotals {
	f.netReads++
	return f.net
}

func (f *fakeSources) ReadCPUStat() (procfs.CPUStat, bool) {
	f.cpuReads++
	return f.cpu, f.cpuOK
}

func (f *fakeSources) ReadMemory() model.MemorySnapshot {
	f.memReads++
	return f.mem
}

type fakeSink struct {
	texts  []string
	styles []display.Style
}

func (f *fakeSink) SetText(text string) { f.texts = append(f.texts, text) }

func (f *fakeSink) ApplyStyle(style display.Style) { f.styles = append(f.styles, style) }

func testSettings() config.Settings {
	s := config.DefaultSettings()
	s.RefreshInterval = 3600 // keep the real ticker quiet during tests
	return s
}

func newTestSources() *fakeSources {
	return &fakeSources{
		net:   procfs.NetTotals{DownBytes: 1_000_000, UpBytes: 2_000_000},
		cpu:   procfs.CPUStat{UsedTicks: 150, TotalTicks: 1000},
		cpuOK: true,
		mem:   model.MemorySnapshot{TotalKb: 1000, AvailableKb: 400, SwapTotalKb: 200, SwapFreeKb: 150},
	}
}

func TestSampler_FirstTickIsWarmUp(t *testing.T) {
	sources := newTestSources()
	provider := config.NewProvider(testSettings(), "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())
	sink := &fakeSink{}

	s.Enable(sink)
	defer s.Disable()

	require.True(t, s.Running())
	require.Len(t, sink.styles, 1, "Enable applies the initial style")

	require.True(t, s.tick(time.Now()))
	require.Equal(t,
		"C  0%  M 60%  S 25%  D    0 B  U    0 B",
		sink.texts[len(sink.texts)-1])
}

func TestSampler_SecondTickComputesRates(t *testing.T) {
	sources := newTestSources()
	provider := config.NewProvider(testSettings(), "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())
	sink := &fakeSink{}

	s.Enable(sink)
	defer s.Disable()

	t0 := time.Now()
	require.True(t, s.tick(t0))

	sources.net = procfs.NetTotals{DownBytes: 1_050_000, UpBytes: 2_100_000}
	sources.cpu = procfs.CPUStat{UsedTicks: 650, TotalTicks: 2000}
	require.True(t, s.tick(t0.Add(10*time.Second)))

	require.Equal(t,
		"C 50%  M 60%  S 25%  D 5.00 K  U 10.0 K",
		sink.texts[len(sink.texts)-1])
}

func TestSampler_DisabledMetricsSkipReads(t *testing.T) {
	sources := newTestSources()
	settings := testSettings()
	settings.ShowCPU = false
	settings.ShowDownload = false
	settings.ShowUpload = false
	provider := config.NewProvider(settings, "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())
	sink := &fakeSink{}

	s.Enable(sink)
	defer s.Disable()

	require.True(t, s.tick(time.Now()))

	require.Zero(t, sources.cpuReads, "cpu table must not be read when disabled")
	require.Zero(t, sources.netReads, "net table must not be read when both directions are disabled")
	require.Equal(t, 1, sources.memReads, "memory is read unconditionally")
	require.Equal(t, "M 60%  S 25%", sink.texts[len(sink.texts)-1])
}

func TestSampler_CPUParseFailureOmitsFragment(t *testing.T) {
	sources := newTestSources()
	sources.cpuOK = false
	provider := config.NewProvider(testSettings(), "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())
	sink := &fakeSink{}

	var got model.Reading
	s.OnReading(func(r model.Reading, _ string) { got = r })

	s.Enable(sink)
	defer s.Disable()

	require.True(t, s.tick(time.Now()))
	require.False(t, got.HasCPU)
	require.Equal(t, "M 60%  S 25%  D    0 B  U    0 B", sink.texts[len(sink.texts)-1])
}

func TestSampler_NoMemoryTotalNotReported(t *testing.T) {
	sources := newTestSources()
	sources.mem = model.MemorySnapshot{}
	settings := testSettings()
	settings.ShowCPU = false
	settings.ShowDownload = false
	settings.ShowUpload = false
	provider := config.NewProvider(settings, "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())
	sink := &fakeSink{}

	s.Enable(sink)
	defer s.Disable()

	require.True(t, s.tick(time.Now()))
	require.Equal(t, "", sink.texts[len(sink.texts)-1])
}

func TestSampler_ReEnableResetsEstimatorState(t *testing.T) {
	sources := newTestSources()
	provider := config.NewProvider(testSettings(), "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())

	var readings []model.Reading
	s.OnReading(func(r model.Reading, _ string) { readings = append(readings, r) })

	sink := &fakeSink{}
	s.Enable(sink)

	t0 := time.Now()
	s.tick(t0)
	sources.net.DownBytes += 50_000
	s.tick(t0.Add(10 * time.Second))
	require.Equal(t, 5000.0, readings[len(readings)-1].DownloadBps)

	s.Disable()
	require.False(t, s.Running())

	// Next tick after re-enable behaves exactly like a first-ever sample.
	s.Enable(sink)
	defer s.Disable()
	sources.net.DownBytes += 50_000
	s.tick(t0.Add(20 * time.Second))
	require.Zero(t, readings[len(readings)-1].DownloadBps)
}

func TestSampler_IntervalChangeForcesWarmUp(t *testing.T) {
	sources := newTestSources()
	provider := config.NewProvider(testSettings(), "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())

	var readings []model.Reading
	s.OnReading(func(r model.Reading, _ string) { readings = append(readings, r) })

	sink := &fakeSink{}
	s.Enable(sink)
	defer s.Disable()

	t0 := time.Now()
	s.tick(t0)
	sources.net.DownBytes += 50_000
	s.tick(t0.Add(10 * time.Second))
	require.Equal(t, 5000.0, readings[len(readings)-1].DownloadBps)

	next := provider.Current()
	next.RefreshInterval = 1800
	provider.Update(next)

	require.True(t, s.Running())
	sources.net.DownBytes += 50_000
	s.tick(t0.Add(20 * time.Second))
	require.Zero(t, readings[len(readings)-1].DownloadBps, "interval change must force a warm-up tick")
}

func TestSampler_StyleChangeReappliesStyle(t *testing.T) {
	sources := newTestSources()
	provider := config.NewProvider(testSettings(), "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())
	sink := &fakeSink{}

	s.Enable(sink)
	defer s.Disable()

	next := provider.Current()
	next.Color = "red"
	next.Bold = true
	provider.Update(next)

	require.Len(t, sink.styles, 3, "initial style plus one per changed style option")
	last := sink.styles[len(sink.styles)-1]
	require.Equal(t, "red", last.Color)
	require.True(t, last.Bold)
}

func TestSampler_GoneSinkStopsRescheduling(t *testing.T) {
	sources := newTestSources()
	provider := config.NewProvider(testSettings(), "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())

	s.Enable(&fakeSink{})
	s.Disable()

	// A tick racing Disable finds the sink released and asks the loop to
	// stop rescheduling.
	require.False(t, s.tick(time.Now()))
}

func TestSampler_SeparatorAndLabelsFromSettings(t *testing.T) {
	sources := newTestSources()
	settings := testSettings()
	settings.ShowCPU = false
	settings.ShowSwap = false
	settings.ShowDownload = false
	settings.ShowUpload = false
	settings.MemoryLabel = "mem "
	settings.ExtraSpacing = true
	settings.ShowPercent = false
	provider := config.NewProvider(settings, "", zap.NewNop().Sugar())
	s := New(sources, provider, zap.NewNop().Sugar())
	sink := &fakeSink{}

	s.Enable(sink)
	defer s.Disable()

	require.True(t, s.tick(time.Now()))
	require.Equal(t, "mem  60", sink.texts[len(sink.texts)-1])
}
