package telemetry

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/appengine-ltd/campfire/internal/game"
)

const instrumentationName = "github.com/appengine-ltd/campfire/internal/telemetry"

// Sample is one reading of the gauges.
type Sample struct {
	Intensity   float64
	Particles   int
	LogsCarried int
	LogsInFire  int
	Ticks       uint64
}

// SampleOf reads the gauge values from a running sim.
func SampleOf(sim *game.Sim) Sample {
	fire := sim.Fire()
	return Sample{
		Intensity:   fire.Intensity,
		Particles:   sim.Particles().Len(),
		LogsCarried: fire.LogsCarried,
		LogsInFire:  fire.LogsInFire,
		Ticks:       sim.Ticks(),
	}
}

// Recorder publishes game events as counters and the last Sample as
// observable gauges.
type Recorder struct {
	events metric.Int64Counter
	ticks  metric.Int64Counter

	intensity metric.Float64ObservableGauge
	particles metric.Int64ObservableGauge
	carried   metric.Int64ObservableGauge
	inFire    metric.Int64ObservableGauge

	intensityBits atomic.Uint64
	particleCount atomic.Int64
	carriedCount  atomic.Int64
	inFireCount   atomic.Int64
	lastTicks     atomic.Uint64

	mu     sync.Mutex
	counts map[game.EventKind]int64
}

// New registers the instruments on m. A nil meter uses the global provider,
// which is a no-op until one is installed.
func New(m metric.Meter) (*Recorder, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}
	r := &Recorder{counts: make(map[game.EventKind]int64)}

	var err error
	r.events, err = m.Int64Counter(
		"campfire.events",
		metric.WithDescription("Game events by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}
	r.ticks, err = m.Int64Counter(
		"campfire.ticks",
		metric.WithDescription("Logical simulation ticks run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	r.intensity, err = m.Float64ObservableGauge(
		"campfire.fire.intensity",
		metric.WithDescription("Fire intensity, 0 to 100"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating intensity gauge: %w", err)
	}
	r.particles, err = m.Int64ObservableGauge(
		"campfire.particles.live",
		metric.WithDescription("Live particles across all pools"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating particles gauge: %w", err)
	}
	r.carried, err = m.Int64ObservableGauge(
		"campfire.logs.carried",
		metric.WithDescription("Logs carried by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating carried gauge: %w", err)
	}
	r.inFire, err = m.Int64ObservableGauge(
		"campfire.logs.in_fire",
		metric.WithDescription("Logs stacked in the firepit"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating in-fire gauge: %w", err)
	}

	_, err = m.RegisterCallback(r.observe, r.intensity, r.particles, r.carried, r.inFire)
	if err != nil {
		return nil, fmt.Errorf("registering gauge callback: %w", err)
	}
	return r, nil
}

func (r *Recorder) observe(_ context.Context, o metric.Observer) error {
	o.ObserveFloat64(r.intensity, math.Float64frombits(r.intensityBits.Load()))
	o.ObserveInt64(r.particles, r.particleCount.Load())
	o.ObserveInt64(r.carried, r.carriedCount.Load())
	o.ObserveInt64(r.inFire, r.inFireCount.Load())
	return nil
}

// Observe counts drained game events.
func (r *Recorder) Observe(ctx context.Context, events []game.Event) {
	if len(events) == 0 {
		return
	}
	r.mu.Lock()
	for _, ev := range events {
		r.counts[ev.Kind]++
	}
	r.mu.Unlock()

	for _, ev := range events {
		r.events.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", ev.Kind.String())))
	}
}

// Record stores s for the next gauge collection and adds the ticks run since
// the previous sample.
func (r *Recorder) Record(ctx context.Context, s Sample) {
	r.intensityBits.Store(math.Float64bits(s.Intensity))
	r.particleCount.Store(int64(s.Particles))
	r.carriedCount.Store(int64(s.LogsCarried))
	r.inFireCount.Store(int64(s.LogsInFire))

	prev := r.lastTicks.Swap(s.Ticks)
	if s.Ticks > prev {
		r.ticks.Add(ctx, int64(s.Ticks-prev))
	}
}

func (r *Recorder) Count(kind game.EventKind) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[kind]
}

// Last returns the most recently recorded sample.
func (r *Recorder) Last() Sample {
	return Sample{
		Intensity:   math.Float64frombits(r.intensityBits.Load()),
		Particles:   int(r.particleCount.Load()),
		LogsCarried: int(r.carriedCount.Load()),
		LogsInFire:  int(r.inFireCount.Load()),
		Ticks:       r.lastTicks.Load(),
	}
}
