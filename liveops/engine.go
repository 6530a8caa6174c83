package liveops

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/SOJH07/NAVA-Dashboard/telemetry"
	"github.com/google/uuid"
)

// RemoteSource supplies the most recent payload from a remote live-status
// feed, with the time it was received. ok is false until a first successful
// poll has happened.
type RemoteSource interface {
	Latest() (payload RemotePayload, receivedAt time.Time, ok bool)
}

// Engine drives the live derivation. Each tick it recomputes the full state,
// overlays the remote feed when one is configured and fresh, caches the result
// for readers, and emits occupancy snapshots whenever the room map changes.
//
// The tick source is injected into Run so hosts can choose a real ticker while
// tests drive a synthetic clock.
type Engine struct {
	Snapshots chan telemetry.OccupancySnapshot // emitted occupancy changes; drained by the data platform

	deriver  *Deriver
	remote   RemoteSource
	freshFor time.Duration

	lock          sync.RWMutex
	current       State
	hasCurrent    bool
	lastOccupancy OccupancyData

	logger *slog.Logger
}

// NewEngine creates an engine. remote may be nil when no live-status feed is
// configured; freshFor bounds how long a remote payload overrides local
// derivation before the engine falls back to its own computation.
func NewEngine(deriver *Deriver, remote RemoteSource, freshFor time.Duration) *Engine {
	return &Engine{
		Snapshots: make(chan telemetry.OccupancySnapshot, 25), // a small buffer so a slow drain doesn't stall the tick loop
		deriver:   deriver,
		remote:    remote,
		freshFor:  freshFor,
		logger:    slog.Default(),
	}
}

// Run recomputes the state on every received tick until the context is
// cancelled.
func (e *Engine) Run(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticks:
			e.Tick(t)
		}
	}
}

// Tick derives and publishes the state for the given time, returning it.
func (e *Engine) Tick(now time.Time) State {
	state := e.deriver.Derive(now)

	if e.remote != nil {
		if payload, receivedAt, ok := e.remote.Latest(); ok {
			age := now.Sub(receivedAt)
			if age >= 0 && age <= e.freshFor {
				// Last successful response wins wholesale, no field merging.
				state.Occupancy = payload.Occupancy
				state.LiveStudents = payload.LiveStudents
				state.LiveClasses = payload.LiveClasses
				state.Source = SourceRemote
			}
		}
	}

	e.lock.Lock()
	changed := !maps.Equal(e.lastOccupancy, state.Occupancy)
	e.current = state
	e.hasCurrent = true
	e.lastOccupancy = state.Occupancy
	e.lock.Unlock()

	if changed {
		e.emitSnapshots(state)
	}

	return state
}

// Current returns the most recently published state. ok is false before the
// first tick.
func (e *Engine) Current() (State, bool) {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return e.current, e.hasCurrent
}

func (e *Engine) emitSnapshots(state State) {
	weekType := "odd"
	if state.IsEvenWeek {
		weekType = "even"
	}
	periodName := "N/A"
	if state.CurrentPeriod != nil {
		periodName = state.CurrentPeriod.Name
	}

	for _, class := range state.LiveClasses {
		snapshot := telemetry.OccupancySnapshot{
			ID:         uuid.New(),
			Time:       state.Now,
			WeekNumber: state.WeekNumber,
			WeekType:   weekType,
			Period:     periodName,
			Classroom:  class.Classroom,
			Group:      class.Group,
			Track:      string(class.Type),
		}
		select {
		case e.Snapshots <- snapshot:
		default:
			e.logger.Debug("Snapshot buffer full, dropping", "classroom", class.Classroom)
		}
	}
}
