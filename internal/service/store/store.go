package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"rdc-blueprint/internal/service/blueprint"
	"rdc-blueprint/internal/storage"
)

var (
	ErrSimulationRunning = errors.New("simulation already running")
	ErrLoadRunning       = errors.New("demand load already running")
)

// DemandSource supplies the uploaded city demand list. A nil result with a nil
// error means nothing has been uploaded yet.
type DemandSource interface {
	UploadedData(ctx context.Context) (*storage.UploadedData, error)
}

// SnapshotStore keeps the encoded state blob under a key. Load returns
// storage.ErrSnapshotNotFound when the key is absent.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type Options struct {
	Key             string
	Canvas          blueprint.Canvas
	SimulationDelay time.Duration
	Rand            blueprint.Rand
}

// Store owns the blueprint state. Every public method is safe for concurrent use.
type Store struct {
	log       *slog.Logger
	source    DemandSource
	snapshots SnapshotStore

	key      string
	canvas   blueprint.Canvas
	simDelay time.Duration
	rnd      blueprint.Rand
	now      func() time.Time

	mu    sync.Mutex
	state storage.BlueprintState
}

func New(log *slog.Logger, source DemandSource, snapshots SnapshotStore, opts Options) *Store {
	if opts.Key == "" {
		opts.Key = "blueprint-storage"
	}
	if opts.Rand == nil {
		opts.Rand = blueprint.NewRand(0)
	}
	if opts.Canvas.Width == 0 || opts.Canvas.Height == 0 {
		opts.Canvas = blueprint.Canvas{Width: 800, Height: 600}
	}

	return &Store{
		log:       log,
		source:    source,
		snapshots: snapshots,
		key:       opts.Key,
		canvas:    opts.Canvas,
		simDelay:  opts.SimulationDelay,
		rnd:       opts.Rand,
		now:       time.Now,
		state:     storage.DefaultState(),
	}
}

// State returns a copy of the current state.
func (s *Store) State() storage.BlueprintState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneState(s.state)
}

// Rehydrate restores the last persisted snapshot. Missing snapshots and
// snapshots of any other version leave the defaults in place.
func (s *Store) Rehydrate(ctx context.Context) error {
	const op = "service.store.Rehydrate"

	data, err := s.snapshots.Load(ctx, s.key)
	if errors.Is(err, storage.ErrSnapshotNotFound) {
		s.log.Info("no snapshot found, starting with defaults", slog.String("op", op))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var snap storage.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn("snapshot is unreadable, resetting", slog.String("op", op), slog.Any("err", err))
		s.resetAndPersist(ctx)
		return nil
	}

	if snap.Version != storage.SnapshotVersion {
		s.log.Info("discarding snapshot",
			slog.String("op", op),
			slog.Int("version", snap.Version),
			slog.Int("want", storage.SnapshotVersion),
		)
		s.resetAndPersist(ctx)
		return nil
	}

	state := snap.State
	state.IsSimulating = false
	state.IsLoading = false
	normalize(&state)

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.log.Info("snapshot restored", slog.String("op", op), slog.Int("zones", len(state.Zones)))
	return nil
}

func (s *Store) resetAndPersist(ctx context.Context) {
	s.mu.Lock()
	s.state = storage.DefaultState()
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// LoadUserData fetches the uploaded demand and regenerates the blueprint from
// it. When nothing is uploaded, or the fetch fails, the demand and the bundle
// are reset so no stale numbers survive. The fetch error is still returned.
// The loading flag is held for the whole call and blocks simulations.
func (s *Store) LoadUserData(ctx context.Context) (storage.BlueprintState, error) {
	const op = "service.store.LoadUserData"

	s.mu.Lock()
	switch {
	case s.state.IsLoading:
		s.mu.Unlock()
		return s.State(), fmt.Errorf("%s: %w", op, ErrLoadRunning)
	case s.state.IsSimulating:
		s.mu.Unlock()
		return s.State(), fmt.Errorf("%s: %w", op, ErrSimulationRunning)
	}
	s.state.IsLoading = true
	s.mu.Unlock()

	defer s.endLoad(ctx)

	data, err := s.source.UploadedData(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsLoading = false

	if err != nil {
		s.log.Error("failed to load uploaded data", slog.String("op", op), slog.Any("err", err))
		s.resetDemandLocked()
		s.persistLocked(ctx)
		return cloneState(s.state), fmt.Errorf("%s: %w", op, err)
	}

	return s.loadLocked(ctx, data), nil
}

// endLoad releases the loading flag if the load did not get to it, e.g. when
// the demand source panics.
func (s *Store) endLoad(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsLoading {
		s.state.IsLoading = false
		s.persistLocked(ctx)
	}
}

// LoadData installs an already fetched dataset and regenerates from it.
func (s *Store) LoadData(ctx context.Context, data *storage.UploadedData) storage.BlueprintState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx, data)
}

func (s *Store) loadLocked(ctx context.Context, data *storage.UploadedData) storage.BlueprintState {
	const op = "service.store.LoadData"

	if data == nil || len(data.CitySummary) == 0 {
		s.log.Info("no uploaded data, resetting demand", slog.String("op", op))
		s.resetDemandLocked()
		s.persistLocked(ctx)
		return cloneState(s.state)
	}

	cities := append([]storage.CityDemand(nil), data.CitySummary...)
	uploaded := *data
	uploaded.CitySummary = cities

	s.state.UploadedData = &uploaded
	s.state.CityDemandData = cities
	s.state.DemandSummary = blueprint.Aggregate(cities)

	s.log.Info("demand loaded",
		slog.String("op", op),
		slog.Int("cities", len(cities)),
		slog.Int("total_demand", s.state.TotalDemand),
		slog.String("tier", string(s.state.DemandTier)),
	)

	s.generateLocked()
	s.persistLocked(ctx)
	return cloneState(s.state)
}

// resetDemandLocked restores the empty demand with the default bundle.
// Simulation results and the UI state are kept.
func (s *Store) resetDemandLocked() {
	defaults := storage.DefaultState()

	s.state.UploadedData = nil
	s.state.CityDemandData = defaults.CityDemandData
	s.state.DemandSummary = defaults.DemandSummary
	s.state.Warehouse = defaults.Warehouse
	s.state.Zones = defaults.Zones
	s.state.Workforce = defaults.Workforce
	s.state.Infrastructure = defaults.Infrastructure
}

// Generate rebuilds the bundle from the current demand summary. It replaces
// any manual edits. ok is false when there is no demand to plan for.
func (s *Store) Generate(ctx context.Context) (storage.Bundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.generateLocked() {
		return cloneState(s.state).Bundle(), false
	}
	s.persistLocked(ctx)
	return cloneState(s.state).Bundle(), true
}

func (s *Store) generateLocked() bool {
	const op = "service.store.generate"

	bundle, ok := blueprint.Generate(s.state.DemandSummary, s.rnd)
	if !ok {
		s.log.Info("no demand to plan for", slog.String("op", op))
		return false
	}

	s.state.Warehouse = bundle.Warehouse
	s.state.Zones = bundle.Zones
	s.state.Workforce = bundle.Workforce
	s.state.Infrastructure = bundle.Infrastructure
	s.state.UI.SelectedZoneID = ""

	s.log.Info("blueprint generated",
		slog.String("op", op),
		slog.String("warehouse", bundle.Warehouse.Name),
		slog.Int("width", bundle.Warehouse.Width),
		slog.Int("height", bundle.Warehouse.Height),
		slog.Int("staff", bundle.Workforce.Total),
	)
	return true
}

// RunSimulation produces a placeholder performance report after the
// configured delay. Only one simulation runs at a time and none runs while
// demand is loading.
func (s *Store) RunSimulation(ctx context.Context) (storage.SimulationResults, error) {
	const op = "service.store.RunSimulation"

	s.mu.Lock()
	if s.state.IsSimulating || s.state.IsLoading {
		s.mu.Unlock()
		return storage.SimulationResults{}, ErrSimulationRunning
	}
	s.state.IsSimulating = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state.IsSimulating = false
		s.persistLocked(ctx)
		s.mu.Unlock()
	}()

	timer := time.NewTimer(s.simDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.log.Warn("simulation cancelled", slog.String("op", op))
		return storage.SimulationResults{}, fmt.Errorf("%s: %w", op, ctx.Err())
	case <-timer.C:
	}

	s.mu.Lock()
	results := blueprint.Simulate(s.state, s.rnd, s.now())
	s.state.SimulationResults = &results
	s.mu.Unlock()

	s.log.Info("simulation finished",
		slog.String("op", op),
		slog.Float64("efficiency", results.Metrics.OverallEfficiency),
	)
	return results, nil
}

// Simulation returns the last results, if any, and whether a simulation or a
// demand load is in progress.
func (s *Store) Simulation() storage.SimulationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := storage.SimulationStatus{
		IsSimulating: s.state.IsSimulating,
		IsLoading:    s.state.IsLoading,
	}
	if s.state.SimulationResults != nil {
		res := *s.state.SimulationResults
		status.Results = &res
	}
	return status
}

// SetBackendSimulation caches the payload of the last collaborator simulation.
func (s *Store) SetBackendSimulation(ctx context.Context, payload json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.LastBackendSimulation = append(json.RawMessage(nil), payload...)
	s.persistLocked(ctx)
}

// ClearData returns the store to its defaults, simulation results included.
func (s *Store) ClearData(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = storage.DefaultState()
	s.persistLocked(ctx)
}

// persistLocked writes the whole state in one snapshot. Failures are logged
// and never surface to the caller. The write is detached from ctx so an
// expired request still records the state it left behind.
func (s *Store) persistLocked(ctx context.Context) {
	const op = "service.store.persist"

	if s.snapshots == nil {
		return
	}

	data, err := json.Marshal(storage.Snapshot{Version: storage.SnapshotVersion, State: s.state})
	if err != nil {
		s.log.Error("failed to encode snapshot", slog.String("op", op), slog.Any("err", err))
		return
	}

	if err := s.snapshots.Save(context.WithoutCancel(ctx), s.key, data); err != nil {
		s.log.Error("failed to save snapshot", slog.String("op", op), slog.Any("err", err))
	}
}

func newZoneID(zones []storage.Zone) string {
	for {
		id := "zone-" + uuid.NewString()[:8]
		if indexOf(zones, id) < 0 {
			return id
		}
	}
}

func indexOf(zones []storage.Zone, id string) int {
	for i, z := range zones {
		if z.ID == id {
			return i
		}
	}
	return -1
}

// normalize replaces nil collections so JSON always carries arrays and objects.
func normalize(state *storage.BlueprintState) {
	if state.CityDemandData == nil {
		state.CityDemandData = []storage.CityDemand{}
	}
	if state.Zones == nil {
		state.Zones = []storage.Zone{}
	}
	if state.DemandTier == "" {
		state.DemandTier = storage.TierMedium
	}
	infra := &state.Infrastructure
	if infra.Equipment == nil {
		infra.Equipment = []storage.Equipment{}
	}
	if infra.Technology == nil {
		infra.Technology = []storage.Technology{}
	}
	if infra.RackingSystems == nil {
		infra.RackingSystems = []string{}
	}
	if infra.ShiftCapacity == nil {
		infra.ShiftCapacity = map[string]string{}
	}
}

func cloneState(s storage.BlueprintState) storage.BlueprintState {
	c := s
	c.CityDemandData = append([]storage.CityDemand{}, s.CityDemandData...)
	c.Zones = append([]storage.Zone{}, s.Zones...)
	c.Infrastructure.Equipment = append([]storage.Equipment{}, s.Infrastructure.Equipment...)
	c.Infrastructure.Technology = append([]storage.Technology{}, s.Infrastructure.Technology...)
	c.Infrastructure.RackingSystems = append([]string{}, s.Infrastructure.RackingSystems...)
	c.Infrastructure.ShiftCapacity = make(map[string]string, len(s.Infrastructure.ShiftCapacity))
	for k, v := range s.Infrastructure.ShiftCapacity {
		c.Infrastructure.ShiftCapacity[k] = v
	}
	if s.UploadedData != nil {
		u := *s.UploadedData
		u.CitySummary = append([]storage.CityDemand{}, s.UploadedData.CitySummary...)
		c.UploadedData = &u
	}
	if s.SimulationResults != nil {
		r := *s.SimulationResults
		c.SimulationResults = &r
	}
	c.LastBackendSimulation = append(json.RawMessage(nil), s.LastBackendSimulation...)
	return c
}
