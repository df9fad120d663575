package store

import (
	"context"
	"fmt"
	"log/slog"

	"rdc-blueprint/internal/service/blueprint"
	"rdc-blueprint/internal/storage"
)

// AddZone validates a manual zone against the current warehouse and appends it.
// On validation failure nothing changes and the field errors are returned.
func (s *Store) AddZone(ctx context.Context, in storage.ZoneInput) (storage.Zone, storage.FieldErrors) {
	const op = "service.store.AddZone"

	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := blueprint.ValidateZone(in, s.state.Warehouse); !errs.Empty() {
		return storage.Zone{}, errs
	}

	zone := storage.Zone{
		ID:          newZoneID(s.state.Zones),
		Type:        in.Type,
		X:           in.X,
		Y:           in.Y,
		Width:       in.Width,
		Height:      in.Height,
		Label:       in.Label,
		Description: in.Description,
	}
	s.state.Zones = append(s.state.Zones, zone)

	s.log.Info("zone added", slog.String("op", op), slog.String("id", zone.ID), slog.String("type", string(zone.Type)))
	s.persistLocked(ctx)
	return zone, nil
}

// UpdateZone applies a drag, resize or edit. Geometry is clamped to the canvas.
func (s *Store) UpdateZone(ctx context.Context, id string, p storage.ZonePatch) (storage.Zone, storage.FieldErrors, error) {
	const op = "service.store.UpdateZone"

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.Zones, id)
	if i < 0 {
		return storage.Zone{}, nil, fmt.Errorf("%s: %s: %w", op, id, storage.ErrZoneNotFound)
	}

	if errs := blueprint.ValidatePatch(p); !errs.Empty() {
		return storage.Zone{}, errs, nil
	}

	s.state.Zones[i] = blueprint.ApplyPatch(s.state.Zones[i], p, s.canvas)
	s.persistLocked(ctx)
	return s.state.Zones[i], nil, nil
}

func (s *Store) RemoveZone(ctx context.Context, id string) error {
	const op = "service.store.RemoveZone"

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.Zones, id)
	if i < 0 {
		return fmt.Errorf("%s: %s: %w", op, id, storage.ErrZoneNotFound)
	}

	zones := make([]storage.Zone, 0, len(s.state.Zones)-1)
	zones = append(zones, s.state.Zones[:i]...)
	s.state.Zones = append(zones, s.state.Zones[i+1:]...)
	if s.state.UI.SelectedZoneID == id {
		s.state.UI.SelectedZoneID = ""
	}

	s.log.Info("zone removed", slog.String("op", op), slog.String("id", id))
	s.persistLocked(ctx)
	return nil
}

// UpdateUI applies the editor selection and the drag/resize flags in one
// write. Only the fields present in the patch change.
func (s *Store) UpdateUI(ctx context.Context, p storage.UIPatch) (storage.UIState, error) {
	const op = "service.store.UpdateUI"

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.SelectedZoneID != nil && *p.SelectedZoneID != "" && indexOf(s.state.Zones, *p.SelectedZoneID) < 0 {
		return s.state.UI, fmt.Errorf("%s: %s: %w", op, *p.SelectedZoneID, storage.ErrZoneNotFound)
	}

	if p.SelectedZoneID != nil {
		s.state.UI.SelectedZoneID = *p.SelectedZoneID
	}
	if p.IsDragging != nil {
		s.state.UI.IsDragging = *p.IsDragging
	}
	if p.IsResizing != nil {
		s.state.UI.IsResizing = *p.IsResizing
	}

	s.persistLocked(ctx)
	return s.state.UI, nil
}

// UpdateWarehouse edits the name and footprint. Zones and total area are not touched.
func (s *Store) UpdateWarehouse(ctx context.Context, p storage.WarehousePatch) (storage.Warehouse, storage.FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := blueprint.ValidateWarehousePatch(p); !errs.Empty() {
		return storage.Warehouse{}, errs
	}

	s.state.Warehouse = blueprint.ApplyWarehousePatch(s.state.Warehouse, p)
	s.persistLocked(ctx)
	return s.state.Warehouse, nil
}

// UpdateWorkforce overrides role counts; total and hourly cost follow.
func (s *Store) UpdateWorkforce(ctx context.Context, p storage.WorkforcePatch) (storage.Workforce, storage.FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := blueprint.ValidateWorkforcePatch(p); !errs.Empty() {
		return storage.Workforce{}, errs
	}

	s.state.Workforce = blueprint.ApplyWorkforcePatch(s.state.Workforce, p)
	s.persistLocked(ctx)
	return s.state.Workforce, nil
}

func (s *Store) ZonesByType(t storage.ZoneType) []storage.Zone {
	s.mu.Lock()
	defer s.mu.Unlock()

	zones := []storage.Zone{}
	for _, z := range s.state.Zones {
		if z.Type == t {
			zones = append(zones, z)
		}
	}
	return zones
}

func (s *Store) CheckLayout() blueprint.LayoutReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	return blueprint.CheckLayout(s.state.Warehouse, s.state.Zones)
}
