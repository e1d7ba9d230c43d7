package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"parkease/internal/domain/parking"
	"parkease/internal/infra"
	"parkease/internal/infra/kv"
)

// CatalogRepository owns the seeded facility inventory. Read-mostly; the only
// mutation path is Seed, which is a no-op once the initialized marker exists.
type CatalogRepository struct {
	store kv.Store
}

func NewCatalogRepository(store kv.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Seed writes the facility catalog and the slot inventory for each facility.
// The initialized marker is claimed with an insert-if-absent compare-and-swap,
// so concurrent first requests cannot double-seed.
func (r *CatalogRepository) Seed(ctx context.Context) error {
	if _, err := r.store.Get(ctx, keySeedMarker); err == nil {
		return nil
	} else if !errors.Is(err, kv.ErrKeyNotFound) {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to read seed marker", err)
	}

	if err := r.store.CompareAndSwap(ctx, keySeedMarker, kv.NoVersion, []byte("true")); err != nil {
		if errors.Is(err, kv.ErrVersionMismatch) {
			// Another instance claimed the marker first.
			return nil
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to claim seed marker", err)
	}

	facilities := parking.SeedCatalog()
	data, err := json.Marshal(facilities)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode facilities", err)
	}
	if err := r.store.Put(ctx, keyParkings, data); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to write facilities", err)
	}

	for _, facility := range facilities {
		slots := parking.BuildSlots(facility)
		slotData, err := json.Marshal(slots)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode slots", err)
		}
		if err := r.store.Put(ctx, slotsKey(facility.ID), slotData); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to write slots", err)
		}
	}

	slog.Info("parking catalog seeded", "facilities", len(facilities))
	return nil
}

func (r *CatalogRepository) ListFacilities(ctx context.Context) ([]parking.Facility, error) {
	entry, err := r.store.Get(ctx, keyParkings)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []parking.Facility{}, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read facilities", err)
	}

	var facilities []parking.Facility
	if err := json.Unmarshal(entry.Value, &facilities); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt facility record", err)
	}
	return facilities, nil
}

func (r *CatalogRepository) FindFacility(ctx context.Context, facilityID string) (*parking.Facility, error) {
	facilities, err := r.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}
	for i := range facilities {
		if facilities[i].ID == facilityID {
			return &facilities[i], nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "facility not found", nil)
}

// ListSlots returns the slot inventory for a facility, ordered by ordinal.
func (r *CatalogRepository) ListSlots(ctx context.Context, facilityID string) ([]parking.Slot, error) {
	entry, err := r.store.Get(ctx, slotsKey(facilityID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "facility not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read slots", err)
	}

	var slots []parking.Slot
	if err := json.Unmarshal(entry.Value, &slots); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt slot record", err)
	}
	return slots, nil
}
