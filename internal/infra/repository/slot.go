package repository

import (
	"context"
	"encoding/json"
	"errors"

	"parkease/internal/domain/parking"
	"parkease/internal/infra"
	"parkease/internal/infra/kv"
)

// SlotRepository is the slot allocator: the single authority flipping a slot
// from available to booked. Reserve is a compare-and-swap loop over the
// facility's slot list, so exactly one concurrent caller can win a slot.
//
// There is deliberately no release path: booked slots never return to
// available when the booking expires.
type SlotRepository struct {
	store kv.Store
}

func NewSlotRepository(store kv.Store) *SlotRepository {
	return &SlotRepository{store: store}
}

func (r *SlotRepository) Reserve(ctx context.Context, facilityID, slotID string) error {
	for range maxCASRetries {
		entry, err := r.store.Get(ctx, slotsKey(facilityID))
		if err != nil {
			if errors.Is(err, kv.ErrKeyNotFound) {
				return infra.WrapRepoErr(infra.KindNotFound, "facility not found", err)
			}
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to read slots", err)
		}

		var slots []parking.Slot
		if err := json.Unmarshal(entry.Value, &slots); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "corrupt slot record", err)
		}

		idx := -1
		for i := range slots {
			if slots[i].ID == slotID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return infra.WrapRepoErr(infra.KindNotFound, "slot not found", nil)
		}
		if slots[idx].Status == parking.SlotBooked {
			return infra.WrapRepoErr(infra.KindConflict, "slot already booked", nil)
		}

		slots[idx].Status = parking.SlotBooked
		data, err := json.Marshal(slots)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode slots", err)
		}

		err = r.store.CompareAndSwap(ctx, slotsKey(facilityID), entry.Version, data)
		if err == nil {
			return nil
		}
		if !errors.Is(err, kv.ErrVersionMismatch) {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to write slots", err)
		}
		// Lost the race on the slot list; re-read and re-check the slot.
	}
	return infra.WrapRepoErr(infra.KindDBFailure, "slot reservation contention exceeded retry budget", nil)
}
