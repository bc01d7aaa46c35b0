package service

import (
	"context"
	"fmt"
	"sort"
)

// ChildItem is any submitted payload that may carry a persisted id. A nil id
// selects the create branch, a non-nil id the update branch.
type ChildItem interface {
	ItemID() *int64
}

// ChildStore adapts one entity kind's record store to the generic reconciler.
// Implementations are expected to be bound to an open transaction scope.
type ChildStore[T ChildItem] interface {
	// ExistingIDs returns the ids currently persisted under the parent.
	ExistingIDs(ctx context.Context, parentID int64) ([]int64, error)
	// Create persists item with the parent reference injected and returns its new id.
	Create(ctx context.Context, parentID int64, item T) (int64, error)
	// Update replaces the persisted record's fields with item's.
	Update(ctx context.Context, id, parentID int64, item T) error
	// DeleteMany removes the given ids in one batch.
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

// ReconcileResult reports which ids a reconciliation pass created, updated and
// deleted. ResolvedIDs holds the id of every submitted item in submission
// order, whichever branch it took.
type ReconcileResult struct {
	CreatedIDs  []int64 `json:"created_ids"`
	UpdatedIDs  []int64 `json:"updated_ids"`
	DeletedIDs  []int64 `json:"deleted_ids"`
	ResolvedIDs []int64 `json:"resolved_ids"`
}

// reconcileChildren makes the persisted children of parentID match the
// submitted items exactly: id-less items are created, id-bearing items are
// updated, and every persisted child that was not re-submitted is deleted.
//
// Creates and updates run in submission order; deletes run once, in a single
// batch, after the whole walk, so a failed write aborts the pass (and the
// enclosing transaction) before anything is removed. An empty items slice
// clears the collection.
//
// An id submitted twice fails with ErrInvalidPayload. An id not persisted
// under parentID fails with ErrNotFound before any write to it: a record can
// never be silently re-parented.
func reconcileChildren[T ChildItem](ctx context.Context, store ChildStore[T], parentID int64, items []T) (ReconcileResult, error) {
	var res ReconcileResult

	existingIDs, err := store.ExistingIDs(ctx, parentID)
	if err != nil {
		return res, fmt.Errorf("reconcile: could not list existing children of %d: %w", parentID, err)
	}
	remaining := make(map[int64]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		remaining[id] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		id := item.ItemID()
		if id == nil {
			newID, err := store.Create(ctx, parentID, item)
			if err != nil {
				return res, fmt.Errorf("reconcile: could not create child of %d: %w", parentID, err)
			}
			res.CreatedIDs = append(res.CreatedIDs, newID)
			res.ResolvedIDs = append(res.ResolvedIDs, newID)
			continue
		}

		if _, dup := seen[*id]; dup {
			return res, fmt.Errorf("%w: child id %d submitted more than once", ErrInvalidPayload, *id)
		}
		seen[*id] = struct{}{}

		if _, ok := remaining[*id]; !ok {
			return res, fmt.Errorf("%w: child id %d does not belong to parent %d", ErrNotFound, *id, parentID)
		}
		if err := store.Update(ctx, *id, parentID, item); err != nil {
			return res, fmt.Errorf("reconcile: could not update child %d of %d: %w", *id, parentID, err)
		}
		delete(remaining, *id)
		res.UpdatedIDs = append(res.UpdatedIDs, *id)
		res.ResolvedIDs = append(res.ResolvedIDs, *id)
	}

	if len(remaining) > 0 {
		doomed := make([]int64, 0, len(remaining))
		for id := range remaining {
			doomed = append(doomed, id)
		}
		sort.Slice(doomed, func(i, j int) bool { return doomed[i] < doomed[j] })

		if _, err := store.DeleteMany(ctx, doomed); err != nil {
			return res, fmt.Errorf("reconcile: could not delete dropped children of %d: %w", parentID, err)
		}
		res.DeletedIDs = doomed
	}

	return res, nil
}
