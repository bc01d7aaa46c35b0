package service

import "context"

// upsertFuncs binds the create-vs-update algorithm to one entity kind:
// a tx-bound fetch/create/update trio plus the entity's pure applyFields.
type upsertFuncs[T ChildItem, M any] struct {
	fetch  func(ctx context.Context, id int64) (M, error)
	create func(ctx context.Context, in T) (int64, error)
	apply  func(existing M, in T) M
	update func(ctx context.Context, m M) error
}

// upsertRecord decides create vs. update from the presence of an id and
// performs exactly one write. With no id the payload is created and the new id
// returned. With an id the existing record is fetched (the fetch fails with
// ErrNotFound when absent), the submitted fields are applied, and the result
// persisted under the same id.
func upsertRecord[T ChildItem, M any](ctx context.Context, in T, fns upsertFuncs[T, M]) (int64, error) {
	id := in.ItemID()
	if id == nil {
		return fns.create(ctx, in)
	}

	existing, err := fns.fetch(ctx, *id)
	if err != nil {
		return 0, err
	}
	if err := fns.update(ctx, fns.apply(existing, in)); err != nil {
		return 0, err
	}
	return *id, nil
}
