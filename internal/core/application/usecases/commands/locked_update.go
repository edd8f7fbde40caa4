package commands

import (
	"context"

	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/domain/model/orderhead"
)

// setDocumentsPrintedUnderLock performs the locked read-modify-write shared by
// both update variants: read the header under an exclusive row lock, apply the
// single domain mutation, write the mutated columns and commit. The lock is
// held from the read until the commit, so concurrent invocations on the same
// key are serialized by the store and no caller ever observes a half-written
// header.
//
// The deferred rollback is a no-op after a successful commit and releases the
// lock on every failure path.
func setDocumentsPrintedUnderLock(
	ctx context.Context,
	uowFactory OrderHeaderUoWFactory,
	key kernel.OrderKey,
	flag orderhead.PrintedFlag,
	on kernel.CalendarDate,
	by string,
) (orderhead.DocumentsPrintedEvent, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return orderhead.DocumentsPrintedEvent{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderHeaderRepository()

	header, err := repo.GetForUpdate(ctx, key)
	if err != nil {
		return orderhead.DocumentsPrintedEvent{}, err
	}

	if err = header.SetDocumentsPrinted(flag, on, by); err != nil {
		return orderhead.DocumentsPrintedEvent{}, err
	}

	if err = repo.Update(ctx, header); err != nil {
		return orderhead.DocumentsPrintedEvent{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return orderhead.DocumentsPrintedEvent{}, err
	}

	return header.DocumentsPrintedEvent(), nil
}
