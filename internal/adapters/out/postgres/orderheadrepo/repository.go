package orderheadrepo

import (
	"context"
	"errors"

	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/domain/model/orderhead"
	"mfgorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderHeaderRepository implements OrderHeaderRepository using GORM.
type GormOrderHeaderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key kernel.OrderKey, aggregate any)
}

// NewGormOrderHeaderRepository creates a new GORM order header repository.
func NewGormOrderHeaderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderHeaderRepository {
	return &GormOrderHeaderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order header to the database. Headers are created by the
// upstream order release flow; Add exists for seeding and tests.
func (r *GormOrderHeaderRepository) Add(ctx context.Context, aggregate *orderhead.Header) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Key(), aggregate)
	return nil
}

// Update writes the mutated fields of an existing header: the printed flag,
// last-modified date, change sequence and changed-by user, in one statement
// keyed by the full composite key. A caller can never observe some of the four
// columns updated and the rest stale.
//
// The column map is explicit because gorm's struct Updates skips zero values
// and clearing the flag writes a zero.
func (r *GormOrderHeaderRepository) Update(ctx context.Context, aggregate *orderhead.Header) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderHeaderDTO{}).
		Where("company = ? AND facility = ? AND product_code = ? AND order_number = ?",
			dto.Company, dto.Facility, dto.ProductCode, dto.OrderNumber).
		Updates(map[string]any{
			"documents_printed":      dto.DocumentsPrinted,
			"last_modified_date":     dto.LastModifiedDate,
			"change_sequence_number": dto.ChangeSequenceNumber,
			"changed_by_user":        dto.ChangedByUser,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Key(), aggregate)
	return nil
}

// Get retrieves a header by its composite key without locking it.
func (r *GormOrderHeaderRepository) Get(ctx context.Context, key kernel.OrderKey) (*orderhead.Header, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var dto OrderHeaderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "company = ? AND facility = ? AND product_code = ? AND order_number = ?",
			key.Company(), key.Facility(), key.ProductCode(), key.OrderNumber()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderHeader", key.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a header by its composite key under an exclusive row
// lock (SELECT ... FOR UPDATE). Must run inside a started unit of work; the
// lock is held until the transaction commits or rolls back. A concurrent
// GetForUpdate on the same key blocks until then — no NOWAIT, blocking under
// contention is the store's policy.
func (r *GormOrderHeaderRepository) GetForUpdate(ctx context.Context, key kernel.OrderKey) (*orderhead.Header, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var dto OrderHeaderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "company = ? AND facility = ? AND product_code = ? AND order_number = ?",
			key.Company(), key.Facility(), key.ProductCode(), key.OrderNumber()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderHeader", key.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
