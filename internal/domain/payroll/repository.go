package payroll

import (
	"context"
	"time"
)

// SnapshotRepository persists computed payouts. Snapshots are never the source of truth.
type SnapshotRepository interface {
	// UpsertWeeklySnapshot overwrites the snapshot keyed by (employee, week); it never duplicates.
	UpsertWeeklySnapshot(ctx context.Context, payout WeeklyPayout) error
	// ReplaceWeek makes payouts the complete snapshot set of the week in one
	// transaction: rows of employees missing from payouts are deleted.
	ReplaceWeek(ctx context.Context, weekStart time.Time, payouts []WeeklyPayout) error
	GetSnapshot(ctx context.Context, employeeID string, weekStart time.Time) (WeeklySnapshot, error)
	ListSnapshotsByWeek(ctx context.Context, weekStart time.Time) ([]WeeklySnapshot, error)
}
