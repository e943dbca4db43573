package usecase

import (
	"context"

	voyagedomain "ferrylog-backend/internal/voyage/domain"
	voyagedto "ferrylog-backend/internal/voyage/dto"
)

// Notifier receives lifecycle transition events. Implementations must not
// block: dispatch failure never fails the save that triggered it.
type Notifier interface {
	NotifyDeparture(log voyagedomain.VoyageLog)
	NotifyArrival(log voyagedomain.VoyageLog)
}

// EventPublisher pushes fleet events to connected dashboards.
type EventPublisher interface {
	Publish(eventType string, data map[string]interface{})
}

// VoyageUsecase manages the voyage log lifecycle.
type VoyageUsecase interface {
	// List returns all logs, newest first.
	List() []voyagedomain.VoyageLog

	// ListForCaptain returns only the logs captained by the given user.
	ListForCaptain(captainID string) []voyagedomain.VoyageLog

	// Search returns logs fuzzy-matching the query on ship, captain,
	// engineer or memo.
	Search(query string) []voyagedomain.VoyageLog

	// Save resolves the form against the live user collection, validates the
	// status transition, upserts the log and emits notification events.
	// A non-nil log together with a non-nil error means the in-memory save
	// succeeded but the write-back to the gateway failed.
	Save(ctx context.Context, form voyagedto.LogForm) (*voyagedomain.VoyageLog, error)

	// Delete removes a log by id; no-op when absent.
	Delete(ctx context.Context, id string) error

	// ClearAll irreversibly wipes the log collection. Callers must obtain
	// explicit confirmation first.
	ClearAll(ctx context.Context) error
}
