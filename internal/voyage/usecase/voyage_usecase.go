package usecase

import (
	"context"
	"time"

	authrepo "ferrylog-backend/internal/auth/repository"
	"ferrylog-backend/internal/store"
	voyagedomain "ferrylog-backend/internal/voyage/domain"
	voyagedto "ferrylog-backend/internal/voyage/dto"
	"ferrylog-backend/pkg/fuzzy"
	"ferrylog-backend/pkg/ws"

	authdomain "ferrylog-backend/internal/auth/domain"

	"github.com/google/uuid"
)

// voyageUsecase implements VoyageUsecase
type voyageUsecase struct {
	store    *store.Store
	userRepo authrepo.UserRepository
	notifier Notifier
	events   EventPublisher
	now      func() time.Time
	newID    func() string
}

// NewVoyageUsecase creates a new instance of voyageUsecase. notifier and
// events may be nil when the corresponding collaborator is not configured.
func NewVoyageUsecase(st *store.Store, userRepo authrepo.UserRepository, notifier Notifier, events EventPublisher) VoyageUsecase {
	return &voyageUsecase{
		store:    st,
		userRepo: userRepo,
		notifier: notifier,
		events:   events,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

func (u *voyageUsecase) List() []voyagedomain.VoyageLog {
	return u.store.Logs()
}

func (u *voyageUsecase) ListForCaptain(captainID string) []voyagedomain.VoyageLog {
	var out []voyagedomain.VoyageLog
	for _, l := range u.store.Logs() {
		if l.CaptainID == captainID {
			out = append(out, l)
		}
	}
	return out
}

func (u *voyageUsecase) Search(query string) []voyagedomain.VoyageLog {
	if query == "" {
		return u.store.Logs()
	}
	var out []voyagedomain.VoyageLog
	for _, l := range u.store.Logs() {
		if fuzzy.MatchVoyageLog(query, l.ShipName, l.CaptainName, l.EngineerName, l.Memo) {
			out = append(out, l)
		}
	}
	return out
}

func (u *voyageUsecase) Save(ctx context.Context, form voyagedto.LogForm) (*voyagedomain.VoyageLog, error) {
	users := u.userRepo.List()
	logs := u.store.Logs()

	var existing *voyagedomain.VoyageLog
	if form.ID != "" {
		for i := range logs {
			if logs[i].ID == form.ID {
				existing = &logs[i]
				break
			}
		}
	}

	resolved, err := u.resolve(form, existing, users)
	if err != nil {
		return nil, err
	}

	current := voyagedomain.StatusDraft
	if existing != nil {
		current = existing.Status
	}
	status, err := voyagedomain.Transition(current, resolved.Status, resolved.ArrivalTime != "")
	if err != nil {
		return nil, err
	}
	resolved.Status = status

	isNew := existing == nil
	prevArrival := ""
	if existing != nil {
		prevArrival = existing.ArrivalTime
	}

	next := upsert(logs, *resolved)
	writeErr := u.store.ReplaceLogs(ctx, next)

	// Notification dispatch is fire-and-forget: it runs even when the
	// write-back failed, because in-memory state is the presumed source of
	// truth until the next reload.
	if u.notifier != nil {
		if resolved.Status == voyagedomain.StatusCompleted && resolved.ArrivalTime != "" && prevArrival == "" {
			u.notifier.NotifyArrival(*resolved)
		} else if isNew && resolved.DepartureTime != "" {
			u.notifier.NotifyDeparture(*resolved)
		}
	}
	if u.events != nil {
		u.events.Publish(ws.EventLogSaved, map[string]interface{}{"id": resolved.ID})
	}

	return resolved, writeErr
}

func (u *voyageUsecase) Delete(ctx context.Context, id string) error {
	logs := u.store.Logs()
	next := logs[:0]
	for _, l := range logs {
		if l.ID != id {
			next = append(next, l)
		}
	}
	if len(next) == len(logs) {
		return nil
	}
	// Removals write back immediately so a deleted log stays deleted across
	// a reload.
	if err := u.store.ReplaceLogs(ctx, next); err != nil {
		return err
	}
	if u.events != nil {
		u.events.Publish(ws.EventLogDeleted, map[string]interface{}{"id": id})
	}
	return nil
}

func (u *voyageUsecase) ClearAll(ctx context.Context) error {
	if err := u.store.ReplaceLogs(ctx, []voyagedomain.VoyageLog{}); err != nil {
		return err
	}
	if u.events != nil {
		u.events.Publish(ws.EventLogsCleared, nil)
	}
	return nil
}

// resolve produces a fully-resolved log from partial form input. Display
// names are re-resolved from the live user collection by id, never trusted
// from the form, so they reflect current user records at the moment of save.
func (u *voyageUsecase) resolve(form voyagedto.LogForm, existing *voyagedomain.VoyageLog, users []authdomain.User) (*voyagedomain.VoyageLog, error) {
	var missing []string
	if form.ShipName == "" {
		missing = append(missing, "shipName")
	}
	if form.CaptainID == "" {
		missing = append(missing, "captainId")
	}
	if form.EngineerID == "" {
		missing = append(missing, "engineerId")
	}
	if form.DepartureTime == "" {
		missing = append(missing, "departureTime")
	}
	if form.Status == voyagedomain.StatusCompleted && form.ArrivalTime == "" {
		missing = append(missing, "arrivalTime")
	}
	if len(missing) > 0 {
		return nil, &voyagedomain.IncompleteRecordError{Missing: missing}
	}

	status := form.Status
	if status == "" {
		status = voyagedomain.StatusDraft
	}

	log := &voyagedomain.VoyageLog{
		ShipName:          form.ShipName,
		CaptainID:         form.CaptainID,
		CaptainName:       nameByID(users, form.CaptainID),
		EngineerID:        form.EngineerID,
		EngineerName:      nameByID(users, form.EngineerID),
		CrewIDs:           form.CrewIDs,
		CrewNames:         namesByIDs(users, form.CrewIDs),
		DepartureTime:     form.DepartureTime,
		ArrivalTime:       form.ArrivalTime,
		DepartureLocation: form.DepartureLocation,
		ArrivalLocation:   form.ArrivalLocation,
		PassengerCount:    form.PassengerCount,
		FuelLevel:         form.FuelLevel,
		Memo:              form.Memo,
		Status:            status,
	}
	if log.CrewIDs == nil {
		log.CrewIDs = []string{}
	}

	if existing != nil {
		log.ID = existing.ID
		log.CreatedAt = existing.CreatedAt
	} else {
		log.ID = u.newID()
		log.CreatedAt = u.now().Format(time.RFC3339)
	}
	return log, nil
}

// upsert replaces in place when the id exists, preserving position;
// otherwise it prepends, keeping the newest-first presentation order.
func upsert(logs []voyagedomain.VoyageLog, log voyagedomain.VoyageLog) []voyagedomain.VoyageLog {
	for i := range logs {
		if logs[i].ID == log.ID {
			next := append([]voyagedomain.VoyageLog(nil), logs...)
			next[i] = log
			return next
		}
	}
	return append([]voyagedomain.VoyageLog{log}, logs...)
}

func nameByID(users []authdomain.User, id string) string {
	for _, u := range users {
		if u.ID == id {
			return u.Name
		}
	}
	return ""
}

func namesByIDs(users []authdomain.User, ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, nameByID(users, id))
	}
	return names
}
