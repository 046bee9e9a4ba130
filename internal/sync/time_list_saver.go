package sync

import (
	"context"
	gosync "sync"
	"time"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/logging"
	"timesheet-sync/internal/parser"
	"timesheet-sync/internal/repository/sqlite"
)

// TimeListSaver reconciles a parsed per-day time list page: the embedded
// reference data plus a full replace of that day's records. Records from
// other days are untouched.
type TimeListSaver struct {
	repo sqlite.Repository
	mu   gosync.Mutex
}

// NewTimeListSaver creates a new time list saver backed by the given repository.
func NewTimeListSaver(repo sqlite.Repository) *TimeListSaver {
	return &TimeListSaver{repo: repo}
}

// Save reconciles the page into the mirror. An empty page, such as a
// login page served in place of the list, saves nothing rather than
// wiping the cache.
func (s *TimeListSaver) Save(ctx context.Context, page *parser.TimeListPage) error {
	if page == nil || len(page.Projects) == 0 {
		logging.Debugln("time list save skipped: empty page")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.InTransaction(ctx, func(store sqlite.Store) error {
		if err := reconcileReferenceData(ctx, store, page.Projects, page.Tasks); err != nil {
			return err
		}
		return reconcileDayRecords(ctx, store, page.Date, page.Records)
	})
}

// reconcileDayRecords replaces the records of one day with the parsed
// set. Records matched by id keep their cached cost when the page does
// not report one; empty parsed records are never inserted.
func reconcileDayRecords(ctx context.Context, store sqlite.Store, date time.Time, records []domain.TimeRecord) error {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	existing, err := store.QueryTimeRecordsByDate(ctx, dayStart, dayEnd)
	if err != nil {
		return err
	}

	cached := make(map[int64]*sqlite.TimeRecord, len(existing))
	for _, record := range existing {
		cached[record.ID] = record
	}
	parsed := make(map[int64]domain.TimeRecord, len(records))
	for _, record := range records {
		if record.IsEmpty() || record.ID == domain.IDNone {
			continue
		}
		parsed[record.ID] = record
	}

	obsolete, added, retained := partition(cached, parsed)
	logging.Debugf("reconcile %s records: -%d +%d ~%d\n",
		dayStart.Format("2006-01-02"), len(obsolete), len(added), len(retained))

	if err := store.DeleteTimeRecords(ctx, sortIDs(obsolete)); err != nil {
		return err
	}

	inserts := make([]*sqlite.TimeRecord, 0, len(added))
	for _, id := range sortIDs(added) {
		model := recordModel(parsed[id])
		model.Status = int(domain.StatusCurrent)
		inserts = append(inserts, model)
	}
	if err := store.InsertTimeRecords(ctx, inserts); err != nil {
		return err
	}

	updates := make([]*sqlite.TimeRecord, 0, len(retained))
	for _, id := range sortIDs(retained) {
		model := recordModel(parsed[id])
		model.Status = int(domain.StatusCurrent)
		if model.Cost == 0 {
			model.Cost = cached[id].Cost
		}
		updates = append(updates, model)
	}
	return store.UpdateTimeRecords(ctx, updates)
}
