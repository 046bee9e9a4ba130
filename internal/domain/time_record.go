package domain

import (
	"time"
)

// RecordStatus describes the provenance and lifecycle stage of a time record.
type RecordStatus int

const (
	// StatusDraft marks a record that has no server identity yet.
	StatusDraft RecordStatus = iota
	// StatusCurrent marks a record as last seen on the server.
	StatusCurrent
	// StatusInserted marks a record created locally and pending upload.
	StatusInserted
	// StatusUpdated marks a record modified locally and pending upload.
	StatusUpdated
	// StatusDeleted marks a record removed locally and pending upload.
	StatusDeleted
)

// String returns the string representation of the record status.
func (s RecordStatus) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusCurrent:
		return "current"
	case StatusInserted:
		return "inserted"
	case StatusUpdated:
		return "updated"
	case StatusDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// TimeRecord represents one logged work interval for a project task.
type TimeRecord struct {
	ID      int64
	Project Project
	Task    ProjectTask
	Date    time.Time
	Start   *time.Time
	Finish  *time.Time
	// Duration is the explicit duration when the server reports one
	// without start/finish times. When zero, TotalDuration derives it.
	Duration time.Duration
	Note     string
	Cost     float64
	Status   RecordStatus
}

// NewTimeRecord creates an empty draft record.
func NewTimeRecord() TimeRecord {
	return TimeRecord{Status: StatusDraft}
}

// TotalDuration returns the explicit duration if one was set, otherwise the
// span between start and finish, otherwise zero.
func (r TimeRecord) TotalDuration() time.Duration {
	if r.Duration != 0 {
		return r.Duration
	}
	if r.Start == nil || r.Finish == nil {
		return 0
	}
	return r.Finish.Sub(*r.Start)
}

// IsEmpty reports whether the record describes no usable work interval.
func (r TimeRecord) IsEmpty() bool {
	return r.Project.IsEmpty() || r.Task.IsEmpty() || r.Start == nil
}

// Equal reports whether two records denote the same logged interval.
func (r TimeRecord) Equal(other TimeRecord) bool {
	return r.ID == other.ID &&
		r.Project.ID == other.Project.ID &&
		r.Task.ID == other.Task.ID &&
		equalTimePtr(r.Start, other.Start) &&
		equalTimePtr(r.Finish, other.Finish)
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// TruncateToSecond drops sub-second precision from a timestamp. The server
// granularity is whole seconds.
func TruncateToSecond(t time.Time) time.Time {
	return t.Truncate(time.Second)
}
