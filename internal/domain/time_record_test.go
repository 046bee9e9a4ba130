package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timeAt(hour, minute int) *time.Time {
	t := time.Date(2026, time.March, 2, hour, minute, 0, 0, time.Local)
	return &t
}

func TestTotalDuration(t *testing.T) {
	tests := []struct {
		name   string
		record TimeRecord
		want   time.Duration
	}{
		{
			name:   "explicit duration wins",
			record: TimeRecord{Start: timeAt(9, 0), Finish: timeAt(10, 0), Duration: 3 * time.Hour},
			want:   3 * time.Hour,
		},
		{
			name:   "derived from the interval",
			record: TimeRecord{Start: timeAt(8, 58), Finish: timeAt(18, 32)},
			want:   9*time.Hour + 34*time.Minute,
		},
		{
			name:   "open interval is zero",
			record: TimeRecord{Start: timeAt(9, 0)},
			want:   0,
		},
		{
			name:   "empty record is zero",
			record: TimeRecord{},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.TotalDuration())
		})
	}
}

func TestTimeRecordIsEmpty(t *testing.T) {
	project := Project{ID: 486, Name: "Website"}
	task := ProjectTask{ID: 1, Name: "Development"}

	full := TimeRecord{ID: 289585, Project: project, Task: task, Start: timeAt(8, 58)}
	assert.False(t, full.IsEmpty())

	assert.True(t, TimeRecord{Project: project, Task: task}.IsEmpty(), "no start")
	assert.True(t, TimeRecord{Task: task, Start: timeAt(9, 0)}.IsEmpty(), "no project")
	assert.True(t, TimeRecord{Project: project, Start: timeAt(9, 0)}.IsEmpty(), "no task")
	assert.True(t, NewTimeRecord().IsEmpty())
}

func TestTimeRecordEqual(t *testing.T) {
	base := TimeRecord{
		ID:      289585,
		Project: Project{ID: 486, Name: "Website"},
		Task:    ProjectTask{ID: 1, Name: "Development"},
		Start:   timeAt(8, 58),
		Finish:  timeAt(18, 32),
	}

	same := base
	same.Note = "different note"
	assert.True(t, base.Equal(same), "note does not affect identity")

	moved := base
	moved.Start = timeAt(9, 0)
	assert.False(t, base.Equal(moved))

	other := base
	other.ID = 289586
	assert.False(t, base.Equal(other))

	open := base
	open.Finish = nil
	assert.False(t, base.Equal(open))
}

func TestRecordStatusString(t *testing.T) {
	assert.Equal(t, "draft", StatusDraft.String())
	assert.Equal(t, "current", StatusCurrent.String())
	assert.Equal(t, "deleted", StatusDeleted.String())
}
