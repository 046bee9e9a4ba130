package sqlite

import (
	"database/sql"
)

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	err := scanner.Scan(&project.ID, &project.Name, &project.Description)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// ScanProjectTask scans a single task from a database row
func ScanProjectTask(scanner Scanner) (*ProjectTask, error) {
	task := &ProjectTask{}
	err := scanner.Scan(&task.ID, &task.Name, &task.Description)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ScanProjectTaskKey scans a single association key from a database row
func ScanProjectTaskKey(scanner Scanner) (*ProjectTaskKey, error) {
	key := &ProjectTaskKey{}
	err := scanner.Scan(&key.ProjectID, &key.TaskID)
	if err != nil {
		return nil, err
	}
	return key, nil
}

// ScanTimeRecord scans a single time record from a database row
func ScanTimeRecord(scanner Scanner) (*TimeRecord, error) {
	record := &TimeRecord{}
	var date string
	var startTime, finishTime sql.NullString
	var duration int64

	err := scanner.Scan(
		&record.ID,
		&record.ProjectID,
		&record.TaskID,
		&date,
		&startTime,
		&finishTime,
		&duration,
		&record.Note,
		&record.Cost,
		&record.Status,
	)
	if err != nil {
		return nil, err
	}

	if record.Date, err = ParseTimeFromDB(date); err != nil {
		return nil, err
	}
	if startTime.Valid {
		start, err := ParseTimeFromDB(startTime.String)
		if err != nil {
			return nil, err
		}
		record.StartTime = &start
	}
	if finishTime.Valid {
		finish, err := ParseTimeFromDB(finishTime.String)
		if err != nil {
			return nil, err
		}
		record.FinishTime = &finish
	}
	record.Duration = ParseDurationFromDB(duration)

	return record, nil
}

// ScanReportRecord scans a single report record from a database row
func ScanReportRecord(scanner Scanner) (*ReportRecord, error) {
	record := &ReportRecord{}
	var date string
	var startTime, finishTime sql.NullString
	var duration int64

	err := scanner.Scan(
		&record.ID,
		&record.ProjectID,
		&record.TaskID,
		&date,
		&startTime,
		&finishTime,
		&duration,
		&record.Note,
		&record.Cost,
	)
	if err != nil {
		return nil, err
	}

	if record.Date, err = ParseTimeFromDB(date); err != nil {
		return nil, err
	}
	if startTime.Valid {
		start, err := ParseTimeFromDB(startTime.String)
		if err != nil {
			return nil, err
		}
		record.StartTime = &start
	}
	if finishTime.Valid {
		finish, err := ParseTimeFromDB(finishTime.String)
		if err != nil {
			return nil, err
		}
		record.FinishTime = &finish
	}
	record.Duration = ParseDurationFromDB(duration)

	return record, nil
}

// ScanUser scans a single user from a database row
func ScanUser(scanner Scanner) (*User, error) {
	user := &User{}
	err := scanner.Scan(&user.ID, &user.Username, &user.Email, &user.DisplayName, &user.Roles)
	if err != nil {
		return nil, err
	}
	return user, nil
}
