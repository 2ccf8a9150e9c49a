package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attModel "ritmo_backend/internals/features/school/attendance/model"
	"ritmo_backend/internals/features/school/attendance/dto"
	groupModel "ritmo_backend/internals/features/school/groups/model"
	sessionModel "ritmo_backend/internals/features/school/sessions/model"
	studentModel "ritmo_backend/internals/features/school/students/model"
)

var ErrSessionNotFound = errors.New("session not found")

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// RosterStudent is one student expected at a session, resolved from the
// enrollments active on the session's date.
type RosterStudent struct {
	StudentID uuid.UUID
	FullName  string
}

// MergeRoster joins the expected roster with whatever has been recorded.
// Students with no entry get a null status. Recorded entries for students
// no longer on the roster (e.g. marked, then unenrolled retroactively) are
// appended so marks are never hidden.
func MergeRoster(roster []RosterStudent, entries []attModel.AttendanceEntryModel, names map[uuid.UUID]string) []dto.AttendanceRow {
	byStudent := make(map[uuid.UUID]*attModel.AttendanceEntryModel, len(entries))
	for i := range entries {
		byStudent[entries[i].AttendanceEntriesStudentID] = &entries[i]
	}

	rows := make([]dto.AttendanceRow, 0, len(roster))
	seen := make(map[uuid.UUID]bool, len(roster))
	for _, rs := range roster {
		row := dto.AttendanceRow{StudentID: rs.StudentID, StudentName: rs.FullName}
		if e, ok := byStudent[rs.StudentID]; ok {
			status := e.AttendanceEntriesStatus
			row.Status = &status
			row.Note = e.AttendanceEntriesNote
		}
		rows = append(rows, row)
		seen[rs.StudentID] = true
	}
	for i := range entries {
		e := &entries[i]
		if seen[e.AttendanceEntriesStudentID] {
			continue
		}
		status := e.AttendanceEntriesStatus
		rows = append(rows, dto.AttendanceRow{
			StudentID:   e.AttendanceEntriesStudentID,
			StudentName: names[e.AttendanceEntriesStudentID],
			Status:      &status,
			Note:        e.AttendanceEntriesNote,
		})
	}
	return rows
}

func (s *Service) loadSession(orgID, sessionID uuid.UUID) (*sessionModel.SessionModel, error) {
	var session sessionModel.SessionModel
	err := s.DB.
		Where("sessions_org_id = ? AND sessions_id = ?", orgID, sessionID).
		Take(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &session, nil
}

// rosterFor resolves who is expected at the session: students whose
// enrollment interval covers the session's date. Sessions without a group
// (private lessons) have an empty expected roster.
func (s *Service) rosterFor(session *sessionModel.SessionModel) ([]RosterStudent, error) {
	if session.SessionsGroupID == nil {
		return []RosterStudent{}, nil
	}
	var roster []RosterStudent
	err := s.DB.
		Table("enrollments").
		Select("students.students_id AS student_id, students.students_full_name AS full_name").
		Joins("JOIN students ON students.students_id = enrollments.enrollments_student_id").
		Where("enrollments.enrollments_org_id = ? AND enrollments.enrollments_group_id = ?",
			session.SessionsOrgID, *session.SessionsGroupID).
		Scopes(groupModel.ScopeActiveOn(session.SessionsDate)).
		Order("students.students_full_name ASC").
		Scan(&roster).Error
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	if roster == nil {
		roster = []RosterStudent{}
	}
	return roster, nil
}

// SessionAttendance returns the date-scoped roster merged with recorded
// entries for the session. An unknown session yields empty expected and
// empty rows, not an error.
func (s *Service) SessionAttendance(orgID, sessionID uuid.UUID) (*dto.SessionAttendanceResponse, error) {
	session, err := s.loadSession(orgID, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return &dto.SessionAttendanceResponse{
			SessionID: sessionID,
			Expected:  []dto.ExpectedStudent{},
			Rows:      []dto.AttendanceRow{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	roster, err := s.rosterFor(session)
	if err != nil {
		return nil, err
	}

	var entries []attModel.AttendanceEntryModel
	err = s.DB.
		Where("attendance_entries_org_id = ? AND attendance_entries_session_id = ?", orgID, sessionID).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load attendance entries: %w", err)
	}

	names, err := s.namesForStray(roster, entries)
	if err != nil {
		return nil, err
	}

	expected := make([]dto.ExpectedStudent, 0, len(roster))
	for _, rs := range roster {
		expected = append(expected, dto.ExpectedStudent{StudentID: rs.StudentID, FullName: rs.FullName})
	}

	return &dto.SessionAttendanceResponse{
		SessionID: sessionID,
		Expected:  expected,
		Rows:      MergeRoster(roster, entries, names),
	}, nil
}

// namesForStray fetches names for recorded students missing from the roster.
func (s *Service) namesForStray(roster []RosterStudent, entries []attModel.AttendanceEntryModel) (map[uuid.UUID]string, error) {
	onRoster := make(map[uuid.UUID]bool, len(roster))
	for _, rs := range roster {
		onRoster[rs.StudentID] = true
	}
	var strayIDs []uuid.UUID
	for _, e := range entries {
		if !onRoster[e.AttendanceEntriesStudentID] {
			strayIDs = append(strayIDs, e.AttendanceEntriesStudentID)
		}
	}
	names := map[uuid.UUID]string{}
	if len(strayIDs) == 0 {
		return names, nil
	}
	var students []studentModel.StudentModel
	if err := s.DB.Where("students_id IN ?", strayIDs).Find(&students).Error; err != nil {
		return nil, fmt.Errorf("load student names: %w", err)
	}
	for _, st := range students {
		names[st.StudentsID] = st.StudentsFullName
	}
	return names, nil
}

// MarkAttendance upserts one entry per (session, student). Re-marking a
// student overwrites the previous status. Returns the merged view after
// the write.
func (s *Service) MarkAttendance(orgID, sessionID, markedBy uuid.UUID, inputs []dto.AttendanceEntryInput) (*dto.SessionAttendanceResponse, error) {
	if _, err := s.loadSession(orgID, sessionID); err != nil {
		return nil, err
	}

	if len(inputs) > 0 {
		rows := make([]attModel.AttendanceEntryModel, 0, len(inputs))
		for _, in := range inputs {
			rows = append(rows, attModel.AttendanceEntryModel{
				AttendanceEntriesOrgID:     orgID,
				AttendanceEntriesSessionID: sessionID,
				AttendanceEntriesStudentID: in.StudentID,
				AttendanceEntriesStatus:    in.Status,
				AttendanceEntriesNote:      in.Note,
				AttendanceEntriesMarkedBy:  &markedBy,
			})
		}
		err := s.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_entries_session_id"},
				{Name: "attendance_entries_student_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_entries_status",
				"attendance_entries_note",
				"attendance_entries_marked_by",
				"attendance_entries_updated_at",
			}),
		}).Create(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("upsert attendance entries: %w", err)
		}
	}

	return s.SessionAttendance(orgID, sessionID)
}
