package models

import "time"

// AdmissionsMetric holds the aggregate admissions counters. The table is
// singleton-like: one row updated in place.
type AdmissionsMetric struct {
	ID                   int64     `db:"id" json:"id"`
	TotalApplicants      int       `db:"total_applicants" json:"total_applicants"`
	TargetApplicants     int       `db:"target_applicants" json:"target_applicants"`
	AcceptedStudents     int       `db:"accepted_students" json:"accepted_students"`
	TargetAcceptance     int       `db:"target_acceptance" json:"target_acceptance"`
	ConfirmedEnrollments int       `db:"confirmed_enrollments" json:"confirmed_enrollments"`
	TargetEnrollments    int       `db:"target_enrollments" json:"target_enrollments"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}
