package entity

import (
	"time"

	"github.com/google/uuid"
)

// LabTestStatus represents the status of a lab test
type LabTestStatus string

const (
	LabTestStatusOrdered    LabTestStatus = "ordered"
	LabTestStatusCollected  LabTestStatus = "collected"
	LabTestStatusProcessing LabTestStatus = "processing"
	LabTestStatusCompleted  LabTestStatus = "completed"
	LabTestStatusCancelled  LabTestStatus = "cancelled"
)

// PendingLabTestStatuses are the statuses counted as pending on dashboards.
var PendingLabTestStatuses = []LabTestStatus{
	LabTestStatusOrdered,
	LabTestStatusCollected,
	LabTestStatusProcessing,
}

// LabTest represents a tenant-scoped laboratory test order.
type LabTest struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"clinic_id"`
	PatientID *uuid.UUID    `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	TestName  string        `gorm:"type:varchar(255);not null" json:"test_name"`
	Status    LabTestStatus `gorm:"type:varchar(20);not null;default:'ordered';index" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LabTest) TableName() string {
	return "lab_tests"
}
