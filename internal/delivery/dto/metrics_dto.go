package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MetricsOverviewResponse struct {
	TotalAppointments int64           `json:"total_appointments"`
	ActiveUsers       int64           `json:"active_users"`
	RevenueToday      decimal.Decimal `json:"revenue_today"`
	PatientsToday     int64           `json:"patients_today"`
	PendingLabTests   int64           `json:"pending_lab_tests"`
	LowStockItems     int64           `json:"low_stock_items"`
}

type DoctorDashboardResponse struct {
	AppointmentsToday []AppointmentResponse `json:"appointments_today"`
	TotalPatients     int                   `json:"total_patients"`
	NextAppointment   *AppointmentResponse  `json:"next_appointment"`
}

type ReceptionistDashboardResponse struct {
	AppointmentsToday []AppointmentResponse `json:"appointments_today"`
	WaitingPatients   []AppointmentResponse `json:"waiting_patients"`
	TotalToday        int                   `json:"total_today"`
}

type PharmacistDashboardResponse struct {
	LowStockItems []PharmacyItemResponse `json:"low_stock_items"`
	ExpiringItems []PharmacyItemResponse `json:"expiring_items"`
	AlertsCount   int                    `json:"alerts_count"`
}

type PharmacyItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	ClinicID          uuid.UUID       `json:"clinic_id"`
	Name              string          `json:"name"`
	QuantityAvailable int             `json:"quantity_available"`
	ReorderLevel      int             `json:"reorder_level"`
	ExpiryDate        string          `json:"expiry_date,omitempty"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	CreatedAt         time.Time       `json:"created_at"`
}
