package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/http/middleware"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/internal/usecase"
	"github.com/TechBirds21/hospital-web-hub/pkg/validator"

	"github.com/google/uuid"
)

type mockAppointmentUsecase struct {
	listFn   func(ctx context.Context, query *dto.AppointmentQuery, user *entity.User) (*dto.AppointmentListResponse, error)
	createFn func(ctx context.Context, req *dto.CreateAppointmentRequest, user *entity.User) (*dto.AppointmentResponse, error)
	updateFn func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest, user *entity.User) (*dto.AppointmentResponse, error)
	cancelFn func(ctx context.Context, id uuid.UUID, user *entity.User) error
	queueFn  func(ctx context.Context, doctorID uuid.UUID, date string) (*dto.QueueResponse, error)
}

var _ usecase.AppointmentUsecase = (*mockAppointmentUsecase)(nil)

func (m *mockAppointmentUsecase) List(ctx context.Context, query *dto.AppointmentQuery, user *entity.User) (*dto.AppointmentListResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, query, user)
	}
	return &dto.AppointmentListResponse{}, nil
}

func (m *mockAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest, user *entity.User) (*dto.AppointmentResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req, user)
	}
	return &dto.AppointmentResponse{}, nil
}

func (m *mockAppointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest, user *entity.User) (*dto.AppointmentResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req, user)
	}
	return &dto.AppointmentResponse{}, nil
}

func (m *mockAppointmentUsecase) Cancel(ctx context.Context, id uuid.UUID, user *entity.User) error {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, id, user)
	}
	return nil
}

func (m *mockAppointmentUsecase) Queue(ctx context.Context, doctorID uuid.UUID, date string) (*dto.QueueResponse, error) {
	if m.queueFn != nil {
		return m.queueFn(ctx, doctorID, date)
	}
	return &dto.QueueResponse{}, nil
}

func createRequest(t *testing.T) *http.Request {
	t.Helper()
	body, err := json.Marshal(dto.CreateAppointmentRequest{
		PatientID:       uuid.New(),
		DoctorID:        uuid.New(),
		AppointmentDate: "2026-09-01",
		AppointmentTime: "09:30",
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	clinicID := uuid.New()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleReceptionist, ClinicID: &clinicID}

	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(string(body)))
	return req.WithContext(context.WithValue(req.Context(), middleware.UserKey, user))
}

func TestCreateHandlerMapsSlotConflictTo400(t *testing.T) {
	u := &mockAppointmentUsecase{
		createFn: func(_ context.Context, _ *dto.CreateAppointmentRequest, _ *entity.User) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrSlotUnavailable
		},
	}
	h := NewAppointmentHandler(u, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.Create(rec, createRequest(t))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an occupied slot, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Time slot not available") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateHandlerMapsCreationFailureTo400(t *testing.T) {
	u := &mockAppointmentUsecase{
		createFn: func(_ context.Context, _ *dto.CreateAppointmentRequest, _ *entity.User) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrCreationFailed
		},
	}
	h := NewAppointmentHandler(u, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.Create(rec, createRequest(t))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a failed insert, got %d", rec.Code)
	}
}

func TestCreateHandlerReturns201WithMessage(t *testing.T) {
	u := &mockAppointmentUsecase{
		createFn: func(_ context.Context, _ *dto.CreateAppointmentRequest, _ *entity.User) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{ID: uuid.New(), TokenNumber: 1, Status: "scheduled"}, nil
		},
	}
	h := NewAppointmentHandler(u, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.Create(rec, createRequest(t))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp dto.AppointmentMessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "Appointment created successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Appointment.Status != "scheduled" {
		t.Errorf("expected scheduled appointment in body, got %q", resp.Appointment.Status)
	}
}
