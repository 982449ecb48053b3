package handler

import (
	"encoding/json"
	"net/http"

	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/http/middleware"
	"github.com/TechBirds21/hospital-web-hub/internal/usecase"
	"github.com/TechBirds21/hospital-web-hub/pkg/response"
	"github.com/TechBirds21/hospital-web-hub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// List returns the caller's visible appointments, optionally filtered by
// date, doctor_id, patient_id and status query parameters.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	query := &dto.AppointmentQuery{
		Date:      r.URL.Query().Get("date"),
		DoctorID:  r.URL.Query().Get("doctor_id"),
		PatientID: r.URL.Query().Get("patient_id"),
		Status:    r.URL.Query().Get("status"),
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), query, user)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidStatus, usecase.ErrInvalidID:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req, user)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, err.Error())
		case usecase.ErrSlotUnavailable:
			response.BadRequest(w, "Time slot not available")
		case usecase.ErrCreationFailed:
			response.BadRequest(w, "Failed to create appointment")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.AppointmentMessageResponse{
		Appointment: *appointment,
		Message:     "Appointment created successfully",
	})
}

// Update applies a partial update to an appointment.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req, user)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAppointmentOwner:
			response.Forbidden(w, "Not authorized to update this appointment")
		case usecase.ErrInvalidStatus:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.AppointmentMessageResponse{
		Appointment: *appointment,
		Message:     "Appointment updated successfully",
	})
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), id, user); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Message: "Appointment cancelled successfully"})
}

// Queue returns a doctor's active appointments for the day, defaulting to
// today when no date query parameter is given.
func (h *AppointmentHandler) Queue(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["doctor_id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	queue, err := h.appointmentUsecase.Queue(r.Context(), doctorID, r.URL.Query().Get("date"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get queue")
		}
		return
	}

	response.JSON(w, http.StatusOK, queue)
}
