package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
	"github.com/TechBirds21/hospital-web-hub/internal/usecase"
	"github.com/TechBirds21/hospital-web-hub/pkg/validator"
)

type mockAuthUsecase struct {
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	registerFn func(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
}

var _ usecase.AuthUsecase = (*mockAuthUsecase)(nil)

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return &dto.TokenResponse{}, nil
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return &dto.TokenResponse{}, nil
}

func (m *mockAuthUsecase) Logout(_ context.Context, _ *entity.User) *dto.MessageResponse {
	return &dto.MessageResponse{Message: "Successfully logged out"}
}

func TestRegisterHandlerMapsDuplicateEmailTo400(t *testing.T) {
	u := &mockAuthUsecase{
		registerFn: func(_ context.Context, _ *dto.RegisterRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrEmailAlreadyExists
		},
	}
	h := NewAuthHandler(u, validator.NewValidator())

	body := `{"email":"taken@clinic.test","password":"pw123456","role":"patient"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for duplicate email, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email already exists") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestLoginHandlerMapsBadCredentialsTo401(t *testing.T) {
	u := &mockAuthUsecase{
		loginFn: func(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(u, validator.NewValidator())

	body := `{"email":"dr@clinic.test","password":"wrong-pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad credentials, got %d", rec.Code)
	}
}
