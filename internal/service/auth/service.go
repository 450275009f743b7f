package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/auth"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/company"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	company.CompanyRepository
	jwt.Service
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by phone number: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	companyName, err := a.CompanyRepository.GetName(ctx, emp.CompanyID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to get company name: %w", err)
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.CompanyID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Token:       token,
		ExpiresAt:   expiresAt,
		EmployeeID:  emp.ID,
		Firstname:   emp.Firstname,
		Lastname:    emp.Lastname,
		CompanyID:   emp.CompanyID,
		CompanyName: companyName,
	}, nil
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepo,
		CompanyRepository:  companyRepo,
		Service:            jwtService,
	}
}
