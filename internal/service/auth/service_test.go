package auth

import (
	"context"
	"testing"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/auth"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/company"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	byPhone map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByPhoneNumber(_ context.Context, phoneNumber string) (employee.Employee, error) {
	emp, ok := f.byPhone[phoneNumber]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ResolveEmployeeSet(_ context.Context, _ employee.Category, _ string) ([]employee.Employee, error) {
	return nil, employee.ErrCategoryNotResolved
}

func (f *fakeEmployeeRepo) CountAll(_ context.Context) (int, error) {
	return len(f.byPhone), nil
}

type fakeCompanyRepo struct {
	name string
}

func (f *fakeCompanyRepo) GetName(_ context.Context, _ string) (string, error) {
	if f.name == "" {
		return "", company.ErrCompanyNotFound
	}
	return f.name, nil
}

func testRepo(t *testing.T) *fakeEmployeeRepo {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeEmployeeRepo{byPhone: map[string]employee.Employee{
		"+237600000001": {
			ID:          "emp-1",
			Firstname:   "Ada",
			Lastname:    "Lovelace",
			PhoneNumber: "+237600000001",
			Password:    string(hashed),
			CompanyID:   "company-1",
		},
	}}
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(testRepo(t), &fakeCompanyRepo{name: "Acme Corp"}, jwt.NewJWTService("test-secret-key", "1h"))

	resp, err := svc.Login(ctx, auth.LoginRequest{
		PhoneNumber: "+237600000001",
		Password:    "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "company-1", resp.CompanyID)
	assert.Equal(t, "Acme Corp", resp.CompanyName)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(testRepo(t), &fakeCompanyRepo{name: "Acme Corp"}, jwt.NewJWTService("test-secret-key", "1h"))

	_, err := svc.Login(ctx, auth.LoginRequest{
		PhoneNumber: "+237600000001",
		Password:    "wrong",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownPhone(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(testRepo(t), &fakeCompanyRepo{name: "Acme Corp"}, jwt.NewJWTService("test-secret-key", "1h"))

	_, err := svc.Login(ctx, auth.LoginRequest{
		PhoneNumber: "+237699999999",
		Password:    "password123",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(testRepo(t), &fakeCompanyRepo{name: "Acme Corp"}, jwt.NewJWTService("test-secret-key", "1h"))

	_, err := svc.Login(ctx, auth.LoginRequest{})
	require.Error(t, err)
}
