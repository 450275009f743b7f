package auth

import "context"

type AuthService interface {
	// Login authenticates an employee by phone number and password and
	// issues an access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
