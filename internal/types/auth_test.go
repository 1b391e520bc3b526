package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request CreateUserRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: CreateUserRequest{
				Nickname: "건강지킴이",
				Email:    "user@example.com",
				Password: "password123",
			},
			wantErr: false,
		},
		{
			name: "valid request with profile fields",
			request: CreateUserRequest{
				Nickname: "건강지킴이",
				Email:    "user@example.com",
				Password: "password123",
				Gender:   "F",
				Age:      29,
			},
			wantErr: false,
		},
		{
			name: "invalid gender",
			request: CreateUserRequest{
				Nickname: "건강지킴이",
				Email:    "user@example.com",
				Password: "password123",
				Gender:   "X",
			},
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name: "missing nickname",
			request: CreateUserRequest{
				Email:    "user@example.com",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "missing email",
			request: CreateUserRequest{
				Nickname: "건강지킴이",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "invalid email format",
			request: CreateUserRequest{
				Nickname: "건강지킴이",
				Email:    "not-an-email",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name: "password too short",
			request: CreateUserRequest{
				Nickname: "건강지킴이",
				Email:    "user@example.com",
				Password: "short",
			},
			wantErr: true,
			errMsg:  "min",
		},
		{
			name: "password exactly 8 characters",
			request: CreateUserRequest{
				Nickname: "건강지킴이",
				Email:    "user@example.com",
				Password: "12345678",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: LoginRequest{
				Email:    "user@example.com",
				Password: "password123",
			},
			wantErr: false,
		},
		{
			name:    "missing email",
			request: LoginRequest{Password: "password123"},
			wantErr: true,
		},
		{
			name: "invalid email format",
			request: LoginRequest{
				Email:    "not-an-email",
				Password: "password123",
			},
			wantErr: true,
		},
		{
			name:    "missing password",
			request: LoginRequest{Email: "user@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdatePasswordRequest_Validation(t *testing.T) {
	valid := UpdatePasswordRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
	}
	require.NoError(t, valid.Validate())

	short := UpdatePasswordRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "short",
	}
	err := short.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min")
}
