package auth

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/config"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestService_CreateUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, config.Auth{BcryptCost: 10})

	tests := []struct {
		name     string
		username string
		email    string
		password string
		role     entities.UserRole
		wantErr  error
	}{
		{
			name:     "valid admin user",
			username: "admin",
			email:    "admin@example.com",
			password: "password12345",
			role:     entities.UserRoleAdmin,
			wantErr:  nil,
		},
		{
			name:     "missing username",
			username: "",
			email:    "test@example.com",
			password: "password12345",
			role:     entities.UserRoleViewer,
			wantErr:  ErrUsernameRequired,
		},
		{
			name:     "missing email",
			username: "testuser",
			email:    "",
			password: "password12345",
			role:     entities.UserRoleViewer,
			wantErr:  ErrEmailRequired,
		},
		{
			name:     "missing password",
			username: "testuser",
			email:    "test@example.com",
			password: "",
			role:     entities.UserRoleViewer,
			wantErr:  ErrPasswordRequired,
		},
		{
			name:     "password too short",
			username: "testuser",
			email:    "test@example.com",
			password: "short",
			role:     entities.UserRoleViewer,
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "invalid username characters",
			username: "bad user!",
			email:    "test@example.com",
			password: "password12345",
			role:     entities.UserRoleViewer,
			wantErr:  ErrUsernameInvalid,
		},
		{
			name:     "invalid email",
			username: "testuser",
			email:    "not-an-email",
			password: "password12345",
			role:     entities.UserRoleViewer,
			wantErr:  ErrEmailInvalid,
		},
		{
			name:     "invalid role",
			username: "testuser",
			email:    "test@example.com",
			password: "password12345",
			role:     entities.UserRole("invalid"),
			wantErr:  ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.CreateUser(tt.username, tt.email, tt.password, tt.role)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("CreateUser() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateUser() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("CreateUser() unexpected error = %v", err)
				return
			}
			if user == nil {
				t.Error("CreateUser() returned nil user")
				return
			}
			if user.Username != tt.username {
				t.Errorf("user.Username = %v, want %v", user.Username, tt.username)
			}
			if user.Role != tt.role {
				t.Errorf("user.Role = %v, want %v", user.Role, tt.role)
			}
			if user.PasswordHash == "" {
				t.Error("user.PasswordHash is empty")
			}
		})
	}
}

func TestService_CreateUser_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, config.Auth{BcryptCost: 10})

	_, err := svc.CreateUser("admin", "admin@example.com", "password12345", entities.UserRoleAdmin)
	if err != nil {
		t.Fatalf("Failed to create first user: %v", err)
	}

	_, err = svc.CreateUser("admin", "other@example.com", "password12345", entities.UserRoleViewer)
	if err != ErrUserExists {
		t.Errorf("Expected ErrUserExists for duplicate username, got %v", err)
	}

	_, err = svc.CreateUser("other", "admin@example.com", "password12345", entities.UserRoleViewer)
	if err != ErrUserExists {
		t.Errorf("Expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestService_Authenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, config.Auth{BcryptCost: 10})

	_, err := svc.CreateUser("testuser", "test@example.com", "password12345", entities.UserRoleViewer)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid credentials with username",
			username: "testuser",
			password: "password12345",
			wantErr:  nil,
		},
		{
			name:     "valid credentials with email",
			username: "test@example.com",
			password: "password12345",
			wantErr:  nil,
		},
		{
			name:     "wrong password",
			username: "testuser",
			password: "wrongpassword",
			wantErr:  ErrInvalidPassword,
		},
		{
			name:     "non-existent user",
			username: "nobody",
			password: "password12345",
			wantErr:  ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(tt.username, tt.password)
			if err != tt.wantErr {
				t.Errorf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && user == nil {
				t.Error("Authenticate() returned nil user for valid credentials")
			}
		})
	}
}

func TestService_Authenticate_Lockout(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, config.Auth{
		BcryptCost:       10,
		MaxLoginAttempts: 3,
		LockoutDuration:  time.Hour,
	})

	user, err := svc.CreateUser("testuser", "test@example.com", "password12345", entities.UserRoleViewer)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Authenticate("testuser", "wrongpassword"); err != ErrInvalidPassword {
			t.Fatalf("attempt %d: error = %v, want ErrInvalidPassword", i+1, err)
		}
	}

	// Account is now locked, even with the right password
	_, err = svc.Authenticate("testuser", "password12345")
	if err != ErrAccountLocked {
		t.Errorf("Authenticate(locked) error = %v, want ErrAccountLocked", err)
	}

	// Expire the lock and verify login resets the counters
	past := time.Now().Add(-time.Minute)
	db.Model(&entities.User{}).Where("id = ?", user.ID).Update("locked_until", past)

	authed, err := svc.Authenticate("testuser", "password12345")
	if err != nil {
		t.Fatalf("Authenticate(after lock expiry) error = %v", err)
	}

	var fresh entities.User
	if err := db.First(&fresh, authed.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if fresh.FailedLoginCount != 0 {
		t.Errorf("FailedLoginCount = %d, want 0 after successful login", fresh.FailedLoginCount)
	}
	if fresh.LockedUntil != nil {
		t.Errorf("LockedUntil = %v, want nil after successful login", fresh.LockedUntil)
	}
}

func TestService_ChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, config.Auth{BcryptCost: 10})

	user, err := svc.CreateUser("testuser", "test@example.com", "oldpassword1", entities.UserRoleViewer)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	err = svc.ChangePassword(user.ID, "wrongpassword", "newpassword1")
	if err != ErrInvalidPassword {
		t.Errorf("ChangePassword(wrong old) error = %v, want ErrInvalidPassword", err)
	}

	err = svc.ChangePassword(user.ID, "oldpassword1", "newpassword1")
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	_, err = svc.Authenticate("testuser", "newpassword1")
	if err != nil {
		t.Errorf("Authenticate(new password) error = %v", err)
	}

	_, err = svc.Authenticate("testuser", "oldpassword1")
	if err != ErrInvalidPassword {
		t.Errorf("Authenticate(old password) error = %v, want ErrInvalidPassword", err)
	}
}

func TestService_HasUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, config.Auth{BcryptCost: 10})

	hasUsers, err := svc.HasUsers()
	if err != nil {
		t.Fatalf("HasUsers() error = %v", err)
	}
	if hasUsers {
		t.Error("HasUsers() = true, want false for empty DB")
	}

	_, err = svc.CreateUser("testuser", "test@example.com", "password12345", entities.UserRoleViewer)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	hasUsers, err = svc.HasUsers()
	if err != nil {
		t.Fatalf("HasUsers() after create error = %v", err)
	}
	if !hasUsers {
		t.Error("HasUsers() = false, want true after creating user")
	}
}

func TestService_IsAuthEnabled(t *testing.T) {
	db := setupTestDB(t)

	svc := NewService(db, config.Auth{Mode: config.AuthModeNone})
	if svc.IsAuthEnabled() {
		t.Error("IsAuthEnabled() = true for AuthModeNone")
	}

	svc = NewService(db, config.Auth{Mode: config.AuthModeLocal})
	if !svc.IsAuthEnabled() {
		t.Error("IsAuthEnabled() = false for AuthModeLocal")
	}
}
