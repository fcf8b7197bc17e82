package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ayesha", "ayesha@example.com", "hunter22", "")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("Register() must not return the password hash")
	}
	if !user.Preferences.Notifications.Push {
		t.Error("new user should have push notifications enabled")
	}
	if user.Preferences.Reminders.Workout != "07:00" || user.Preferences.Reminders.Meal != "12:00" {
		t.Errorf("unexpected default reminder times: %+v", user.Preferences.Reminders)
	}

	token, logged, err := svc.Login(ctx, "ayesha@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Error("Login() should return a token")
	}
	if logged.Email != "ayesha@example.com" {
		t.Errorf("Login() user email = %q", logged.Email)
	}
	if logged.PasswordHash != "" {
		t.Error("Login() must not return the password hash")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "First", "same@example.com", "password1", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	_, err := svc.Register(ctx, "Second", "same@example.com", "password2", "")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestLoginFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ayesha", "ayesha@example.com", "hunter22", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		if !errors.Is(err, ErrUnknownUser) {
			t.Errorf("Login() error = %v, want ErrUnknownUser", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ayesha@example.com", "not-it")
		if !errors.Is(err, ErrWrongPassword) {
			t.Errorf("Login() error = %v, want ErrWrongPassword", err)
		}
	})
}
