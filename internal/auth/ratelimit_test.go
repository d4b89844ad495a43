package auth

import (
	"testing"
	"time"
)

func newTestLimiter() *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		MaxAttempts:     3,
		WindowDuration:  time.Minute,
		LockoutDuration: time.Minute,
		CleanupInterval: time.Hour,
	})
}

func TestRateLimiter_AllowFreshKey(t *testing.T) {
	rl := newTestLimiter()
	defer rl.Stop()

	allowed, retryAfter := rl.Allow("10.0.0.1", "alice")
	if !allowed {
		t.Error("fresh key should be allowed")
	}
	if retryAfter != 0 {
		t.Errorf("retryAfter = %v, want 0", retryAfter)
	}
}

func TestRateLimiter_LockoutAfterMaxAttempts(t *testing.T) {
	rl := newTestLimiter()
	defer rl.Stop()

	for i := 0; i < 2; i++ {
		locked, _ := rl.RecordFailure("10.0.0.1", "alice")
		if locked {
			t.Fatalf("locked after %d attempts, want lockout at 3", i+1)
		}
	}

	locked, retryAfter := rl.RecordFailure("10.0.0.1", "alice")
	if !locked {
		t.Fatal("third failure should trigger lockout")
	}
	if retryAfter <= 0 {
		t.Errorf("retryAfter = %v, want > 0", retryAfter)
	}

	allowed, _ := rl.Allow("10.0.0.1", "alice")
	if allowed {
		t.Error("locked key should not be allowed")
	}

	// Other IP+username combinations are unaffected
	if allowed, _ := rl.Allow("10.0.0.2", "alice"); !allowed {
		t.Error("different IP should be allowed")
	}
	if allowed, _ := rl.Allow("10.0.0.1", "bob"); !allowed {
		t.Error("different username should be allowed")
	}
}

func TestRateLimiter_RecordSuccessClears(t *testing.T) {
	rl := newTestLimiter()
	defer rl.Stop()

	rl.RecordFailure("10.0.0.1", "alice")
	rl.RecordFailure("10.0.0.1", "alice")
	rl.RecordSuccess("10.0.0.1", "alice")

	// Counter reset, three more failures needed for lockout
	locked, _ := rl.RecordFailure("10.0.0.1", "alice")
	if locked {
		t.Error("single failure after success should not lock")
	}
}

func TestRateLimiter_WindowExpiryResets(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		MaxAttempts:     3,
		WindowDuration:  10 * time.Millisecond,
		LockoutDuration: time.Minute,
		CleanupInterval: time.Hour,
	})
	defer rl.Stop()

	rl.RecordFailure("10.0.0.1", "alice")
	rl.RecordFailure("10.0.0.1", "alice")

	time.Sleep(20 * time.Millisecond)

	allowed, _ := rl.Allow("10.0.0.1", "alice")
	if !allowed {
		t.Error("key should be allowed after window expiry")
	}

	// And the counter starts over
	locked, _ := rl.RecordFailure("10.0.0.1", "alice")
	if locked {
		t.Error("first failure of new window should not lock")
	}
}

func TestRateLimiter_ZeroConfigUsesDefaults(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{})
	defer rl.Stop()

	if rl.maxAttempts != 5 {
		t.Errorf("maxAttempts = %d, want 5", rl.maxAttempts)
	}
	if rl.windowDuration != 15*time.Minute {
		t.Errorf("windowDuration = %v, want 15m", rl.windowDuration)
	}
	if rl.lockoutDuration != 30*time.Minute {
		t.Errorf("lockoutDuration = %v, want 30m", rl.lockoutDuration)
	}
}
