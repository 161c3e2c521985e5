package middleware

import "testing"

func TestRateLimiterBlocksAfterFiveFailures(t *testing.T) {
	rl := &InvalidAuthRateLimiter{attempts: make(map[string]*attemptInfo)}

	ip := "10.0.0.1"
	for i := 0; i < 5; i++ {
		if rl.Blocked(ip) {
			t.Fatalf("blocked after %d failures, want 5", i)
		}
		rl.RecordFailure(ip)
	}
	if !rl.Blocked(ip) {
		t.Error("not blocked after 5 failures")
	}
}

func TestRateLimiterIsolatesIPs(t *testing.T) {
	rl := &InvalidAuthRateLimiter{attempts: make(map[string]*attemptInfo)}

	for i := 0; i < 5; i++ {
		rl.RecordFailure("10.0.0.1")
	}
	if rl.Blocked("10.0.0.2") {
		t.Error("unrelated IP blocked")
	}
}
