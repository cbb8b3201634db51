package identity

import (
	"sync"
	"time"
)

// attemptLimiter tracks failed verification attempts per email within a
// sliding window. Successful verification resets the email's counter.
type attemptLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
	now      func() time.Time
}

func newAttemptLimiter(max int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
		now:      time.Now,
	}
}

// allow reports whether another verification attempt is permitted.
func (l *attemptLimiter) allow(email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.prune(email)) < l.max
}

// fail records a failed attempt.
func (l *attemptLimiter) fail(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts[email] = append(l.prune(email), l.now())
}

// reset clears the email's failed attempts.
func (l *attemptLimiter) reset(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.attempts, email)
}

// prune drops attempts older than the window. Caller must hold mu.
func (l *attemptLimiter) prune(email string) []time.Time {
	cutoff := l.now().Add(-l.window)
	kept := l.attempts[email][:0]
	for _, at := range l.attempts[email] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	if len(kept) == 0 {
		delete(l.attempts, email)
		return nil
	}
	l.attempts[email] = kept
	return kept
}
