package authoring

import (
	"context"
	"sync"
	"time"

	"schedlink/internal/domain"
)

// DefaultDebounce is how long the checker waits after the last keystroke
// before firing the availability request.
const DefaultDebounce = 500 * time.Millisecond

// AvailabilityFunc checks whether a candidate custom URL is available.
type AvailabilityFunc func(ctx context.Context, customURL string) (*domain.URLValidation, error)

// URLChecker debounces custom-URL availability checks while the host types.
// A check is pending from the first keystroke until the verdict arrives;
// event submission must be refused while Pending reports true, otherwise the
// submit could race a stale availability verdict.
type URLChecker struct {
	check AvailabilityFunc
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	url     string
	result  *domain.URLValidation
}

// NewURLChecker returns a checker that calls check after the debounce delay.
// A delay of 0 uses DefaultDebounce.
func NewURLChecker(check AvailabilityFunc, delay time.Duration) *URLChecker {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &URLChecker{check: check, delay: delay}
}

// Input records a keystroke: the previous timer is reset and a new check is
// scheduled for after the debounce delay. The previous verdict is discarded.
func (c *URLChecker) Input(ctx context.Context, customURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.url = customURL
	c.result = nil
	c.pending = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, func() {
		c.run(ctx, customURL)
	})
}

func (c *URLChecker) run(ctx context.Context, customURL string) {
	verdict, err := c.check(ctx, customURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	// A newer keystroke superseded this check; drop the stale verdict.
	if c.url != customURL {
		return
	}
	c.pending = false
	if err != nil {
		c.result = &domain.URLValidation{Valid: false, Message: "could not verify availability"}
		return
	}
	c.result = verdict
}

// Pending reports whether a check is scheduled or in flight for the current
// input. Submission must wait for it to clear.
func (c *URLChecker) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Result returns the verdict for the current input, or nil while pending.
func (c *URLChecker) Result() *domain.URLValidation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
