package health

import (
	"context"
	"sync"
	"time"
)

// Status is the reported state of a single check or of the aggregate.
type Status string

const (
	StatusHealthy   Status = "Healthy"
	StatusDegraded  Status = "Degraded"
	StatusUnhealthy Status = "Unhealthy"
)

// rank orders statuses from best to worst for the worst-of aggregation.
func rank(s Status) int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	default:
		return 2
	}
}

// Worse returns the worse of two statuses.
func Worse(a, b Status) Status {
	if rank(b) > rank(a) {
		return b
	}
	return a
}

// Result is the outcome of one check invocation.
type Result struct {
	Status      Status `json:"status"`
	Description string `json:"description,omitempty"`
}

// Check is a named health probe. Checks hold no state between calls; each
// registry run re-invokes them synchronously.
type Check interface {
	Name() string
	Tags() []string
	Run(ctx context.Context) Result
}

// CheckFunc adapts a function into a Check.
type CheckFunc struct {
	name string
	tags []string
	fn   func(ctx context.Context) Result
}

// NewCheck creates a function-backed check.
func NewCheck(name string, tags []string, fn func(ctx context.Context) Result) *CheckFunc {
	return &CheckFunc{name: name, tags: tags, fn: fn}
}

func (c *CheckFunc) Name() string                   { return c.name }
func (c *CheckFunc) Tags() []string                 { return c.tags }
func (c *CheckFunc) Run(ctx context.Context) Result { return c.fn(ctx) }

// Entry is one check's contribution to a report.
type Entry struct {
	Status      Status        `json:"status"`
	Description string        `json:"description,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// Report is the aggregate outcome of a registry run.
type Report struct {
	Status        Status           `json:"status"`
	TotalDuration time.Duration    `json:"totalDuration"`
	Entries       map[string]Entry `json:"entries"`
}

// Predicate selects which registered checks take part in a run.
type Predicate func(Check) bool

// All selects every registered check.
func All(Check) bool { return true }

// None selects no checks, so a run trivially reports Healthy. Used for
// liveness: process aliveness must stay independent of dependency health.
func None(Check) bool { return false }

// WithTag selects checks carrying the given tag.
func WithTag(tag string) Predicate {
	return func(c Check) bool {
		for _, t := range c.Tags() {
			if t == tag {
				return true
			}
		}
		return false
	}
}

// Registry holds the named checks and reduces their results.
type Registry struct {
	mu     sync.RWMutex
	checks []Check
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a check to the registry.
func (r *Registry) Register(check Check) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, check)
}

// Run invokes every check matching the predicate synchronously and reduces
// to the worst observed status. An empty selection reports Healthy.
func (r *Registry) Run(ctx context.Context, match Predicate) Report {
	r.mu.RLock()
	checks := make([]Check, len(r.checks))
	copy(checks, r.checks)
	r.mu.RUnlock()

	report := Report{
		Status:  StatusHealthy,
		Entries: make(map[string]Entry),
	}

	start := time.Now()
	for _, check := range checks {
		if !match(check) {
			continue
		}
		checkStart := time.Now()
		result := check.Run(ctx)
		report.Entries[check.Name()] = Entry{
			Status:      result.Status,
			Description: result.Description,
			Tags:        check.Tags(),
			Duration:    time.Since(checkStart),
		}
		report.Status = Worse(report.Status, result.Status)
	}
	report.TotalDuration = time.Since(start)

	return report
}
