package health

import (
	"context"
	"sync"
)

// Registry fans a readiness probe out to every registered checker.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// Report is the aggregated readiness verdict, keyed by component name.
type Report struct {
	Status     Status            `json:"status"`
	Components map[string]Result `json:"components,omitempty"`
}

// CheckAll runs every checker concurrently. The overall status degrades to
// down when any single component is down.
func (r *Registry) CheckAll(ctx context.Context) Report {
	report := Report{Status: StatusUp}
	if len(r.checkers) == 0 {
		return report
	}

	report.Components = make(map[string]Result, len(r.checkers))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, c := range r.checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			res := c.Check(ctx)
			mu.Lock()
			report.Components[c.Name()] = res
			mu.Unlock()
		}(c)
	}
	wg.Wait()

	for _, res := range report.Components {
		if res.Status == StatusDown {
			report.Status = StatusDown
			break
		}
	}
	return report
}
