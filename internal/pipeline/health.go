package pipeline

import (
	"context"
	"fmt"
	"os"
)

// Health summarizes the readiness of one pipeline dependency.
type Health struct {
	Name   string
	Ready  bool
	Detail string
}

// Healthy constructs a ready Health record.
func Healthy(name string) Health {
	return Health{Name: name, Ready: true}
}

// Unhealthy constructs an unhealthy Health record with context detail.
func Unhealthy(name, detail string) Health {
	return Health{Name: name, Ready: false, Detail: detail}
}

// HealthCheck reports readiness of the batch store, the recognition engine,
// and the output directory.
func (p *Processor) HealthCheck(ctx context.Context) []Health {
	checks := make([]Health, 0, 3)

	if _, err := p.store.HealthSummary(ctx); err != nil {
		checks = append(checks, Unhealthy("store", err.Error()))
	} else {
		checks = append(checks, Healthy("store"))
	}

	if p.engine == nil {
		checks = append(checks, Unhealthy("ocr", "no recognition engine configured"))
	} else {
		checks = append(checks, Healthy(fmt.Sprintf("ocr (%s)", p.engine.Name())))
	}

	if dir := p.cfg.Paths.OutputDir; dir != "" {
		if info, err := os.Stat(dir); err != nil {
			checks = append(checks, Unhealthy("output", err.Error()))
		} else if !info.IsDir() {
			checks = append(checks, Unhealthy("output", dir+" is not a directory"))
		} else {
			checks = append(checks, Healthy("output"))
		}
	}

	return checks
}
