// Package jobmgr runs named, cancellable background jobs with in-memory
// tracking. It backs every delayed side effect in the bot (reminders,
// temporary-notice deletion) so that no bare timer outlives process
// shutdown: StopAll cancels everything still pending.
//
// The package is intentionally minimal: no retry logic, no workers, no
// persistence. Jobs run in separate goroutines and remove themselves on
// completion.
package jobmgr

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Job represents a running unit of work.
type Job struct {
	Name   string
	Cancel context.CancelFunc
}

// StatusReporter receives lifecycle events for jobs. Example messages:
//
//	running:remind:123
//	error:remind:123:channel gone
//	done:remind:123
type StatusReporter func(string)

// Manager orchestrates starting, stopping and tracking jobs. It is safe for
// concurrent use.
type Manager struct {
	mu       sync.Mutex
	jobs     map[string]*Job
	Reporter StatusReporter
}

// NewManager creates a new Manager. The reporter callback may be nil.
func NewManager(reporter StatusReporter) *Manager {
	return &Manager{
		jobs:     make(map[string]*Job),
		Reporter: reporter,
	}
}

// StartAsync runs a job in a separate goroutine and returns immediately. If
// a job with the same name is already running, an error is returned. Jobs
// are removed automatically after completion, success or failure.
func (m *Manager) StartAsync(name string, runner func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	job := &Job{Name: name, Cancel: cancel}

	m.mu.Lock()
	if _, exists := m.jobs[name]; exists {
		m.mu.Unlock()
		cancel()
		return fmt.Errorf("job '%s' is already running", name)
	}
	m.jobs[name] = job
	m.mu.Unlock()

	go func() {
		m.report("running:" + name)

		err := runner(ctx)
		if err != nil {
			m.report("error:" + name + ":" + err.Error())
		} else {
			m.report("done:" + name)
		}

		m.mu.Lock()
		delete(m.jobs, name)
		m.mu.Unlock()
	}()

	return nil
}

// After schedules fn to run once delay has elapsed, unless the job is
// stopped first. Cancellation is not an error.
func (m *Manager) After(name string, delay time.Duration, fn func(ctx context.Context) error) error {
	return m.StartAsync(name, func(ctx context.Context) error {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			return fn(ctx)
		}
	})
}

// Stop cancels a running job by name. If the job is not running, an error is
// returned.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[name]
	if !ok {
		return fmt.Errorf("job '%s' not running", name)
	}

	job.Cancel()
	delete(m.jobs, name)
	return nil
}

// StopAll cancels every running job. Call on shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, job := range m.jobs {
		job.Cancel()
		delete(m.jobs, name)
	}
}

// List returns the names of active jobs.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.jobs))
	for k := range m.jobs {
		out = append(out, k)
	}
	return out
}

// Status returns a human-readable summary of active jobs.
func (m *Manager) Status() string {
	active := m.List()
	if len(active) == 0 {
		return "No jobs are running."
	}
	return fmt.Sprintf("Running jobs: %s", strings.Join(active, ", "))
}

func (m *Manager) report(msg string) {
	if m.Reporter != nil {
		m.Reporter(msg)
	}
}
