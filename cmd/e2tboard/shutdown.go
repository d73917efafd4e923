package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// cleanupManager runs registered teardown steps once, in registration
// order, under a shared timeout. A failing or panicking step never
// blocks the steps after it.
type cleanupManager struct {
	mu      sync.Mutex
	steps   []cleanupStep
	timeout time.Duration
	once    sync.Once
	log     zerolog.Logger
}

type cleanupStep struct {
	name string
	fn   func() error
}

func newCleanupManager(timeout time.Duration, logger zerolog.Logger) *cleanupManager {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &cleanupManager{timeout: timeout, log: logger}
}

// registerFunc adds a named teardown step.
func (cm *cleanupManager) registerFunc(name string, fn func() error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.steps = append(cm.steps, cleanupStep{name: name, fn: fn})
}

// execute runs the registered steps. Only the first call does anything;
// later calls return nil immediately.
func (cm *cleanupManager) execute() []error {
	var errs []error
	cm.once.Do(func() {
		errs = cm.run()
	})
	return errs
}

func (cm *cleanupManager) run() []error {
	cm.mu.Lock()
	steps := make([]cleanupStep, len(cm.steps))
	copy(steps, cm.steps)
	cm.mu.Unlock()

	if len(steps) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	done := make(chan []error, 1)
	go func() {
		var errs []error
		for _, step := range steps {
			if err := cm.runStep(step); err != nil {
				errs = append(errs, err)
			}
		}
		done <- errs
	}()

	select {
	case errs := <-done:
		return errs
	case <-ctx.Done():
		cm.log.Warn().Dur("timeout", cm.timeout).Msg("cleanup timed out, some steps may not have run")
		return []error{errors.New("cleanup timeout exceeded")}
	}
}

func (cm *cleanupManager) runStep(step cleanupStep) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cleanup %s: panic: %v", step.name, r)
			cm.log.Error().Str("step", step.name).Interface("panic", r).Msg("cleanup step panicked")
		}
	}()

	if err := step.fn(); err != nil {
		cm.log.Error().Err(err).Str("step", step.name).Msg("cleanup step failed")
		return fmt.Errorf("cleanup %s: %w", step.name, err)
	}
	cm.log.Debug().Str("step", step.name).Msg("cleanup step done")
	return nil
}
