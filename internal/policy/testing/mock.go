// Package testing provides shared test utilities for the policy engine
// boundary.
package testing

import (
	"sync"

	"github.com/privgate/privgate/internal/hostapi"
	"github.com/privgate/privgate/internal/policy"
)

// CredCall records one DecideCredentialTransition invocation.
type CredCall struct {
	OldUID  uint32
	NewUID  uint32
	NewEUID uint32
}

// MockEngine is a spy implementation of policy.Engine for tests.
type MockEngine struct {
	mu        sync.Mutex
	credCalls []CredCall
	observed  []string

	// DecideResult is returned from DecideCredentialTransition unless
	// DecideFn is set.
	DecideResult policy.Decision

	// DecideFn, when set, computes the decision.
	DecideFn func(oldUID, newUID, newEUID uint32) policy.Decision

	// PanicOnDecide and PanicOnObserve make the corresponding method panic,
	// for exercising the callers' failure absorption.
	PanicOnDecide  bool
	PanicOnObserve bool
}

// DecideCredentialTransition implements policy.Engine.
func (m *MockEngine) DecideCredentialTransition(oldUID, newUID, newEUID uint32) policy.Decision {
	m.mu.Lock()
	m.credCalls = append(m.credCalls, CredCall{OldUID: oldUID, NewUID: newUID, NewEUID: newEUID})
	m.mu.Unlock()

	if m.PanicOnDecide {
		panic("mock engine: decide panic requested")
	}
	if m.DecideFn != nil {
		return m.DecideFn(oldUID, newUID, newEUID)
	}
	return m.DecideResult
}

// ObserveInitCandidate implements policy.Engine.
func (m *MockEngine) ObserveInitCandidate(file *hostapi.File) {
	m.mu.Lock()
	if file != nil {
		m.observed = append(m.observed, file.Path)
	} else {
		m.observed = append(m.observed, "")
	}
	m.mu.Unlock()

	if m.PanicOnObserve {
		panic("mock engine: observe panic requested")
	}
}

// CredCalls returns a copy of the recorded credential calls.
func (m *MockEngine) CredCalls() []CredCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CredCall, len(m.credCalls))
	copy(out, m.credCalls)
	return out
}

// Observed returns a copy of the recorded observation paths.
func (m *MockEngine) Observed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.observed))
	copy(out, m.observed)
	return out
}

// CallCount returns the total number of engine invocations of both kinds.
func (m *MockEngine) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.credCalls) + len(m.observed)
}
