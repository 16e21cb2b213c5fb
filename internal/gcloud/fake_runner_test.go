package gcloud

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// fakeRunner records every gcloud invocation and replies from scripted
// responses keyed by the leading arguments.
type fakeRunner struct {
	calls     [][]string
	responses map[string]string
	failures  map[string]error

	// failuresLeft fails a matching call N times before succeeding, for
	// exercising the propagation retry loop.
	failuresLeft map[string]int
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		responses:    make(map[string]string),
		failures:     make(map[string]error),
		failuresLeft: make(map[string]int),
	}
}

func (f *fakeRunner) Run(ctx context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, args)

	for prefix, left := range f.failuresLeft {
		if strings.HasPrefix(strings.Join(args, " "), prefix) && left > 0 {
			f.failuresLeft[prefix] = left - 1
			return "", fmt.Errorf("NOT_FOUND: fake transient failure")
		}
	}
	for prefix, err := range f.failures {
		if strings.HasPrefix(strings.Join(args, " "), prefix) {
			return "", err
		}
	}
	for prefix, response := range f.responses {
		if strings.HasPrefix(strings.Join(args, " "), prefix) {
			return response, nil
		}
	}
	return "", nil
}

// call returns the recorded invocation at index i joined as one string.
func (f *fakeRunner) call(i int) string {
	if i >= len(f.calls) {
		return ""
	}
	return strings.Join(f.calls[i], " ")
}

// countCalls returns how many recorded invocations start with prefix.
func (f *fakeRunner) countCalls(prefix string) int {
	count := 0
	for _, call := range f.calls {
		if strings.HasPrefix(strings.Join(call, " "), prefix) {
			count++
		}
	}
	return count
}

// noSleep replaces the propagation delay in tests.
func noSleep(p *Provisioner) *Provisioner {
	p.sleep = func(time.Duration) {}
	return p
}
