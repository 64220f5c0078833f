package speech

import (
	"context"
	"sync"
	"time"
)

// TestRecognizer returns canned results and records the calls it receives.
// A positive Delay blocks until it elapses or ctx is done.
type TestRecognizer struct {
	mu      sync.Mutex
	Results []Result
	Err     error
	Delay   time.Duration
	calls   int
	lastURI string
	lastCfg Config
}

func (r *TestRecognizer) Recognize(ctx context.Context, uri string, cfg Config) ([]Result, error) {
	r.mu.Lock()
	r.calls++
	r.lastURI = uri
	r.lastCfg = cfg
	delay := r.Delay
	r.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Results, nil
}

func (r *TestRecognizer) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *TestRecognizer) Last() (string, Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastURI, r.lastCfg
}
