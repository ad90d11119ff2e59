// Package testkit provides HTTP test doubles for the shop client.
//
// MockTransport implements http.RoundTripper: it matches outgoing requests
// against scripted steps and returns synthetic responses (or synthetic
// network failures) instead of making real calls.
//
// Install it on the shared client before the test:
//
//	mt := testkit.NewMockTransport(
//	    &testkit.MockStep{MatchURL: "/checkout", Status: 200, Body: `{"success":true,"orderId":1}`},
//	)
//	http.DefaultClient.Transport = mt
//	defer http.ResetTransport()
package testkit

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
)

// MockStep scripts the reply for requests whose URL contains MatchURL.
type MockStep struct {
	MatchURL string
	Status   int
	Body     string
	Err      error // non-nil simulates an unreachable server

	calls int
}

// Calls reports how many times the step matched.
func (s *MockStep) Calls() int { return s.calls }

// MockTransport matches outgoing requests against its steps in order.
// Unmatched requests get a 404 so a test never escapes to the network.
type MockTransport struct {
	mu    sync.Mutex
	steps []*MockStep
	total int
}

func NewMockTransport(steps ...*MockStep) *MockTransport {
	return &MockTransport{steps: steps}
}

// RoundTrip intercepts the outgoing request.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	mt.total++

	for _, step := range mt.steps {
		if !strings.Contains(req.URL.String(), step.MatchURL) {
			continue
		}

		step.calls++
		if step.Err != nil {
			return nil, step.Err
		}

		return &http.Response{
			StatusCode: step.Status,
			Body:       io.NopCloser(strings.NewReader(step.Body)),
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Request:    req,
		}, nil
	}

	return &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader(`{"error":"no mock configured"}`)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

// TotalCalls reports how many requests reached the transport, matched or not.
func (mt *MockTransport) TotalCalls() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.total
}

// AssertAllCalled returns an error per step that was never triggered.
func (mt *MockTransport) AssertAllCalled() []error {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	var errs []error
	for _, s := range mt.steps {
		if s.calls == 0 {
			errs = append(errs, errors.New("testkit: mock step "+s.MatchURL+" was never called"))
		}
	}
	return errs
}
