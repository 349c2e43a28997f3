package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestRunCompletesAgainstServer(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	if err := run([]string{"-p", "2", "-r", "3", srv.URL}, &buf); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if got := atomic.LoadInt64(&hits); got != 6 {
		t.Errorf("server hits = %d, want 6", got)
	}
	if !strings.Contains(buf.String(), "Total Requests:    6") {
		t.Errorf("report missing totals:\n%s", buf.String())
	}
}

// TestRunAllFailuresStillSucceeds ensures a 100% failure rate is a valid,
// reportable outcome rather than a program error.
func TestRunAllFailuresStillSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	if err := run([]string{"-v", "-r", "4", srv.URL}, &buf); err != nil {
		t.Fatalf("run() error = %v, want nil despite failed requests", err)
	}

	got := buf.String()
	if !strings.Contains(got, "Failed:            4") {
		t.Errorf("report missing failure count:\n%s", got)
	}
	if !strings.Contains(got, "http_503: 4") {
		t.Errorf("verbose report missing failure breakdown:\n%s", got)
	}
}

func TestRunHelp(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"-h"}, &buf); err != nil {
		t.Errorf("run(-h) error = %v, want nil", err)
	}
}

func TestRunInvalidProcessCount(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"-p", "abc", "http://example.com/"}, &buf); err == nil {
		t.Error("run() error = nil, want failure for non-numeric -p")
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero processes", []string{"-p", "0", "http://example.com/"}},
		{"zero requests", []string{"-r", "0", "http://example.com/"}},
		{"malformed url", []string{"not-a-url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := run(tt.args, &buf); err == nil {
				t.Errorf("run(%v) error = nil, want configuration error", tt.args)
			}
		})
	}
}

func TestRunJSONOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	if err := run([]string{"--json-output", "-r", "2", srv.URL}, &buf); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"attempted": 2`) {
		t.Errorf("JSON output missing attempted count:\n%s", buf.String())
	}
}
