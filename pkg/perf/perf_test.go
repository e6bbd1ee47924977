package perf

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// --- Batch tests ------------------------------------------------------------

func pfConst(id, v string) Task[string] {
	return Task[string]{ID: id, Run: func() (string, error) { return v, nil }}
}

func TestBatch3Tasks(t *testing.T) {
	tasks := []Task[string]{pfConst("a", "A"), pfConst("b", "B"), pfConst("c", "C")}

	results := Batch(tasks, 4)
	if len(results) != 3 {
		t.Fatalf("Batch: got %d results, want 3", len(results))
	}
	for i, want := range []string{"A", "B", "C"} {
		if results[i].Value != want || results[i].Err != nil {
			t.Errorf("results[%d] = %+v, want %q", i, results[i], want)
		}
	}
	if results[1].ID != "b" {
		t.Errorf("results[1].ID = %q, want b", results[1].ID)
	}
}

func TestBatch0Tasks(t *testing.T) {
	if results := Batch[int](nil, 4); len(results) != 0 {
		t.Errorf("Batch(nil): got %d results, want 0", len(results))
	}
}

func TestBatch1Worker(t *testing.T) {
	// Serial execution runs in input order.
	var order []int
	tasks := make([]Task[int], 3)
	for i := range tasks {
		tasks[i] = Task[int]{Run: func() (int, error) { order = append(order, i); return i * 10, nil }}
	}

	results := Batch(tasks, 0)
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("serial execution order = %v, want [0 1 2]", order)
	}
	if results[2].Value != 20 {
		t.Errorf("results[2].Value = %d, want 20", results[2].Value)
	}
}

func TestBatchBoundedWorkers(t *testing.T) {
	var running, peak atomic.Int32
	tasks := make([]Task[struct{}], 12)
	for i := range tasks {
		tasks[i] = Task[struct{}]{Run: func() (struct{}, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			running.Add(-1)
			return struct{}{}, nil
		}}
	}

	Batch(tasks, 3)
	if p := peak.Load(); p > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", p)
	}
}

func TestBatchErrorsAndPanics(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task[string]{
		pfConst("ok", "ok"),
		{ID: "panics", Run: func() (string, error) { panic("kaput") }},
		{ID: "fails", Run: func() (string, error) { return "", boom }},
		{ID: "nil"},
	}

	results := Batch(tasks, 2)
	if results[0].Err != nil || results[0].Value != "ok" {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Err == nil || !strings.Contains(results[1].Err.Error(), "panicked") {
		t.Errorf("results[1].Err = %v, want panic error", results[1].Err)
	}
	if !errors.Is(results[2].Err, boom) {
		t.Errorf("results[2].Err = %v, want boom", results[2].Err)
	}
	if !errors.Is(results[3].Err, ErrNilTask) {
		t.Errorf("results[3].Err = %v, want ErrNilTask", results[3].Err)
	}
}

// --- DefaultThresholds tests ------------------------------------------------

func TestDefaultThresholdsAllPositive(t *testing.T) {
	for _, th := range DefaultThresholds() {
		if th.MaxNs <= 0 || th.MaxAlloc <= 0 {
			t.Errorf("threshold %q has non-positive budget: %+v", th.Name, th)
		}
	}
}

func TestDefaultThresholdNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, th := range DefaultThresholds() {
		if seen[th.Name] {
			t.Errorf("duplicate threshold name: %q", th.Name)
		}
		seen[th.Name] = true
	}
}

// --- CheckRegression tests --------------------------------------------------

func TestCheckRegression(t *testing.T) {
	thresholds := []Threshold{
		{Name: "fast_op", MaxNs: 1_000_000, MaxAlloc: 1024},
		{Name: "slow_op", MaxNs: 1_000},
		{Name: "alloc_op", MaxAlloc: 100},
	}

	tests := []struct {
		name   string
		result NamedResult
		field  string
	}{
		{"within budget", NamedResult{"fast_op", testing.BenchmarkResult{N: 1000, T: 100 * time.Microsecond, MemBytes: 64000}}, ""},
		{"too slow", NamedResult{"slow_op", testing.BenchmarkResult{N: 1, T: 10 * time.Millisecond}}, "ns"},
		{"too many bytes", NamedResult{"alloc_op", testing.BenchmarkResult{N: 1, T: time.Nanosecond, MemBytes: 1000}}, "alloc"},
		{"unknown name", NamedResult{"other", testing.BenchmarkResult{N: 1, T: time.Hour}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := CheckRegression([]NamedResult{tt.result}, thresholds)
			if tt.field == "" {
				if len(v) != 0 {
					t.Errorf("expected no violations, got %+v", v)
				}
				return
			}
			if len(v) != 1 {
				t.Fatalf("expected 1 violation, got %d", len(v))
			}
			if v[0].Field != tt.field || v[0].Threshold.Name != tt.result.Name {
				t.Errorf("violation = %+v, want field %q on %q", v[0], tt.field, tt.result.Name)
			}
		})
	}
}

func TestCheckRegressionEmptyInputs(t *testing.T) {
	if v := CheckRegression(nil, DefaultThresholds()); v != nil {
		t.Errorf("expected nil for nil results, got %v", v)
	}
	one := []NamedResult{{Name: "x", Result: testing.BenchmarkResult{N: 1, T: time.Second}}}
	if v := CheckRegression(one, nil); v != nil {
		t.Errorf("expected nil for nil thresholds, got %v", v)
	}
}
