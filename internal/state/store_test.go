package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestStore_RecordSuccess(t *testing.T) {
	s := NewStore("openai")

	before := time.Now()
	s.Record(120*time.Millisecond, nil)

	snap := s.Snapshot()
	if snap.Backend != "openai" {
		t.Fatalf("Backend = %q, want openai", snap.Backend)
	}
	if snap.Requests != 1 || snap.Failures != 0 {
		t.Fatalf("counts = %d/%d, want 1/0", snap.Requests, snap.Failures)
	}
	if snap.LastLatency != 120*time.Millisecond {
		t.Fatalf("LastLatency = %v, want 120ms", snap.LastLatency)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_SnapshotClonesError(t *testing.T) {
	var s Store
	origErr := errors.New("boom")
	s.Record(time.Second, origErr)

	snap := s.Snapshot()
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatal("cloned error should still match the original with errors.Is")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if s.Snapshot().IsDegraded() {
		t.Fatal("IsDegraded() = true, want false with 0 failures")
	}

	s.Record(0, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsDegraded() {
		t.Fatalf("after 1 failure: consecutive=%d degraded=%v", snap.ConsecutiveFailures, snap.IsDegraded())
	}

	s.Record(0, errors.New("fail 2"))
	if snap := s.Snapshot(); !snap.IsDegraded() {
		t.Fatal("IsDegraded() = false, want true with 2 failures")
	}

	s.Record(0, nil)
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsDegraded() {
		t.Fatalf("success should reset: consecutive=%d", snap.ConsecutiveFailures)
	}
	if snap.Requests != 3 || snap.Failures != 2 {
		t.Fatalf("counts = %d/%d, want 3/2", snap.Requests, snap.Failures)
	}
}

func TestStore_ConcurrentRecord(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				err = errors.New("odd one out")
			}
			s.Record(time.Millisecond, err)
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()

	if snap := s.Snapshot(); snap.Requests != 50 || snap.Failures != 25 {
		t.Fatalf("counts = %d/%d, want 50/25", snap.Requests, snap.Failures)
	}
}
