package main

import (
	"testing"
	"time"
)

func TestPromiseLifecycle(t *testing.T) {
	release := make(chan struct{})

	promise := AsyncTask(func(yield func(string)) int {
		yield("working")
		<-release
		return 42
	})

	if !promise.Started() {
		t.Fatal("Started = false for a running task")
	}
	if !promise.Waiting() {
		t.Fatal("Waiting = false while the task is blocked")
	}

	close(release)

	deadline := time.Now().Add(5 * time.Second)
	for promise.Get() == nil {
		if time.Now().After(deadline) {
			t.Fatal("task did not finish")
		}

		time.Sleep(time.Millisecond)
	}

	if promise.Waiting() {
		t.Error("Waiting = true after the result arrived")
	}
	if status := promise.Status(); status != nil {
		t.Errorf("Status = %q after completion, want nil", *status)
	}

	if value := promise.GetOnce(); value == nil || *value != 42 {
		t.Errorf("GetOnce = %v, want 42", value)
	}
	if value := promise.GetOnce(); value != nil {
		t.Errorf("GetOnce handed the result out twice: %v", value)
	}
	if value := promise.Get(); value == nil || *value != 42 {
		t.Errorf("Get = %v after GetOnce, want 42 still", value)
	}
}

func TestPromiseZeroValue(t *testing.T) {
	var promise Promise[int, string]

	if promise.Started() || promise.Waiting() {
		t.Error("zero value promise reports a running task")
	}
	if promise.Get() != nil || promise.GetOnce() != nil || promise.Status() != nil {
		t.Error("zero value promise handed out a result")
	}
}
