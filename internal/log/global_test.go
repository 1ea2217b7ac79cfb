package log

import (
	"sync"
	"testing"
)

func TestDefaultLogger(t *testing.T) {
	original := defaultLogger.Load()
	defer SetDefaultLogger(original)

	custom := Development()
	SetDefaultLogger(custom)
	if DefaultLogger() != custom {
		t.Error("DefaultLogger did not return the configured logger")
	}

	SetDefaultLogger(nil)
	lazy := DefaultLogger()
	if lazy == nil {
		t.Fatal("DefaultLogger returned nil when no default was set")
	}
	if DefaultLogger() != lazy {
		t.Error("lazily created logger should be reused")
	}
}

func TestDefaultLoggerConcurrentFirstUse(t *testing.T) {
	original := defaultLogger.Load()
	defer SetDefaultLogger(original)
	SetDefaultLogger(nil)

	const callers = 16
	got := make([]*Logger, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = DefaultLogger()
		}()
	}
	wg.Wait()

	for i, l := range got {
		if l != got[0] {
			t.Fatalf("caller %d got a different logger", i)
		}
	}
}
