package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRecover_WithPanic(t *testing.T) {
	draw := func() (err error) {
		defer Recover(&err, "render.draw")
		panic("plot: invalid canvas")
	}

	err := draw()
	if err == nil {
		t.Fatal("Expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if panicErr.Operation != "render.draw" {
		t.Errorf("Operation = %q", panicErr.Operation)
	}
	if panicErr.StackTrace == "" {
		t.Error("Expected non-empty stack trace")
	}
	if got := panicErr.Error(); got != "panic in render.draw: plot: invalid canvas" {
		t.Errorf("Error() = %q", got)
	}
	if !strings.Contains(panicErr.String(), "Stack trace:") {
		t.Error("String() should include stack trace information")
	}
}

func TestRecover_WithoutPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "noop")
		return nil
	}

	if err := fn(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestRecover_WithExistingError(t *testing.T) {
	originalErr := fmt.Errorf("create output file")

	fn := func() (err error) {
		defer Recover(&err, "render.save")
		err = originalErr
		panic("encoder exploded")
	}

	err := fn()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "panic in render.save") {
		t.Errorf("Error message should contain panic info: %s", err)
	}
	if !errors.Is(err, originalErr) {
		t.Error("Should be able to identify original error with errors.Is")
	}
}

func TestPanicError_UnwrapsErrorValues(t *testing.T) {
	cause := fmt.Errorf("boom")
	if NewPanicError("op", cause).Unwrap() != cause {
		t.Error("Unwrap should return an error panic value")
	}
	if NewPanicError("op", "text").Unwrap() != nil {
		t.Error("Unwrap should return nil for non-error panic values")
	}
}

func TestSafeExecute(t *testing.T) {
	if err := SafeExecute("ok", func() error { return nil }); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}

	fnErr := fmt.Errorf("function error")
	if err := SafeExecute("fails", func() error { return fnErr }); err != fnErr {
		t.Errorf("Expected original error, got %v", err)
	}

	err := SafeExecute("panics", func() error { panic(42) })
	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if panicErr.PanicValue != 42 {
		t.Errorf("PanicValue = %v", panicErr.PanicValue)
	}
}

func BenchmarkSafeExecute_NoPanic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SafeExecute("bench", func() error { return nil })
	}
}
