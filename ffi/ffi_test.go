//go:build cgo

package ffi

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"testing"
	"unsafe"
)

func cString(t *testing.T, s string) *C.char {
	t.Helper()
	return C.CString(s)
}

func freeCString(p *C.char) {
	C.free(unsafe.Pointer(p))
}

func TestPanicTextString(t *testing.T) {
	if got := panicText("boom"); got != "boom" {
		t.Fatalf("expected %q, got %q", "boom", got)
	}
}

func TestPanicTextError(t *testing.T) {
	if got := panicText(errors.New("boom")); got != "boom" {
		t.Fatalf("expected %q, got %q", "boom", got)
	}
}

func TestPanicTextFallback(t *testing.T) {
	if got := panicText(42); got != "Panic!" {
		t.Fatalf("expected %q, got %q", "Panic!", got)
	}
}

func TestCanonifyTrappedSuccess(t *testing.T) {
	cInput := cString(t, "A")
	defer freeCString(cInput)

	status, text := canonifyTrapped(cInput)
	if status != statusOK {
		t.Fatalf("expected status %d, got %d", statusOK, status)
	}
	if text != "A" {
		t.Fatalf("expected %q, got %q", "A", text)
	}
}

func TestCanonifyTrappedParseError(t *testing.T) {
	cInput := cString(t, `"unterminated`)
	defer freeCString(cInput)

	status, _ := canonifyTrapped(cInput)
	if status != statusParse {
		t.Fatalf("expected status %d, got %d", statusParse, status)
	}
}

func TestCanonifyTrappedNilInput(t *testing.T) {
	status, _ := canonifyTrapped(nil)
	if status != statusPanic {
		t.Fatalf("expected status %d for a nil input pointer, got %d", statusPanic, status)
	}
}
