//go:build cgo

// Package ffi exposes Canonify across a C ABI, mirroring the status
// codes and ownership rules of the original Rust crate's
// canonify_music_code/free_result pair: status 0 (parsed), 1 (parse
// error, text is the diagnostic), or 2 (panic trapped, text is the
// recovered value's string form); the caller owns the returned
// *ParseResult and must release it with FreeResult.
package ffi

/*
#include <stdlib.h>

struct ParseResult {
	int status;
	char *text;
};
*/
import "C"

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/theabolton/abcdb/ast"
	"github.com/theabolton/abcdb/canonify"
	"github.com/theabolton/abcdb/log"
)

const (
	statusOK    = 0
	statusParse = 1
	statusPanic = 2
)

// CanonifyMusicCode parses and rewrites the NUL-terminated UTF-8 string at
// rawInput. The assertion that rawInput is non-null and valid UTF-8 mirrors
// the Rust boundary's own preconditions: a caller handing across invalid
// input is a host-side bug, not a malformed-music-code condition, so it is
// trapped as status 2 rather than surfaced as a parse error.
//
//export CanonifyMusicCode
func CanonifyMusicCode(rawInput *C.char) *C.struct_ParseResult {
	status, text := canonifyTrapped(rawInput)

	// Allocated with C.malloc, not Go's allocator, so FreeResult can
	// release it with C.free: a Go-heap value handed across the boundary
	// and freed with C.free would be undefined behavior.
	p := (*C.struct_ParseResult)(C.malloc(C.size_t(unsafe.Sizeof(C.struct_ParseResult{}))))
	p.status = C.int(status)
	p.text = C.CString(text)
	return p
}

func canonifyTrapped(rawInput *C.char) (status int, text string) {
	defer func() {
		if r := recover(); r != nil {
			status = statusPanic
			text = panicText(r)
			log.WithField("status", status).Warn("trapped panic at FFI boundary")
		}
	}()

	if rawInput == nil {
		panic("null input pointer")
	}
	input := C.GoString(rawInput)
	if !utf8.ValidString(input) {
		panic("input is not valid UTF-8")
	}

	out, err := canonify.Canonify(input)
	if err == nil {
		return statusOK, out
	}
	if ast.IsCode(ast.PanicErr, err) {
		return statusPanic, err.Message
	}
	return statusParse, err.Message
}

// panicText extracts a string from a recovered panic value the way the
// original boundary does: pass strings, errors and fmt.Stringers through
// as their text, and fall back to the literal "Panic!" for anything else.
func panicText(r interface{}) string {
	switch v := r.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return "Panic!"
	}
}

// FreeResult releases a *C.struct_ParseResult previously returned by
// CanonifyMusicCode, including its owned text pointer.
//
//export FreeResult
func FreeResult(p *C.struct_ParseResult) {
	if p == nil {
		return
	}
	C.free(unsafe.Pointer(p.text))
	C.free(unsafe.Pointer(p))
}
