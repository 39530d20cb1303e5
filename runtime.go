/*
package efifs is the elastic binding between bootloader-style filesystem
drivers and a firmware execution environment. Drivers are written against a
small host runtime (memory allocation, raw disk reads, environment lookup,
console I/O, error codes); this package re-implements that runtime on top of
the firmware's own services so the drivers run unmodified.

The filesystem logic itself lives in the drivers. Everything here is a
pass-through: each operation delegates to exactly one firmware call and
translates its status one-for-one into the code the driver ABI expects.
*/
package efifs

import (
	"context"
	"log/slog"

	"github.com/RakhithJK/efifs/internal/ucs2"
)

// Variable store size limits, in UTF-16 units. Values larger than this are
// treated as absent, the driver ABI has no way to report partial reads.
const (
	maxVarName  = 64
	maxVarValue = 128
)

// Runtime binds the firmware services a driver expects its host to provide.
// All service fields must be set before the first driver call; the logger is
// optional. A Runtime is used from a single thread of execution, drivers in
// this model run without preemption.
type Runtime struct {
	Console Console
	Vars    VariableStore
	Pool    Allocator
	Boot    BootServices

	// FileProgress, when non-nil, is invoked by drivers as they advance
	// through file reads. The shim itself never calls it.
	FileProgress func(sector, offset, length int64)

	drivers []Driver
	log     *slog.Logger
}

// SetLogger directs shim diagnostics to l. Diagnostics never change what a
// call returns; a nil logger silences them.
func (rt *Runtime) SetLogger(l *slog.Logger) { rt.log = l }

// RegisterDriver makes d the head of the driver list. Probing uses the head,
// matching a standalone image that links exactly one driver.
func (rt *Runtime) RegisterDriver(d Driver) {
	rt.drivers = append([]Driver{d}, rt.drivers...)
}

// headDriver returns the driver probed for new volumes, or nil.
func (rt *Runtime) headDriver() Driver {
	if len(rt.drivers) == 0 {
		return nil
	}
	return rt.drivers[0]
}

// RefDriver and UnrefDriver satisfy the module refcounting hooks of the
// driver ABI. A standalone driver image is never unloaded, so both are inert.
func (rt *Runtime) RefDriver(Driver) int   { return 0 }
func (rt *Runtime) UnrefDriver(Driver) int { return 0 }

// Alloc requests n bytes from the firmware pool.
func (rt *Runtime) Alloc(n int) ([]byte, Status) {
	return rt.Pool.AllocatePool(n)
}

// AllocZero requests n zeroed bytes from the firmware pool.
func (rt *Runtime) AllocZero(n int) ([]byte, Status) {
	buf, st := rt.Pool.AllocatePool(n)
	if st != StatusSuccess {
		return nil, st
	}
	clear(buf)
	return buf, StatusSuccess
}

// Free returns buf to the firmware pool. Freeing nil is a no-op.
func (rt *Runtime) Free(buf []byte) Status {
	if buf == nil {
		return StatusSuccess
	}
	return rt.Pool.FreePool(buf)
}

// Getenv looks name up in the firmware variable store. The name is encoded
// to UTF-16 and the UTF-16 value decoded back, stopping at the first NUL.
// The returned string is freshly allocated on every call; callers may hold
// it across further lookups.
func (rt *Runtime) Getenv(name string) (string, bool) {
	wname, err := ucs2.Encode(name)
	if err != nil || len(wname) > maxVarName {
		return "", false
	}
	// The store size convention is bytes, the ABI's is characters.
	buf := make([]byte, 2*maxVarValue)
	n, st := rt.Vars.Get(wname, buf)
	if st != StatusSuccess {
		if st == StatusBufferTooSmall {
			rt.warn("getenv:value too large", slog.String("name", name))
		}
		return "", false
	}
	val, err := ucs2.DecodeBytes(buf[:n])
	if err != nil {
		rt.logerror("getenv:decode", slog.String("name", name))
		return "", false
	}
	return val, true
}

// GetKey blocks until the console has a keystroke and returns its code
// point, polling while the firmware reports not-ready.
func (rt *Runtime) GetKey() rune {
	for {
		r, st := rt.Console.ReadKey()
		if st == StatusNotReady {
			continue
		}
		return r
	}
}

// Print writes s to the firmware console.
func (rt *Runtime) Print(s string) {
	rt.Console.WriteString(s)
}

// Refresh flushes pending console output. The firmware console is
// unbuffered, so there is nothing to do; the ABI requires the entry point.
func (rt *Runtime) Refresh() {}

// Exit ends the current execution context with the given status.
func (rt *Runtime) Exit(st Status) {
	rt.Boot.Exit(st)
}

func (rt *Runtime) logattrs(level slog.Level, msg string, attrs ...slog.Attr) {
	if rt.log == nil {
		return
	}
	rt.log.LogAttrs(context.Background(), level, msg, attrs...)
}

func (rt *Runtime) debug(msg string, attrs ...slog.Attr) {
	rt.logattrs(slog.LevelDebug, msg, attrs...)
}
func (rt *Runtime) warn(msg string, attrs ...slog.Attr) {
	rt.logattrs(slog.LevelWarn, msg, attrs...)
}
func (rt *Runtime) logerror(msg string, attrs ...slog.Attr) {
	rt.logattrs(slog.LevelError, msg, attrs...)
}
