package efifs

import "io"

// The interfaces below mirror the firmware protocols the shim consumes. Each
// is the narrowest slice of the real protocol that the driver ABI needs.

// DiskIO is a single byte-addressed read into a firmware volume.
// The shim always passes media ID 0, matching a driver ABI that does not
// track removable-media generations.
type DiskIO interface {
	ReadDisk(mediaID uint32, offset int64, buf []byte) Status
}

// VariableStore is the firmware's persisted variable service. Names and
// values are UTF-16. Get fills buf with the raw value bytes and returns the
// number of bytes written, StatusNotFound for a missing variable and
// StatusBufferTooSmall when the value does not fit.
type VariableStore interface {
	Get(name []uint16, buf []byte) (int, Status)
}

// Console is the firmware's text console. ReadKey returns StatusNotReady
// when no keystroke is pending.
type Console interface {
	ReadKey() (rune, Status)
	WriteString(s string) Status
}

// Allocator is the firmware pool allocator. The shim delegates all driver
// allocation requests to it and never manages memory itself.
type Allocator interface {
	AllocatePool(n int) ([]byte, Status)
	FreePool(buf []byte) Status
}

// BootServices is the slice of firmware boot services the shim uses: ending
// the current execution context.
type BootServices interface {
	Exit(st Status)
}

// ReaderAtDisk adapts any io.ReaderAt to the DiskIO protocol. It serves
// tests and host-side embedding of disk images.
type ReaderAtDisk struct {
	R io.ReaderAt
}

func (d ReaderAtDisk) ReadDisk(mediaID uint32, offset int64, buf []byte) Status {
	if d.R == nil || offset < 0 {
		return StatusInvalidParameter
	}
	n, err := d.R.ReadAt(buf, offset)
	if err != nil || n != len(buf) {
		return StatusDeviceError
	}
	return StatusSuccess
}
