package efifs

import "strconv"

// Status is a firmware-level status code. Zero means success, anything else
// is a failure from the fixed set below. Failure values implement [error].
type Status uint

const (
	StatusSuccess Status = iota
	StatusLoadError
	StatusInvalidParameter
	StatusUnsupported
	StatusBadBufferSize
	StatusBufferTooSmall
	StatusNotReady
	StatusDeviceError
	StatusWriteProtected
	StatusOutOfResources
	StatusVolumeCorrupted
	StatusVolumeFull
	StatusNoMedia
	StatusNotFound
	StatusAccessDenied
	StatusTimeout
	StatusAborted
	StatusEndOfFile
)

var statusNames = [...]string{
	"success",
	"load error",
	"invalid parameter",
	"unsupported",
	"bad buffer size",
	"buffer too small",
	"not ready",
	"device error",
	"write protected",
	"out of resources",
	"volume corrupted",
	"volume full",
	"no media",
	"not found",
	"access denied",
	"timeout",
	"aborted",
	"end of file",
}

func (st Status) String() string {
	if int(st) < len(statusNames) {
		return statusNames[st]
	}
	return "status(" + strconv.Itoa(int(st)) + ")"
}

func (st Status) Error() string { return "efifs.status: " + st.String() }

// Err returns nil on success and st itself otherwise, for use at API
// boundaries that return error.
func (st Status) Err() error {
	if st == StatusSuccess {
		return nil
	}
	return st
}

// ErrCode is the error enumeration of the driver ABI. Drivers signal failure
// with these, never with firmware statuses. Zero means no error.
type ErrCode uint

const (
	ErrNone ErrCode = iota
	ErrBadModule
	ErrOutOfMemory
	ErrBadFileType
	ErrFileNotFound
	ErrFileReadError
	ErrBadFileName
	ErrUnknownFS
	ErrBadFS
	ErrBadNumber
	ErrOutOfRange
	ErrUnknownDevice
	ErrBadDevice
	ErrReadError
	ErrWriteError
	ErrBadArgument
	ErrNotImplemented
	ErrSymlinkLoop
	ErrTimeout
	ErrIO
	ErrAccessDenied
	ErrEOF
	ErrBug
)

func (e ErrCode) Error() string { return "efifs.err:" + strconv.Itoa(int(e)) }

// Status translates a driver error code into the firmware status reported to
// the firmware side of the boundary. The mapping is one-for-one and carries
// no payload.
func (e ErrCode) Status() Status {
	switch e {
	case ErrNone:
		return StatusSuccess
	case ErrBadModule:
		return StatusLoadError
	case ErrOutOfMemory:
		return StatusOutOfResources
	case ErrBadFileType, ErrBadFileName, ErrFileNotFound, ErrUnknownDevice:
		return StatusNotFound
	case ErrFileReadError, ErrReadError, ErrWriteError, ErrIO, ErrBadDevice:
		return StatusDeviceError
	case ErrUnknownFS:
		return StatusUnsupported
	case ErrBadFS:
		return StatusVolumeCorrupted
	case ErrBadNumber, ErrOutOfRange, ErrBadArgument:
		return StatusInvalidParameter
	case ErrNotImplemented:
		return StatusUnsupported
	case ErrSymlinkLoop:
		return StatusVolumeCorrupted
	case ErrTimeout:
		return StatusTimeout
	case ErrAccessDenied:
		return StatusAccessDenied
	case ErrEOF:
		return StatusEndOfFile
	default: // ErrBug and anything out of range.
		return StatusDeviceError
	}
}

// ErrCode translates a firmware status into the code a driver expects back
// from a host service call.
func (st Status) ErrCode() ErrCode {
	switch st {
	case StatusSuccess:
		return ErrNone
	case StatusLoadError:
		return ErrBadModule
	case StatusInvalidParameter, StatusBadBufferSize, StatusBufferTooSmall:
		return ErrBadArgument
	case StatusUnsupported:
		return ErrNotImplemented
	case StatusNotReady, StatusDeviceError, StatusNoMedia, StatusWriteProtected:
		return ErrIO
	case StatusOutOfResources, StatusVolumeFull:
		return ErrOutOfMemory
	case StatusVolumeCorrupted:
		return ErrBadFS
	case StatusNotFound:
		return ErrFileNotFound
	case StatusAccessDenied:
		return ErrAccessDenied
	case StatusTimeout:
		return ErrTimeout
	case StatusAborted:
		return ErrIO
	case StatusEndOfFile:
		return ErrEOF
	default:
		return ErrBug
	}
}
