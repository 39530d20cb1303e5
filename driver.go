package efifs

import (
	"log/slog"

	"github.com/RakhithJK/efifs/internal/ucs2"
)

// Driver is the vtable a filesystem driver module exposes to its host. The
// shim never looks inside a driver; it only honors this calling convention.
// Every method receives the device handle the driver was attached with.
type Driver interface {
	// Name identifies the on-disk format the driver understands.
	Name() string
	// Dir enumerates the directory at path, invoking hook per entry until
	// the hook stops it or the listing ends.
	Dir(dev *Device, path string, hook DirHook) ErrCode
	// UUID reports the volume's unique identifier, ErrNotImplemented if the
	// format has none.
	UUID(dev *Device) (string, ErrCode)
	// Label reports the volume label, empty if unset.
	Label(dev *Device) (string, ErrCode)
	// Open opens the file at path for reading.
	Open(dev *Device, path string) (DriverFile, ErrCode)
}

// DriverFile is an open file handle owned by a driver.
type DriverFile interface {
	Size() int64
	Read(buf []byte) (int, ErrCode)
	Close() ErrCode
}

// DirInfo describes one directory entry during enumeration.
type DirInfo struct {
	IsDir           bool
	MTime           int64 // seconds since the epoch, valid when MTimeSet
	MTimeSet        bool
	CaseInsensitive bool
}

// Time converts the entry's modification timestamp to the firmware calendar
// record. The zero Time reports an entry with no timestamp.
func (i *DirInfo) Time() Time {
	if !i.MTimeSet {
		return Time{}
	}
	return TimeFromUnix(i.MTime)
}

// DirHook receives each entry of a directory listing. Returning true stops
// the enumeration.
type DirHook func(name string, info *DirInfo) (stop bool)

// Probe reports whether the registered driver recognizes the volume. The
// check lists the root directory with a hook that stops at the first entry;
// recognition is the driver reporting no error.
func (vol *Volume) Probe() bool {
	drv := vol.rt.headDriver()
	if drv == nil || vol.dev == nil {
		vol.rt.logerror("probe: no driver or device")
		return false
	}
	e := drv.Dir(vol.dev, "/", func(string, *DirInfo) bool { return true })
	return e == ErrNone
}

// UUID returns the volume's unique identifier as a freshly allocated
// NUL-terminated UTF-16 string, StatusNotFound when the driver has none.
func (vol *Volume) UUID() ([]uint16, Status) {
	return vol.ident(Driver.UUID, "uuid")
}

// Label returns the volume label in the same convention as UUID.
func (vol *Volume) Label() ([]uint16, Status) {
	return vol.ident(Driver.Label, "label")
}

func (vol *Volume) ident(get func(Driver, *Device) (string, ErrCode), what string) ([]uint16, Status) {
	drv := vol.rt.headDriver()
	if drv == nil || vol.dev == nil {
		return nil, StatusNotFound
	}
	s, e := get(drv, vol.dev)
	if e != ErrNone || s == "" {
		return nil, StatusNotFound
	}
	w, err := ucs2.Encode(s)
	if err != nil {
		vol.rt.logerror(what+":encode", slog.String("value", s))
		return nil, StatusNotFound
	}
	return w, StatusSuccess
}

// Dir lists the directory at path through the registered driver.
func (vol *Volume) Dir(path string, hook DirHook) Status {
	drv := vol.rt.headDriver()
	if drv == nil || vol.dev == nil {
		return StatusNotFound
	}
	return drv.Dir(vol.dev, path, hook).Status()
}

// File is a driver file handle wrapped for the firmware side of the
// boundary.
type File struct {
	vol *Volume
	h   DriverFile
}

// OpenFile opens path on the volume through the registered driver.
func (vol *Volume) OpenFile(path string) (*File, Status) {
	drv := vol.rt.headDriver()
	if drv == nil || vol.dev == nil {
		return nil, StatusNotFound
	}
	h, e := drv.Open(vol.dev, path)
	if e != ErrNone {
		return nil, e.Status()
	}
	return &File{vol: vol, h: h}, StatusSuccess
}

// Size reports the file size in bytes.
func (f *File) Size() int64 { return f.h.Size() }

// Read reads up to len(buf) bytes, translating the driver's code for the
// firmware caller. A short read with StatusSuccess means end of data was
// not yet reached; StatusEndOfFile reports the driver's own EOF code.
func (f *File) Read(buf []byte) (int, Status) {
	n, e := f.h.Read(buf)
	return n, e.Status()
}

// Close releases the driver's handle.
func (f *File) Close() Status {
	return f.h.Close().Status()
}
