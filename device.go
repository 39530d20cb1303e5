package efifs

import "log/slog"

// SectorSize is the fixed sector the driver ABI addresses reads with. The
// media may use another block size; the firmware read below is byte
// addressed so the two never need to agree.
const SectorSize = 512

const mediaAny uint32 = 0

// Volume associates one firmware volume with the driver serving it. It is
// created by [Runtime.Attach] and owns the device handle the driver is
// handed on every call.
type Volume struct {
	rt   *Runtime
	disk DiskIO
	dev  *Device
}

// Device is the handle a driver receives for a volume. It owns exactly one
// Disk for its whole lifetime and carries no state of its own.
type Device struct {
	disk *Disk
}

// Disk routes a driver's raw reads back to the firmware volume. The only
// state is the back-reference used for that routing.
type Disk struct {
	vol *Volume
}

// Disk returns the device's disk handle. It is non-nil for any device
// produced by Attach.
func (d *Device) Disk() *Disk { return d.disk }

// Attach binds a firmware volume to the runtime and creates the device and
// disk handles the driver will use. Handles live until [Volume.Detach].
func (rt *Runtime) Attach(disk DiskIO) (*Volume, Status) {
	if disk == nil {
		return nil, StatusInvalidParameter
	}
	vol := &Volume{rt: rt, disk: disk}
	vol.dev = &Device{disk: &Disk{vol: vol}}
	rt.debug("volume:attach")
	// Total sectors, media name and the like stay unfilled: reads go through
	// the firmware volume directly, so the driver never consults them.
	return vol, StatusSuccess
}

// Detach releases the volume's handles. The volume must not be used after.
func (vol *Volume) Detach() Status {
	if vol.dev != nil {
		vol.dev.disk = nil
		vol.dev = nil
	}
	vol.disk = nil
	return StatusSuccess
}

// Device returns the driver-facing handle for this volume, nil once
// detached.
func (vol *Volume) Device() *Device { return vol.dev }

// Read reads len(buf) bytes at sector*SectorSize+offset from the underlying
// firmware volume. Any firmware failure, or a handle with no volume behind
// it, reports ErrReadError; the driver ABI carries no finer detail.
func (d *Disk) Read(sector, offset int64, buf []byte) ErrCode {
	if d == nil || d.vol == nil || d.vol.disk == nil {
		return ErrReadError
	}
	vol := d.vol
	st := vol.disk.ReadDisk(mediaAny, sector*SectorSize+offset, buf)
	if st != StatusSuccess {
		vol.rt.logerror("disk:read",
			slog.Int64("sector", sector),
			slog.String("status", st.String()))
		return ErrReadError
	}
	return ErrNone
}
