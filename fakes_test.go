package efifs

import (
	"strings"

	"github.com/RakhithJK/efifs/internal/ucs2"
)

// In-memory firmware fakes. The variable store keys by the decoded name and
// holds raw UTF-16LE value bytes, like the real store does.
type memVars struct {
	vars map[string][]byte
}

func (m *memVars) set(name, value string) {
	w, err := ucs2.Encode(value)
	if err != nil {
		panic(err)
	}
	b := make([]byte, 2*len(w))
	for i, c := range w {
		b[2*i] = byte(c)
		b[2*i+1] = byte(c >> 8)
	}
	if m.vars == nil {
		m.vars = make(map[string][]byte)
	}
	m.vars[name] = b
}

func (m *memVars) setRaw(name string, value []byte) {
	if m.vars == nil {
		m.vars = make(map[string][]byte)
	}
	m.vars[name] = value
}

func (m *memVars) Get(name []uint16, buf []byte) (int, Status) {
	k, err := ucs2.Decode(name)
	if err != nil {
		return 0, StatusInvalidParameter
	}
	v, ok := m.vars[k]
	if !ok {
		return 0, StatusNotFound
	}
	if len(v) > len(buf) {
		return 0, StatusBufferTooSmall
	}
	return copy(buf, v), StatusSuccess
}

// scriptConsole replays a fixed keystroke script and captures output.
type scriptConsole struct {
	keys []struct {
		r  rune
		st Status
	}
	reads int
	out   strings.Builder
}

func (c *scriptConsole) push(r rune, st Status) {
	c.keys = append(c.keys, struct {
		r  rune
		st Status
	}{r, st})
}

func (c *scriptConsole) ReadKey() (rune, Status) {
	if c.reads >= len(c.keys) {
		return 0, StatusDeviceError
	}
	k := c.keys[c.reads]
	c.reads++
	return k.r, k.st
}

func (c *scriptConsole) WriteString(s string) Status {
	c.out.WriteString(s)
	return StatusSuccess
}

// countingPool hands out Go-managed buffers while counting pool traffic.
// Fresh buffers are poisoned so zero-allocation behavior is observable.
type countingPool struct {
	allocs, frees int
	exhausted     bool
}

func (p *countingPool) AllocatePool(n int) ([]byte, Status) {
	if p.exhausted {
		return nil, StatusOutOfResources
	}
	p.allocs++
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 0xa5
	}
	return buf, StatusSuccess
}

func (p *countingPool) FreePool(buf []byte) Status {
	p.frees++
	return StatusSuccess
}

type fakeBoot struct {
	exits []Status
}

func (b *fakeBoot) Exit(st Status) { b.exits = append(b.exits, st) }

// recordDisk is a DiskIO that records every read request.
type recordDisk struct {
	reads []diskReq
	data  byte // fill byte returned in buffers
	st    Status
}

type diskReq struct {
	mediaID uint32
	offset  int64
	length  int
}

func (d *recordDisk) ReadDisk(mediaID uint32, offset int64, buf []byte) Status {
	d.reads = append(d.reads, diskReq{mediaID, offset, len(buf)})
	if d.st != StatusSuccess {
		return d.st
	}
	for i := range buf {
		buf[i] = d.data
	}
	return StatusSuccess
}

// fakeDriver is a scriptable driver vtable.
type fakeDriver struct {
	name    string
	entries []string // root directory listing
	uuid    string
	label   string
	files   map[string]string

	dirErr  ErrCode
	uuidErr ErrCode

	dirCalls  int
	dirPaths  []string
	hookCalls int
}

func (d *fakeDriver) Name() string { return d.name }

func (d *fakeDriver) Dir(dev *Device, path string, hook DirHook) ErrCode {
	d.dirCalls++
	d.dirPaths = append(d.dirPaths, path)
	if d.dirErr != ErrNone {
		return d.dirErr
	}
	for _, name := range d.entries {
		d.hookCalls++
		if hook(name, &DirInfo{}) {
			break
		}
	}
	return ErrNone
}

func (d *fakeDriver) UUID(dev *Device) (string, ErrCode) {
	return d.uuid, d.uuidErr
}

func (d *fakeDriver) Label(dev *Device) (string, ErrCode) {
	return d.label, ErrNone
}

func (d *fakeDriver) Open(dev *Device, path string) (DriverFile, ErrCode) {
	content, ok := d.files[path]
	if !ok {
		return nil, ErrFileNotFound
	}
	return &fakeFile{data: []byte(content)}, ErrNone
}

type fakeFile struct {
	data   []byte
	pos    int
	closed bool
}

func (f *fakeFile) Size() int64 { return int64(len(f.data)) }

func (f *fakeFile) Read(buf []byte) (int, ErrCode) {
	if f.pos >= len(f.data) {
		return 0, ErrEOF
	}
	n := copy(buf, f.data[f.pos:])
	f.pos += n
	return n, ErrNone
}

func (f *fakeFile) Close() ErrCode {
	if f.closed {
		return ErrBug
	}
	f.closed = true
	return ErrNone
}
