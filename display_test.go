package gles1

import "github.com/tinygl/gles1/egl"

// memDisplay is a minimal in-memory egl.Display for tests: it never
// touches real hardware, it just hands back a buffer the Context can
// draw into directly.
type memDisplay struct {
	buf          []uint16
	presents     int
	frameStarts  int
}

func newMemDisplay(width, height int) *memDisplay {
	return &memDisplay{buf: make([]uint16, width*height)}
}

func (d *memDisplay) Init(width, height int) error {
	if len(d.buf) != width*height {
		d.buf = make([]uint16, width*height)
	}
	return nil
}

func (d *memDisplay) Buffer() []uint16 { return d.buf }

func (d *memDisplay) Present() error {
	d.presents++
	return nil
}

func (d *memDisplay) FrameStart() {
	d.frameStarts++
}

func newTestContext(width, height int) (*Context, *memDisplay) {
	c := NewContext()
	d := newMemDisplay(width, height)
	if err := MakeCurrent(c, d, testConfig(), width, height); err != nil {
		panic(err)
	}
	return c, d
}

func testConfig() egl.Config {
	return egl.Config{Red: 5, Green: 6, Blue: 5, Alpha: 8, Depth: 16, Stencil: 8}
}
