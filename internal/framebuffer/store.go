package framebuffer

// Store owns the pixel, optional depth, optional stencil and optional
// alpha side-plane of a rendering surface. All enabled planes share the
// same dimensions; a plane exists iff its Config channel size is nonzero
// (§3). Storage is raw linear row-major, color stored byte-swapped
// (§6); row 0 is the top of the image even though rasterization treats
// the origin as logically bottom-left (§3).
//
// Plane allocation is keyed off Config channel sizes, matching a real
// backing-array storage idiom rather than an interface-and-mock one,
// adapted here to single-buffered planes (§9: double buffering is a
// non-goal).
type Store struct {
	Width, Height int

	// Color holds one RGB565 word per pixel, byte-swapped for storage.
	Color []uint16

	// Depth holds one 16-bit depth value per pixel, or nil if the config
	// advertises zero depth bits.
	Depth []uint16

	// Stencil holds one 8-bit stencil value per pixel, or nil if the
	// config advertises zero stencil bits.
	Stencil []uint8

	// Alpha holds one 8-bit alpha value per pixel, or nil if the config
	// advertises zero alpha bits. The color plane is RGB565 and has no
	// alpha channel of its own, hence the side-plane (glossary: "Alpha
	// side-plane").
	Alpha []uint8
}

// New allocates a Store sized width x height, allocating the depth,
// stencil and alpha planes only if the Config advertises nonzero bits for
// them. The color plane is always allocated (§3: "mandatory 16-bit RGB565
// color plane").
func New(cfg Config, width, height int) *Store {
	s := &Store{
		Width:  width,
		Height: height,
		Color:  make([]uint16, width*height),
	}
	if cfg.Depth > 0 {
		s.Depth = make([]uint16, width*height)
	}
	if cfg.Stencil > 0 {
		s.Stencil = make([]uint8, width*height)
	}
	if cfg.Alpha > 0 {
		s.Alpha = make([]uint8, width*height)
	}
	return s
}

// ClearColor fills the entire color plane with rgb and, if the alpha
// plane exists, the entire alpha plane with alpha.
func (s *Store) ClearColor(r, g, b uint8, alpha uint8) {
	val := SwapBytes(RGBTo565(r, g, b))
	for i := range s.Color {
		s.Color[i] = val
	}
	for i := range s.Alpha {
		s.Alpha[i] = alpha
	}
}

// ClearDepth fills the depth plane with val, if present.
func (s *Store) ClearDepth(val uint16) {
	for i := range s.Depth {
		s.Depth[i] = val
	}
}

// ClearStencil fills the stencil plane with val, if present.
func (s *Store) ClearStencil(val uint8) {
	for i := range s.Stencil {
		s.Stencil[i] = val
	}
}

// Index returns the linear offset of pixel (x, y) within any plane.
func (s *Store) Index(x, y int) int {
	return y*s.Width + x
}

// SetPixel writes an RGB565 color (unswapped, in natural bit order) and
// optional alpha byte to pixel (x, y).
func (s *Store) SetPixel(x, y int, rgb565 uint16, alpha uint8) {
	i := s.Index(x, y)
	s.Color[i] = SwapBytes(rgb565)
	if s.Alpha != nil {
		s.Alpha[i] = alpha
	}
}

// PixelRGB565 returns the natural-order (non-byte-swapped) RGB565 value
// currently stored at (x, y).
func (s *Store) PixelRGB565(x, y int) uint16 {
	return SwapBytes(s.Color[s.Index(x, y)])
}

// PixelAlpha returns the alpha side-plane value at (x, y), or 255
// (opaque) if no alpha plane is present (§4.7: "destination alpha ... or
// default 1.0").
func (s *Store) PixelAlpha(x, y int) uint8 {
	if s.Alpha == nil {
		return 255
	}
	return s.Alpha[s.Index(x, y)]
}
