package gles1

import "github.com/tinygl/gles1/internal/mat4"

// Stack depth caps (§3: "Depth limits: model-view ≥ 16, projection ≥ 2,
// texture ≥ 2"). This implementation sets each stack at exactly its
// documented floor; the projection cap of 2 is also what exercises the
// stack-overflow scenario in §8.
const (
	modelViewStackCap  = 16
	projectionStackCap = 2
	textureStackCap    = 2
)

// matrixStack is a bounded LIFO of 4x4 matrices (§3). It is never empty:
// the zero-value, once initialized via newMatrixStack, always holds at
// least one (identity) entry.
type matrixStack struct {
	cap     int
	entries []mat4.Mat4
}

func newMatrixStack(cap int) *matrixStack {
	return &matrixStack{cap: cap, entries: []mat4.Mat4{mat4.Identity()}}
}

func (s *matrixStack) top() *mat4.Mat4 {
	return &s.entries[len(s.entries)-1]
}

func (s *matrixStack) push() error {
	if len(s.entries) >= s.cap {
		return newError("push_matrix", STACK_OVERFLOW, "stack depth cap %d reached", s.cap)
	}
	s.entries = append(s.entries, *s.top())
	return nil
}

func (s *matrixStack) pop() error {
	if len(s.entries) <= 1 {
		return newError("pop_matrix", STACK_UNDERFLOW, "stack already at minimum depth 1")
	}
	s.entries = s.entries[:len(s.entries)-1]
	return nil
}

// activeStack returns the matrix stack the current MatrixMode targets.
// For TEXTURE this is the active texture unit's own stack (§4.1:
// "Texture stack is per-active-unit, not global").
func (c *Context) activeStack() *matrixStack {
	switch c.MatrixModeValue {
	case PROJECTION:
		return c.projectionStack
	case TEXTURE:
		return c.textureUnits[c.ActiveTexture].TextureStack
	default:
		return c.modelViewStack
	}
}

// MatrixMode selects which stack subsequent matrix ops target.
func (c *Context) MatrixMode(mode Enum) {
	switch mode {
	case MODELVIEW, PROJECTION, TEXTURE:
		c.MatrixModeValue = mode
	default:
		c.err.set(newError("MatrixMode", INVALID_ENUM, "unknown matrix mode %#x", mode))
	}
}

// LoadIdentity replaces the top of the active stack with the identity
// matrix.
func (c *Context) LoadIdentity() {
	*c.activeStack().top() = mat4.Identity()
	c.syncTextureMatrix()
}

// LoadMatrix replaces the top of the active stack with m (column-major,
// 16 floats).
func (c *Context) LoadMatrix(m *mat4.Mat4) {
	*c.activeStack().top() = *m
	c.syncTextureMatrix()
}

// MultMatrix replaces the top T of the active stack with T*m (§4.2).
func (c *Context) MultMatrix(m *mat4.Mat4) {
	top := c.activeStack().top()
	*top = mat4.Multiply(*top, *m)
	c.syncTextureMatrix()
}

// PushMatrix duplicates the top of the active stack.
func (c *Context) PushMatrix() {
	if err := c.activeStack().push(); err != nil {
		c.err.set(err)
	}
}

// PopMatrix removes the top of the active stack.
func (c *Context) PopMatrix() {
	if err := c.activeStack().pop(); err != nil {
		c.err.set(err)
	}
	c.syncTextureMatrix()
}

// Translatef applies a translation to the top of the active stack.
func (c *Context) Translatef(x, y, z float32) {
	c.MultMatrix(ptr(mat4.Translation(x, y, z)))
}

// Scalef applies a scale to the top of the active stack.
func (c *Context) Scalef(x, y, z float32) {
	c.MultMatrix(ptr(mat4.Scaling(x, y, z)))
}

// Rotatef rotates the top of the active stack by angle degrees around
// axis (x, y, z) (§4.2: "rotate takes angle in degrees").
func (c *Context) Rotatef(angle, x, y, z float32) {
	c.MultMatrix(ptr(mat4.Rotation(angle, x, y, z)))
}

// Orthof multiplies the top of the active stack by an orthographic
// projection via MultMatrix.
func (c *Context) Orthof(left, right, bottom, top, near, far float32) {
	if left == right || bottom == top || near == far {
		c.err.set(newError("Orthof", INVALID_VALUE, "degenerate orthographic volume"))
		return
	}
	c.MultMatrix(ptr(mat4.Ortho(left, right, bottom, top, near, far)))
}

// Frustumf multiplies the top of the active stack by a perspective
// frustum via MultMatrix.
func (c *Context) Frustumf(left, right, bottom, top, near, far float32) {
	if left == right || bottom == top || near <= 0 || far <= 0 || near == far {
		c.err.set(newError("Frustumf", INVALID_VALUE, "degenerate frustum"))
		return
	}
	c.MultMatrix(ptr(mat4.Frustum(left, right, bottom, top, near, far)))
}

// syncTextureMatrix refreshes the active texture unit's cached matrix
// whenever the texture stack may have changed; cheap no-op for the other
// two matrix modes since they read the stack directly at draw time.
func (c *Context) syncTextureMatrix() {
	if c.MatrixModeValue != TEXTURE {
		return
	}
	unit := c.textureUnits[c.ActiveTexture]
	unit.Matrix = *unit.TextureStack.top()
}

func ptr[T any](v T) *T { return &v }

// --- fixed-point variants (§4.1: "multiply by 2⁻¹⁶ and delegate to the
// float variant — this is the sole definition of fixed-point semantics") ---

const fixedScale = 1.0 / 65536.0

func fixedToFloat(x int32) float32 { return float32(x) * fixedScale }

// Translatex is the fixed-point variant of Translatef.
func (c *Context) Translatex(x, y, z int32) {
	c.Translatef(fixedToFloat(x), fixedToFloat(y), fixedToFloat(z))
}

// Scalex is the fixed-point variant of Scalef.
func (c *Context) Scalex(x, y, z int32) {
	c.Scalef(fixedToFloat(x), fixedToFloat(y), fixedToFloat(z))
}

// Rotatex is the fixed-point variant of Rotatef.
func (c *Context) Rotatex(angle, x, y, z int32) {
	c.Rotatef(fixedToFloat(angle), fixedToFloat(x), fixedToFloat(y), fixedToFloat(z))
}

// Orthox is the fixed-point variant of Orthof.
func (c *Context) Orthox(left, right, bottom, top, near, far int32) {
	c.Orthof(fixedToFloat(left), fixedToFloat(right), fixedToFloat(bottom),
		fixedToFloat(top), fixedToFloat(near), fixedToFloat(far))
}

// Frustumx is the fixed-point variant of Frustumf.
func (c *Context) Frustumx(left, right, bottom, top, near, far int32) {
	c.Frustumf(fixedToFloat(left), fixedToFloat(right), fixedToFloat(bottom),
		fixedToFloat(top), fixedToFloat(near), fixedToFloat(far))
}
