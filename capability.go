package gles1

// recognizedNoopCapabilities are accepted by Enable/Disable/IsEnabled
// but never change rendering behavior (§4.1: "Other capabilities are
// recognized but are no-ops or rejected with an unimplemented log
// line"). Each is still tracked so IsEnabled reflects the caller's last
// call, since doing otherwise would silently lie to introspection code.
var recognizedNoopCapabilities = map[Enum]bool{
	DEPTH_TEST:   true,
	STENCIL_TEST: true,
	SCISSOR_TEST: true,
	FOG:          true,
	LIGHTING:     true,
}

func (c *Context) setCapability(call string, cap Enum, enabled bool) {
	switch cap {
	case ALPHA_TEST:
		c.AlphaTestEnabled = enabled
	case BLEND:
		c.BlendEnabled = enabled
	case CULL_FACE:
		c.CullFaceEnabled = enabled
	case TEXTURE_2D:
		c.textureUnits[c.ActiveTexture].Enabled = enabled
	default:
		if recognizedNoopCapabilities[cap] {
			if c.noopCaps == nil {
				c.noopCaps = make(map[Enum]bool)
			}
			c.noopCaps[cap] = enabled
			warnUnimplemented(call)
			return
		}
		c.err.set(newError(call, INVALID_ENUM, "unrecognized capability %#x", cap))
	}
}

// Enable turns on a capability (§4.1).
func (c *Context) Enable(cap Enum) { c.setCapability("Enable", cap, true) }

// Disable turns off a capability.
func (c *Context) Disable(cap Enum) { c.setCapability("Disable", cap, false) }

// IsEnabled reports whether cap is currently enabled.
func (c *Context) IsEnabled(cap Enum) bool {
	switch cap {
	case ALPHA_TEST:
		return c.AlphaTestEnabled
	case BLEND:
		return c.BlendEnabled
	case CULL_FACE:
		return c.CullFaceEnabled
	case TEXTURE_2D:
		return c.textureUnits[c.ActiveTexture].Enabled
	default:
		if recognizedNoopCapabilities[cap] {
			return c.noopCaps[cap]
		}
		c.err.set(newError("IsEnabled", INVALID_ENUM, "unrecognized capability %#x", cap))
		return false
	}
}
