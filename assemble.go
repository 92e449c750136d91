package gles1

import (
	"encoding/binary"
	"math"
)

// assembledVertex is the homogeneous vertex record the assembler
// produces (§4.3): position (x, y, z, w), color and texcoord, all
// widened to float32.
type assembledVertex struct {
	Position [4]float32
	Color    [4]float32
	TexCoord [4]float32
}

func readRawComponent(typ Enum, data []byte, offset int) float32 {
	switch typ {
	case BYTE:
		return float32(int8(data[offset]))
	case UNSIGNED_BYTE:
		return float32(data[offset]) / 255
	case SHORT:
		return float32(int16(binary.LittleEndian.Uint16(data[offset:])))
	case FIXED:
		return fixedToFloat(int32(binary.LittleEndian.Uint32(data[offset:])))
	case FLOAT:
		bits := binary.LittleEndian.Uint32(data[offset:])
		return math.Float32frombits(bits)
	default:
		return 0
	}
}

// readChannel reads arr's components for vertex index, filling trailing
// components with the values in fill (§4.3: position defaults to
// (0,0,0,1), color and texcoord likewise). A disabled array, or one with
// no pointer, yields the all-ones default.
func readChannel(arr ClientArray, index int, fill [4]float32) [4]float32 {
	if !arr.Enabled || arr.Pointer == nil {
		return allOnes
	}
	out := fill
	base := index * arr.Stride
	compSize := sizeofType(arr.Type)
	for i := 0; i < arr.Size && i < 4; i++ {
		offset := base + i*compSize
		if offset+compSize > len(arr.Pointer) {
			break
		}
		out[i] = readRawComponent(arr.Type, arr.Pointer, offset)
	}
	return out
}

var allOnes = [4]float32{1, 1, 1, 1}

// assembleVertex reads the i-th logical vertex (i = first+offset) from
// the Context's client arrays (§4.3).
func (c *Context) assembleVertex(first, offset int) assembledVertex {
	index := first + offset
	unit := c.textureUnits[c.ClientActiveTextureUnit]
	return assembledVertex{
		Position: readChannel(c.VertexArray, index, [4]float32{0, 0, 0, 1}),
		Color:    readChannel(c.ColorArray, index, [4]float32{0, 0, 0, 1}),
		TexCoord: readChannel(unit.TexCoordArray, index, [4]float32{0, 0, 0, 1}),
	}
}
