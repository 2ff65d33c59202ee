package scene

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex builds a colour from 0xRRGGBB.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the channels scaled to [0,1].
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Backdrop RGB
	FloorA   RGB
	FloorB   RGB
	Wall     RGB
	Head     RGB
	Body     RGB
	Coin     RGB
	Shadow   RGB
}{
	Backdrop: Hex(0x0b0f1a),
	FloorA:   Hex(0x1b2233),
	FloorB:   Hex(0x1f273a),
	Wall:     Hex(0x3a4560),
	Head:     Hex(0xff7a59),
	Body:     Hex(0x1de9b6),
	Coin:     Hex(0xfff066),
	Shadow:   Hex(0x000000),
}

// BodyShade is applied to odd-tinted body segments.
const BodyShade = 200
