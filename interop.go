package trtc

import "golang.org/x/image/math/f32"

// Vec4 returns t as an f32.Vec4 in (X, Y, Z, W) order.
func (t Tuple) Vec4() f32.Vec4 {
	return f32.Vec4{t.X, t.Y, t.Z, t.W}
}

// TupleFromVec4 is the inverse of Tuple.Vec4.
func TupleFromVec4(v f32.Vec4) Tuple {
	return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Vec3 returns c as an f32.Vec3 in (R, G, B) order.
func (c Color) Vec3() f32.Vec3 {
	return f32.Vec3{c.R, c.G, c.B}
}

// ColorFromVec3 is the inverse of Color.Vec3.
func ColorFromVec3(v f32.Vec3) Color {
	return Color{R: v[0], G: v[1], B: v[2]}
}
