package scene

import "github.com/go-gl/mathgl/mgl32"

// ModelMatrix composes translation, rotation about world X then Y then
// Z, and scale, multiplied in that order so scale applies first.
// Rotations are given in degrees and follow the right-hand rule: +90
// about X carries +Y onto +Z.
func ModelMatrix(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X())))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y())))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z())))
	m = m.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	return m
}
