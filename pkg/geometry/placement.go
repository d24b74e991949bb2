package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Placement is the mutable model transform of a body together with the
// matrices derived from it. It is updated between trace passes only.
type Placement struct {
	transform    mgl64.Mat4
	inverse      mgl64.Mat4
	normalMatrix mgl64.Mat3
}

// NewPlacement creates a placement from a model transform
func NewPlacement(transform mgl64.Mat4) Placement {
	var p Placement
	p.Set(transform)
	return p
}

// Set replaces the transform and recomputes the inverse and normal matrix.
// A singular transform cannot be traced against and panics.
func (p *Placement) Set(transform mgl64.Mat4) {
	if transform.Det() == 0 {
		panic("model transform is not invertible")
	}
	p.transform = transform
	p.inverse = transform.Inv()
	p.normalMatrix = transform.Mat3().Inv().Transpose()
}

// Transform returns the model transform
func (p Placement) Transform() mgl64.Mat4 {
	return p.transform
}

// Inverse returns the cached inverse of the model transform
func (p Placement) Inverse() mgl64.Mat4 {
	return p.inverse
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of the transform
func (p Placement) NormalMatrix() mgl64.Mat3 {
	return p.normalMatrix
}

// Compose builds a model transform that scales, then rotates (X, Y, Z order,
// radians), then translates
func Compose(scale, rotation, translation mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(translation[0], translation[1], translation[2]).
		Mul4(mgl64.HomogRotate3DZ(rotation[2])).
		Mul4(mgl64.HomogRotate3DY(rotation[1])).
		Mul4(mgl64.HomogRotate3DX(rotation[0])).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}
