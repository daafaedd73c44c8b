package sweep

import "fmt"

// Body is what the broad phase reads each step. The owning world moves bodies;
// the broad phase never writes to them.
type Body interface {
	Position() Vector
	HalfExtents() Vector
}

/// Box position update function type.
type BoxPositionFunc func(box *Box, dt float64)

// Box is a kinematic axis-aligned body. It is the Body used by the CLI and the tests.
type Box struct {
	name string

	// position, velocity
	p Vector
	v Vector

	// half extents of the bounding box
	half Vector

	position_func BoxPositionFunc

	UserData interface{}
}

func NewBox(name string, p, half Vector) *Box {
	return &Box{
		name:          name,
		p:             p,
		half:          half.Abs(),
		position_func: BoxUpdatePosition,
	}
}

// NewBoxFromBB returns a box covering bb.
func NewBoxFromBB(name string, bb BB) *Box {
	return NewBox(name, bb.Center(), bb.HalfExtents())
}

func (box Box) String() string {
	return fmt.Sprint("Box ", box.name)
}

func (box *Box) Name() string {
	return box.name
}

func (box *Box) Position() Vector {
	return box.p
}

func (box *Box) SetPosition(p Vector) {
	box.p = p
}

func (box *Box) Velocity() Vector {
	return box.v
}

func (box *Box) SetVelocity(v Vector) {
	box.v = v
}

func (box *Box) HalfExtents() Vector {
	return box.half
}

func (box *Box) SetHalfExtents(half Vector) {
	box.half = half.Abs()
}

func (box *Box) BB() BB {
	return NewBBForExtents(box.p, box.half)
}

func (box *Box) SetPositionUpdateFunc(f BoxPositionFunc) {
	box.position_func = f
}

// Update advances the box by dt using its position function.
func (box *Box) Update(dt float64) {
	box.position_func(box, dt)
}

func BoxUpdatePosition(box *Box, dt float64) {
	box.p = box.p.Add(box.v.Mult(dt))
}
