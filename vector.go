package sweep

import (
	"fmt"
	"math"
)

// Axis names a coordinate axis that the broad phase can track.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// MaxAxes is the number of axes a Vector carries.
const MaxAxes = 3

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// Vector is a 2D vector with an optional third component. 2D callers leave Z at zero.
type Vector struct {
	X, Y, Z float64
}

func (v Vector) String() string {
	if v.Z == 0 {
		return fmt.Sprintf("%f,%f", v.X, v.Y)
	}
	return fmt.Sprintf("%f,%f,%f", v.X, v.Y, v.Z)
}

func (v Vector) Equal(other Vector) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Axis returns the component of v along a.
func (v Vector) Axis(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic(fmt.Sprintf("sweep: invalid axis %d", int(a)))
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

func (v Vector) Mult(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Abs returns v with every component made non-negative.
func (v Vector) Abs() Vector {
	return Vector{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

func (v Vector) LengthSq() float64 {
	return v.Dot(v)
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector) Lerp(other Vector, t float64) Vector {
	return v.Mult(1.0 - t).Add(other.Mult(t))
}
