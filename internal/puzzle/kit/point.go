package kit

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pt2 is a 2D point. Y grows downwards, like rows of text.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Point is the grid coordinate used by most days.
type Point = Pt2[int]

func P(x, y int) Point { return Point{X: x, Y: y} }

var (
	Up    = Point{0, -1}
	Right = Point{1, 0}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
)

// Dirs4 lists the orthogonal directions clockwise from Up.
var Dirs4 = [4]Point{Up, Right, Down, Left}

// Dirs8 lists all eight directions clockwise from Up.
var Dirs8 = [8]Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T]  { return Pt2[T]{p.X + q.X, p.Y + q.Y} }
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T]  { return Pt2[T]{p.X - q.X, p.Y - q.Y} }
func (p Pt2[T]) Scale(k T) Pt2[T]     { return Pt2[T]{p.X * k, p.Y * k} }
func (p Pt2[T]) Neg() Pt2[T]          { return Pt2[T]{-p.X, -p.Y} }
func (p Pt2[T]) TurnRight() Pt2[T]    { return Pt2[T]{-p.Y, p.X} }
func (p Pt2[T]) TurnLeft() Pt2[T]     { return Pt2[T]{p.Y, -p.X} }
func (p Pt2[T]) String() string       { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }
func (p Pt2[T]) Manhattan(q Pt2[T]) T { return Abs(p.X-q.X) + Abs(p.Y-q.Y) }

// Toward moves p at most one step in X and one in Y toward q.
func (p Pt2[T]) Toward(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + Sign(q.X-p.X), p.Y + Sign(q.Y-p.Y)}
}

// Touching reports whether p and q are the same or adjacent (diagonals count).
func (p Pt2[T]) Touching(q Pt2[T]) bool {
	return Abs(p.X-q.X) <= 1 && Abs(p.Y-q.Y) <= 1
}

func (p Pt2[T]) Neighbors4() [4]Pt2[T] {
	return [4]Pt2[T]{{p.X, p.Y - 1}, {p.X + 1, p.Y}, {p.X, p.Y + 1}, {p.X - 1, p.Y}}
}

func (p Pt2[T]) Neighbors8() [8]Pt2[T] {
	var out [8]Pt2[T]
	i := 0
	for dy := T(-1); dy <= 1; dy++ {
		for dx := T(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = Pt2[T]{p.X + dx, p.Y + dy}
			i++
		}
	}
	return out
}

// Pt3 is a 3D point.
type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

// DistSq is the squared euclidean distance.
func (p Pt3[T]) DistSq(q Pt3[T]) T {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return dx*dx + dy*dy + dz*dz
}
