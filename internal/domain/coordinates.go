package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Immutable grid coordinates in grid units.
type Coordinates struct {
	X int
	Y int
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Straight-line distance between two grid points.
// Differences are taken in float64 so far-apart points cannot wrap around.
func (c Coordinates) Distance(other Coordinates) float64 {
	return math.Hypot(float64(c.X)-float64(other.X), float64(c.Y)-float64(other.Y))
}

// Within reports whether other lies at Euclidean distance <= r (r >= 0), computed exactly.
func (c Coordinates) Within(other Coordinates, r int) bool {
	dx, ok := sub(c.X, other.X)
	if !ok || dx < -r || dx > r {
		return false
	}
	dy, ok := sub(c.Y, other.Y)
	if !ok || dy < -r || dy > r {
		return false
	}
	return dx*dx+dy*dy <= r*r
}

// Differences below this keep the int cross product well clear of overflow.
const crossFastLimit = 1 << 30

// CrossSign returns the sign (-1, 0, 1) of the 2D cross product of (tail->head) and (mid->head).
// Negative means head lies to the left of the tail->mid leg, positive to the right.
func CrossSign(tail, mid, head Coordinates) int {
	tx, ok1 := sub(head.X, tail.X)
	ty, ok2 := sub(head.Y, tail.Y)
	mx, ok3 := sub(head.X, mid.X)
	my, ok4 := sub(head.Y, mid.Y)

	if ok1 && ok2 && ok3 && ok4 && small(tx) && small(ty) && small(mx) && small(my) {
		cross := tx*my - ty*mx
		switch {
		case cross < 0:
			return -1
		case cross > 0:
			return 1
		default:
			return 0
		}
	}

	return crossSignBig(tail, mid, head)
}

func crossSignBig(tail, mid, head Coordinates) int {
	bi := func(v int) *big.Int { return big.NewInt(int64(v)) }

	tx := new(big.Int).Sub(bi(head.X), bi(tail.X))
	ty := new(big.Int).Sub(bi(head.Y), bi(tail.Y))
	mx := new(big.Int).Sub(bi(head.X), bi(mid.X))
	my := new(big.Int).Sub(bi(head.Y), bi(mid.Y))

	left := new(big.Int).Mul(tx, my)
	right := new(big.Int).Mul(ty, mx)
	return left.Sub(left, right).Sign()
}

// sub returns a-b and false if the subtraction overflowed.
func sub(a, b int) (int, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}

func small(v int) bool {
	return v > -crossFastLimit && v < crossFastLimit
}
