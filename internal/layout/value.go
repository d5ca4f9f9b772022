package layout

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUnset          Unit = iota // No size given: fill the available space
	UnitAuto                       // Size determined by content
	UnitFixed                      // Absolute terminal cells
	UnitPercent                    // Percentage of the container axis
	UnitFraction                   // Multiples of the fraction unit ("fr")
	UnitViewportWidth              // Percentage of the viewport width ("vw")
	UnitViewportHeight             // Percentage of the viewport height ("vh")
)

var unitSuffixes = map[Unit]string{
	UnitPercent:        "%",
	UnitFraction:       "fr",
	UnitViewportWidth:  "vw",
	UnitViewportHeight: "vh",
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return u <= UnitViewportHeight
}

// Value represents a dimension that can be unset, auto, fixed or relative.
type Value struct {
	Amount float64
	Unit   Unit
}

// Unset returns a Value that fills the available space.
func Unset() Value {
	return Value{Unit: UnitUnset}
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the container axis.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Fraction returns a Value measured in fraction units.
func Fraction(fr float64) Value {
	return Value{Amount: fr, Unit: UnitFraction}
}

// ViewportWidth returns a Value as a percentage of the viewport width.
func ViewportWidth(p float64) Value {
	return Value{Amount: p, Unit: UnitViewportWidth}
}

// ViewportHeight returns a Value as a percentage of the viewport height.
func ViewportHeight(p float64) Value {
	return Value{Amount: p, Unit: UnitViewportHeight}
}

// IsUnset returns true if no size was given.
func (v Value) IsUnset() bool {
	return v.Unit == UnitUnset
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsFraction returns true for "fr" values.
func (v Value) IsFraction() bool {
	return v.Unit == UnitFraction
}

// Rat returns the amount as an exact rational. Non-finite amounts are zero.
func (v Value) Rat() *big.Rat {
	return ratFromFloat(v.Amount)
}

// Resolve computes the exact length of the value. container is the length of
// the container axis the value applies to. Unset, auto and unknown units
// cannot be resolved here and report false.
func (v Value) Resolve(container int, viewport Size, fractionUnit *big.Rat) (*big.Rat, bool) {
	amount := v.Rat()
	switch v.Unit {
	case UnitFixed:
		return amount, true
	case UnitPercent:
		return percentOf(amount, container), true
	case UnitFraction:
		if fractionUnit == nil {
			return amount, true
		}
		return amount.Mul(amount, fractionUnit), true
	case UnitViewportWidth:
		return percentOf(amount, viewport.Width), true
	case UnitViewportHeight:
		return percentOf(amount, viewport.Height), true
	default:
		return nil, false
	}
}

// String formats the value the way ParseValue reads it.
func (v Value) String() string {
	switch v.Unit {
	case UnitUnset:
		return ""
	case UnitAuto:
		return "auto"
	case UnitFixed:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64)
	}
	if suffix, ok := unitSuffixes[v.Unit]; ok {
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + suffix
	}
	return fmt.Sprintf("unit(%d)", v.Unit)
}

// ParseValue parses "", "auto", "10", "50%", "1fr", "20vw" or "30vh".
func ParseValue(text string) (Value, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch s {
	case "":
		return Unset(), nil
	case "auto":
		return Auto(), nil
	}

	unit := UnitFixed
	for u, suffix := range unitSuffixes {
		if strings.HasSuffix(s, suffix) {
			unit = u
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || amount < 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, text)
	}
	return Value{Amount: amount, Unit: unit}, nil
}

func ratFromFloat(f float64) *big.Rat {
	r := new(big.Rat)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return r
	}
	return r.SetFloat64(f)
}

func percentOf(amount *big.Rat, length int) *big.Rat {
	r := new(big.Rat).SetInt64(int64(length))
	r.Mul(r, amount)
	return r.Quo(r, big.NewRat(100, 1))
}

// Trunc truncates a rational toward zero. Results beyond the int32 range
// saturate so oversized values never wrap.
func Trunc(r *big.Rat) int {
	if r == nil {
		return 0
	}
	return saturate(new(big.Int).Quo(r.Num(), r.Denom()))
}

// Floor rounds a rational toward negative infinity, saturating like Trunc.
func Floor(r *big.Rat) int {
	if r == nil {
		return 0
	}
	// Denominators are always positive, so Euclidean division floors.
	return saturate(new(big.Int).Div(r.Num(), r.Denom()))
}

var (
	maxCells = big.NewInt(math.MaxInt32)
	minCells = big.NewInt(math.MinInt32)
)

func saturate(n *big.Int) int {
	switch {
	case n.Cmp(maxCells) > 0:
		return math.MaxInt32
	case n.Cmp(minCells) < 0:
		return math.MinInt32
	}
	return int(n.Int64())
}
