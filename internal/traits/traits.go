// Package traits models the ten-dimension personality vector that drives
// agent behavior. A profile is immutable after construction and its values
// always sum to exactly 100.
package traits

import "fmt"

// Name identifies one personality dimension.
type Name string

const (
	Curiosity    Name = "curiosity"
	Empathy      Name = "empathy"
	Confidence   Name = "confidence"
	Creativity   Name = "creativity"
	Analytical   Name = "analytical"
	Social       Name = "social"
	Cautious     Name = "cautious"
	Ambitious    Name = "ambitious"
	Humor        Name = "humor"
	Adaptability Name = "adaptability"
)

// NumTraits is the number of personality dimensions.
const NumTraits = 10

// Order is the fixed declaration order of traits. Dominant-trait ties break
// in this order, and budget-based generation iterates it front to back.
var Order = [NumTraits]Name{
	Curiosity, Empathy, Confidence, Creativity, Analytical,
	Social, Cautious, Ambitious, Humor, Adaptability,
}

// Sum every profile must satisfy.
const TargetSum = 100

// Validation error kinds.
const (
	KindTraitSum   = "trait-sum"
	KindTraitRange = "trait-range"
)

// ValidationError reports a profile that violates the trait invariants.
type ValidationError struct {
	Kind  string // KindTraitSum or KindTraitRange
	Trait Name   // Offending trait for range violations
	Value int    // Offending value for range violations
	Sum   int    // Actual sum for sum violations
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindTraitSum:
		return fmt.Sprintf("personality traits must sum to %d, got %d", TargetSum, e.Sum)
	case KindTraitRange:
		return fmt.Sprintf("trait %s must be in [0,100], got %d", e.Trait, e.Value)
	default:
		return "invalid personality profile"
	}
}

// Values is the constructor input, one field per trait.
type Values struct {
	Curiosity    int `json:"curiosity" yaml:"curiosity"`
	Empathy      int `json:"empathy" yaml:"empathy"`
	Confidence   int `json:"confidence" yaml:"confidence"`
	Creativity   int `json:"creativity" yaml:"creativity"`
	Analytical   int `json:"analytical" yaml:"analytical"`
	Social       int `json:"social" yaml:"social"`
	Cautious     int `json:"cautious" yaml:"cautious"`
	Ambitious    int `json:"ambitious" yaml:"ambitious"`
	Humor        int `json:"humor" yaml:"humor"`
	Adaptability int `json:"adaptability" yaml:"adaptability"`
}

func (v Values) array() [NumTraits]int {
	return [NumTraits]int{
		v.Curiosity, v.Empathy, v.Confidence, v.Creativity, v.Analytical,
		v.Social, v.Cautious, v.Ambitious, v.Humor, v.Adaptability,
	}
}

// FromOrder builds Values from an array indexed by Order.
func FromOrder(vals [NumTraits]int) Values {
	return Values{
		Curiosity:    vals[0],
		Empathy:      vals[1],
		Confidence:   vals[2],
		Creativity:   vals[3],
		Analytical:   vals[4],
		Social:       vals[5],
		Cautious:     vals[6],
		Ambitious:    vals[7],
		Humor:        vals[8],
		Adaptability: vals[9],
	}
}

// Profile is an immutable ten-trait personality vector. The zero value is
// not valid; construct with New.
type Profile struct {
	v [NumTraits]int
}

// New validates the trait values and returns a Profile. Returns a
// *ValidationError of kind trait-range when any value falls outside [0,100]
// and of kind trait-sum when the values do not sum to exactly 100.
func New(v Values) (Profile, error) {
	arr := v.array()
	sum := 0
	for i, val := range arr {
		if val < 0 || val > 100 {
			return Profile{}, &ValidationError{Kind: KindTraitRange, Trait: Order[i], Value: val}
		}
		sum += val
	}
	if sum != TargetSum {
		return Profile{}, &ValidationError{Kind: KindTraitSum, Sum: sum}
	}
	return Profile{v: arr}, nil
}

// MustNew is New for compiled-in profiles that cannot fail.
func MustNew(v Values) Profile {
	p, err := New(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Get returns the value of a single trait, or 0 for an unknown name.
func (p Profile) Get(n Name) int {
	for i, name := range Order {
		if name == n {
			return p.v[i]
		}
	}
	return 0
}

// Values returns a copy of the profile as constructor input.
func (p Profile) Values() Values {
	return FromOrder(p.v)
}

// Dominant returns the n highest-valued trait names in descending order.
// Ties break by declaration order. Deterministic and side-effect-free.
func (p Profile) Dominant(n int) []Name {
	if n <= 0 {
		return nil
	}
	if n > NumTraits {
		n = NumTraits
	}

	// Selection by repeated max keeps the declaration-order tie break
	// explicit: strictly greater wins, equal keeps the earlier trait.
	picked := [NumTraits]bool{}
	out := make([]Name, 0, n)
	for len(out) < n {
		best := -1
		for i := range p.v {
			if picked[i] {
				continue
			}
			if best == -1 || p.v[i] > p.v[best] {
				best = i
			}
		}
		picked[best] = true
		out = append(out, Order[best])
	}
	return out
}
