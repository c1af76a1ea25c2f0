// Package rngtest provides scripted random sources for tests.
package rngtest

// Sequence replays scripted draws in order. Intn values are reduced
// modulo n so a script stays valid for any range; once a script is
// exhausted every further draw is 0.
type Sequence struct {
	Ints   []int
	Floats []float64

	// Calls records the n passed to every Intn call.
	Calls []int
}

// Ints returns a Sequence that replays the given integer draws.
func Ints(values ...int) *Sequence {
	return &Sequence{Ints: values}
}

// Intn returns the next scripted integer.
func (s *Sequence) Intn(n int) int {
	s.Calls = append(s.Calls, n)
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v % n
}

// Float64 returns the next scripted float.
func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
