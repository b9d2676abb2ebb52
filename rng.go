package main

import "time"

// rollSource is a splitmix64 stream used for the mighty-power roll.
// Seeding it from config makes skill outcomes reproducible in tests.
type rollSource struct {
	state uint64
}

func newRollSource(seed uint64) *rollSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &rollSource{state: seed}
}

func (s *rollSource) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float64 returns a uniform draw in [0, 1).
func (s *rollSource) Float64() float64 {
	return float64(s.next()>>11) / float64(uint64(1)<<53)
}
