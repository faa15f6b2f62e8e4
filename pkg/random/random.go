package random

import "math/rand/v2"

// Source Источник случайных чисел, подменяется в тестах детерминированным
type Source interface {
	// IntN возвращает число в [0, n)
	IntN(n int) int
	// Float64 возвращает число в [0, 1)
	Float64() float64
}

type global struct{}

func (global) IntN(n int) int   { return rand.IntN(n) }
func (global) Float64() float64 { return rand.Float64() }

// Default Источник на глобальном генераторе math/rand/v2
func Default() Source {
	return global{}
}

// NewSeeded Воспроизводимый источник с фиксированным зерном
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
