// Package generator produces random test data. Every generator draws
// from one shared source, which Seed or Configure make deterministic.
//
// Constructors panic on invalid arguments such as inverted bounds;
// those are mistakes in the calling test.
package generator

import (
	"encoding/hex"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"digital.vasic.alchemy/internal/check"
)

// Generator produces a new value on every call.
type Generator[T any] func() T

// One draws a single value from g.
func One[T any](g Generator[T]) T {
	check.NotNil(g, "generator is nil")
	return g()
}

// Integers produces ints in [lo, hi). When lo == hi it always
// produces lo.
func Integers(lo, hi int) Generator[int] {
	check.That(lo <= hi, "upper bound %d must not be below lower bound %d", hi, lo)
	longs := Longs(int64(lo), int64(hi))
	return func() int {
		return int(longs())
	}
}

// PositiveIntegers produces ints in [1, math.MaxInt).
func PositiveIntegers() Generator[int] {
	return Integers(1, math.MaxInt)
}

// SmallPositiveIntegers produces ints in [1, 1000).
func SmallPositiveIntegers() Generator[int] {
	return Integers(1, 1000)
}

// NegativeIntegers produces ints in [math.MinInt, -1].
func NegativeIntegers() Generator[int] {
	return Integers(math.MinInt, 0)
}

// Longs produces int64s in [lo, hi). When lo == hi it always
// produces lo.
func Longs(lo, hi int64) Generator[int64] {
	check.That(lo <= hi, "upper bound %d must not be below lower bound %d", hi, lo)
	span := uint64(hi) - uint64(lo)
	return func() int64 {
		if span == 0 {
			return lo
		}
		offset := withRand(func(r *rand.Rand) uint64 {
			return r.Uint64N(span)
		})
		return int64(uint64(lo) + offset)
	}
}

// PositiveLongs produces int64s in [1, math.MaxInt64).
func PositiveLongs() Generator[int64] {
	return Longs(1, math.MaxInt64)
}

// SmallPositiveLongs produces int64s in [1, 10000).
func SmallPositiveLongs() Generator[int64] {
	return Longs(1, 10_000)
}

// Doubles produces float64s in [lo, hi]. Both bounds must be
// finite.
func Doubles(lo, hi float64) Generator[float64] {
	check.That(!math.IsNaN(lo) && !math.IsNaN(hi), "bounds must not be NaN")
	check.That(!math.IsInf(lo, 0) && !math.IsInf(hi, 0), "bounds must be finite, got [%v, %v]", lo, hi)
	check.That(lo <= hi, "upper bound %v must not be below lower bound %v", hi, lo)
	return func() float64 {
		f := withRand(func(r *rand.Rand) float64 {
			return r.Float64()
		})
		// Interpolating avoids overflow when hi-lo exceeds MaxFloat64.
		v := lo*(1-f) + hi*f
		return math.Min(math.Max(v, lo), hi)
	}
}

// PositiveDoubles produces float64s in [0.1, math.MaxFloat64].
func PositiveDoubles() Generator[float64] {
	return Doubles(0.1, math.MaxFloat64)
}

// SmallPositiveDoubles produces float64s in [0.1, 1000].
func SmallPositiveDoubles() Generator[float64] {
	return Doubles(0.1, 1000)
}

// NegativeDoubles produces float64s in [-math.MaxFloat64, -0.1].
func NegativeDoubles() Generator[float64] {
	return Doubles(-math.MaxFloat64, -0.1)
}

// Floats produces float32s in [lo, hi]. Both bounds must be finite.
func Floats(lo, hi float32) Generator[float32] {
	doubles := Doubles(float64(lo), float64(hi))
	return func() float32 {
		v := float32(doubles())
		// Rounding to float32 can step just outside the bounds.
		return min(max(v, lo), hi)
	}
}

// PositiveFloats produces float32s in [0.1, math.MaxFloat32].
func PositiveFloats() Generator[float32] {
	return Floats(0.1, math.MaxFloat32)
}

// NegativeFloats produces float32s in [-math.MaxFloat32, -0.1].
func NegativeFloats() Generator[float32] {
	return Floats(-math.MaxFloat32, -0.1)
}

// AnyFloats produces finite float32s of either sign.
func AnyFloats() Generator[float32] {
	return Floats(-math.MaxFloat32, math.MaxFloat32)
}

// Booleans produces true and false with equal probability.
func Booleans() Generator[bool] {
	return func() bool {
		return withRand(func(r *rand.Rand) bool {
			return r.IntN(2) == 1
		})
	}
}

const (
	alphabetic   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numeric      = "0123456789"
	alphanumeric = alphabetic + numeric
	printable    = alphanumeric + "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "
)

func fromAlphabet(alphabet string, length int) Generator[string] {
	check.That(length > 0, "length must be at least 1, got %d", length)
	return func() string {
		return withRand(func(r *rand.Rand) string {
			buf := make([]byte, length)
			for i := range buf {
				buf[i] = alphabet[r.IntN(len(alphabet))]
			}
			return string(buf)
		})
	}
}

// Strings produces printable ASCII strings of the given length.
func Strings(length int) Generator[string] {
	return fromAlphabet(printable, length)
}

// AlphabeticStrings produces strings of ASCII letters of the given
// length.
func AlphabeticStrings(length int) Generator[string] {
	return fromAlphabet(alphabetic, length)
}

// AlphanumericStrings produces strings of ASCII letters and digits of
// the given length.
func AlphanumericStrings(length int) Generator[string] {
	return fromAlphabet(alphanumeric, length)
}

// NumericStrings produces strings of decimal digits of the given
// length. Leading zeros are allowed.
func NumericStrings(length int) Generator[string] {
	return fromAlphabet(numeric, length)
}

// HexadecimalStrings produces lowercase hexadecimal strings of the
// given length.
func HexadecimalStrings(length int) Generator[string] {
	check.That(length > 0, "length must be at least 1, got %d", length)
	binary := Binary((length + 1) / 2)
	return func() string {
		return hex.EncodeToString(binary())[:length]
	}
}

// UUIDs produces random version 4 UUID strings from the shared
// source, so a seeded source yields a reproducible sequence.
func UUIDs() Generator[string] {
	return func() string {
		return uuid.Must(uuid.NewRandomFromReader(reader{})).String()
	}
}

// Binary produces byte slices of the given length.
func Binary(length int) Generator[[]byte] {
	check.That(length > 0, "length must be at least 1, got %d", length)
	return func() []byte {
		return withRand(func(r *rand.Rand) []byte {
			buf := make([]byte, length)
			fill(r, buf)
			return buf
		})
	}
}

// FromList produces values picked uniformly from values.
func FromList[T any](values ...T) Generator[T] {
	check.That(len(values) > 0, "no values specified")
	pool := append([]T(nil), values...)
	index := Integers(0, len(pool))
	return func() T {
		return pool[index()]
	}
}

// ListOf draws size values from g.
func ListOf[T any](g Generator[T], size int) []T {
	check.NotNil(g, "generator is nil")
	check.That(size > 0, "size must be at least 1, got %d", size)
	list := make([]T, size)
	for i := range list {
		list[i] = g()
	}
	return list
}

// MapOf draws size key-value pairs. Duplicate keys overwrite each
// other, so the map may hold fewer than size entries.
func MapOf[K comparable, V any](keys Generator[K], values Generator[V], size int) map[K]V {
	check.NotNil(keys, "key generator is nil")
	check.NotNil(values, "value generator is nil")
	check.That(size > 0, "size must be at least 1, got %d", size)
	m := make(map[K]V, size)
	for i := 0; i < size; i++ {
		m[keys()] = values()
	}
	return m
}
