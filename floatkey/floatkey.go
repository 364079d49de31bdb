// Package floatkey implements the order-preserving transform for IEEE-754
// floats: reinterpret the float's bit pattern as an unsigned integer in a
// way that makes big-endian byte order match float order, including
// infinities, NaN, and the -0.0/+0.0 distinction.
//
// The transform is its own inverse given the direction of the XOR mask, so
// Encode and Decode share the same shape: derive a mask from the sign bit
// under consideration, then XOR.
package floatkey

import "math"

// Encode64 maps a float64's IEEE-754 bit pattern to an order-preserving
// uint64: negative floats have every bit flipped, non-negative floats have
// only the sign bit flipped. The result, written big-endian, sorts in the
// same order as the float, with -0.0 immediately below +0.0 and every NaN
// above +Inf.
func Encode64(f float64) uint64 {
	bits := math.Float64bits(f)

	var mask uint64
	if bits>>63 == 1 {
		mask = math.MaxUint64
	} else {
		mask = 1 << 63
	}

	return bits ^ mask
}

// Decode64 is the inverse of Encode64.
func Decode64(x uint64) float64 {
	var mask uint64
	if x>>63 == 1 {
		mask = 1 << 63
	} else {
		mask = math.MaxUint64
	}

	return math.Float64frombits(x ^ mask)
}

// Encode32 is the float32 counterpart of Encode64.
func Encode32(f float32) uint32 {
	bits := math.Float32bits(f)

	var mask uint32
	if bits>>31 == 1 {
		mask = math.MaxUint32
	} else {
		mask = 1 << 31
	}

	return bits ^ mask
}

// Decode32 is the inverse of Encode32.
func Decode32(x uint32) float32 {
	var mask uint32
	if x>>31 == 1 {
		mask = 1 << 31
	} else {
		mask = math.MaxUint32
	}

	return math.Float32frombits(x ^ mask)
}
