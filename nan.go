package ieee754

import "math"

// NaN payload codec.
//
// The fraction field of a NaN splits into a one-bit quiet/signaling
// discriminator (the most-significant fraction bit) and a payload of
// significandBits-1 bits. Payload and DecodeNaN mask the quiet bit in
// together with the payload, so a payload read back from a quiet NaN has the
// quiet bit visible in its top position. Callers that need the bare payload
// can mask it off; the encoders accept either form.

// QuietNaN returns a positive quiet NaN carrying payload, masked to the
// 51 payload bits of binary64.
func QuietNaN(payload uint64) float64 {
	return math.Float64frombits(expMask64 | quietBit64 | payload&payloadMask64)
}

// QuietNaN32 returns a positive quiet NaN carrying payload, masked to the
// 22 payload bits of binary32.
func QuietNaN32(payload uint32) float32 {
	return math.Float32frombits(expMask32 | quietBit32 | payload&payloadMask32)
}

// SignalingNaN returns a positive signaling NaN carrying payload. A
// signaling NaN must have a non-zero fraction (an all-zero fraction would be
// infinity), so a zero payload is substituted with 1. That substituted
// payload is what round-trips through DecodeNaN.
func SignalingNaN(payload uint64) float64 {
	payload &= payloadMask64
	if payload == 0 {
		payload = 1
	}
	return math.Float64frombits(expMask64 | payload)
}

// SignalingNaN32 returns a positive signaling NaN carrying payload,
// substituting 1 for a zero payload.
func SignalingNaN32(payload uint32) float32 {
	payload &= payloadMask32
	if payload == 0 {
		payload = 1
	}
	return math.Float32frombits(expMask32 | payload)
}

// Payload returns the fraction field of v (quiet bit included) and true, or
// 0 and false if v is not a NaN.
func Payload(v float64) (uint64, bool) {
	if !IsNaN(v) {
		return 0, false
	}
	return math.Float64bits(v) & fracMask64, true
}

// Payload32 returns the fraction field of v (quiet bit included) and true,
// or 0 and false if v is not a NaN.
func Payload32(v float32) (uint32, bool) {
	if !IsNaN32(v) {
		return 0, false
	}
	return math.Float32bits(v) & fracMask32, true
}

// DecodeNaN splits a NaN into its payload (quiet bit included, as with
// Payload) and its signaling flag. ok is false if v is not a NaN.
func DecodeNaN(v float64) (payload uint64, signaling, ok bool) {
	payload, ok = Payload(v)
	if !ok {
		return 0, false, false
	}
	return payload, payload&quietBit64 == 0, true
}

// DecodeNaN32 splits a NaN into its payload and signaling flag. ok is false
// if v is not a NaN.
func DecodeNaN32(v float32) (payload uint32, signaling, ok bool) {
	payload, ok = Payload32(v)
	if !ok {
		return 0, false, false
	}
	return payload, payload&quietBit32 == 0, true
}
