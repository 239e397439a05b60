package latch

import "fmt"

// Word is a single 24-bit latch word as shifted into the chip's serial
// register, most-significant bit first. Its two least-significant bits carry
// the destination tag; the remainder is the latch payload.
type Word uint32

// FromBytes reassembles a latch word from its three transmission bytes.
func FromBytes(hi, mid, lo byte) Word {
	return Word(uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo))
}

// Bytes decomposes the word into its three transmission bytes,
// most-significant byte first.
func (w Word) Bytes() (hi, mid, lo byte) {
	return byte(w >> 16), byte(w >> 8), byte(w)
}

// Tag returns the 2-bit destination tag (TagReference, TagFeedback or
// TagFunction).
func (w Word) Tag() byte {
	return byte(w & TagMask)
}

// String returns the word as a zero-padded 24-bit hex literal.
func (w Word) String() string {
	return fmt.Sprintf("0x%06X", uint32(w)&WordMask)
}

// Words holds the three latch words that fully program the synthesizer for
// one output frequency.
type Words struct {
	// Reference carries the R divide ratio and the upper control bits
	Reference Word

	// Function carries charge-pump, lock-detect, power-down and prescaler config
	Function Word

	// Feedback carries the B (high-speed) and A (swallow) counter values
	Feedback Word
}
