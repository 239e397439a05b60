package latch

// Destination tags per the ADF411x serial interface. The two least-significant
// bits of every 24-bit word select the internal latch the chip routes it to,
// independent of arrival order.
const (
	// TagReference routes the word to the 14-bit reference counter latch
	TagReference = 0x0

	// TagFeedback routes the word to the 19-bit feedback counter latch (B and A)
	TagFeedback = 0x1

	// TagFunction routes the word to the function/control latch
	TagFunction = 0x2

	// TagMask extracts the destination tag from a latch word
	TagMask = 0x3
)

// Word geometry.
const (
	// WordBits is the size of a latch word in bits
	WordBits = 24

	// WordMask is the 24-bit mask for latch word values
	WordMask = 0xFFFFFF
)

// OutputPrescale is the fixed divide-by-4 output stage between the VCO and the
// feedback counter. Target frequencies are divided by this before the N math.
const OutputPrescale = 4

// Reference counter latch layout.
const (
	// RShift is the bit offset of the 14-bit reference divide ratio
	RShift = 2

	// RMin is the minimum programmable reference divide ratio
	RMin = 1

	// RMax is the maximum programmable reference divide ratio (14 bits)
	RMax = 0x3FFF
)

// Reference latch operating modes. Mode selects the pattern of the upper
// control bits (lock-detect precision, delay-line test bits at 16/20/23).
const (
	// RefModeNormal leaves all upper control bits clear
	RefModeNormal = 0

	// RefModeTest enables the delay-line test configuration
	RefModeTest = 1
)

// refModeBits maps a reference latch operating mode to its control-bit
// pattern. Mode test sets bits 16, 20 and 23 per the vendor datasheet.
var refModeBits = [2]uint32{
	RefModeNormal: 0x000000,
	RefModeTest:   0x910000,
}

// Feedback counter latch layout.
const (
	// AShift is the bit offset of the 6-bit swallow counter value
	AShift = 2

	// AMax is the maximum swallow counter value (6 bits)
	AMax = 0x3F

	// BShift is the bit offset of the 13-bit high-speed counter value
	BShift = 8

	// BMax is the maximum high-speed counter value (13 bits)
	BMax = 0x1FFF
)

// Function latch layout. Each selector occupies a fixed, vendor-defined
// bit field above the destination tag.
const (
	// CounterResetBit holds both counters in reset while set
	CounterResetBit = 2

	// PowerDown1Bit is the soft power-down control
	PowerDown1Bit = 3

	// MuxoutShift is the bit offset of the 3-bit muxout selector
	MuxoutShift = 4

	// MuxoutMax is the maximum muxout selector value
	MuxoutMax = 7

	// PolarityBit sets positive phase-detector polarity
	PolarityBit = 7

	// CPThreeStateBit puts the charge-pump output into three-state
	CPThreeStateBit = 8

	// FastlockShift is the bit offset of the 2-bit fastlock mode selector
	FastlockShift = 9

	// FastlockMax is the maximum fastlock mode value
	FastlockMax = 3

	// TimerShift is the bit offset of the 4-bit timeout counter selector
	TimerShift = 11

	// TimerMax is the maximum timeout counter value
	TimerMax = 15

	// Current1Shift is the bit offset of the first 3-bit charge-pump current setting
	Current1Shift = 15

	// Current2Shift is the bit offset of the second 3-bit charge-pump current setting
	Current2Shift = 18

	// CurrentMax is the maximum charge-pump current setting
	CurrentMax = 7

	// PowerDown2Bit is the hard power-down control
	PowerDown2Bit = 21

	// PrescalerShift is the bit offset of the 2-bit prescaler selector
	PrescalerShift = 22

	// PrescalerIndexMax is the maximum prescaler index (P = 8 << index, up to 64/65)
	PrescalerIndexMax = 3
)
