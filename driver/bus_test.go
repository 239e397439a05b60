package driver

import "time"

// virtualClock stands in for real time: the sweeper's sleep function
// advances it instead of blocking, so timing assertions are exact.
type virtualClock struct {
	now time.Duration
}

func (c *virtualClock) sleep(d time.Duration) {
	c.now += d
}

// fakeBus records every line transition against the virtual clock and
// reassembles the words shifted into it, exactly as the chip's shift
// register would: DATA sampled on each rising CLOCK edge, word committed on
// the rising LATCH-ENABLE edge.
type fakeBus struct {
	clock *virtualClock

	data bool
	sync bool

	shift    uint32
	bitCount int

	// committed words in arrival order, with per-word metadata
	words     []uint32
	wordBits  []int
	syncAtLE  []bool
	leRises   []time.Duration
	leFalls   []time.Duration
	syncFalls []time.Duration

	clockRises int
	clockLevel bool
}

func newFakeBus(clock *virtualClock) *fakeBus {
	return &fakeBus{clock: clock}
}

func (b *fakeBus) SetClock(high bool) {
	if high && !b.clockLevel {
		b.clockRises++
		b.shift = b.shift<<1 | boolBit(b.data)
		b.bitCount++
	}
	b.clockLevel = high
}

func (b *fakeBus) SetData(high bool) {
	b.data = high
}

func (b *fakeBus) SetLatchEnable(high bool) {
	if high {
		b.words = append(b.words, b.shift&0xFFFFFF)
		b.wordBits = append(b.wordBits, b.bitCount)
		b.leRises = append(b.leRises, b.clock.now)
		b.shift = 0
		b.bitCount = 0
	} else {
		// sync is sampled at the end of the pulse, while still asserted
		b.syncAtLE = append(b.syncAtLE, b.sync)
		b.leFalls = append(b.leFalls, b.clock.now)
	}
}

func (b *fakeBus) SetSync(high bool) {
	b.sync = high
	if !high {
		b.syncFalls = append(b.syncFalls, b.clock.now)
	}
}

func boolBit(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
