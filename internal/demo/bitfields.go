package demo

// statusWord packs four fields into 16 bits with explicit shifts and
// masks, the portable answer to a C bit-field struct:
//
//	| 15......8 | 7.....3 | 2..1 |  0   |
//	| reserved  | counter | stat | flag |
//
// Writes mask the incoming value to the field width, so an oversized
// value truncates silently, exactly like the hardware register it
// models.
type statusWord uint16

const (
	flagShift     = 0
	statusShift   = 1
	counterShift  = 3
	reservedShift = 8

	flagMask     = 0x1
	statusMask   = 0x3
	counterMask  = 0x1F
	reservedMask = 0xFF
)

func (w statusWord) flag() uint16     { return uint16(w>>flagShift) & flagMask }
func (w statusWord) status() uint16   { return uint16(w>>statusShift) & statusMask }
func (w statusWord) counter() uint16  { return uint16(w>>counterShift) & counterMask }
func (w statusWord) reserved() uint16 { return uint16(w>>reservedShift) & reservedMask }

func (w statusWord) withFlag(v uint16) statusWord {
	return w&^(flagMask<<flagShift) | statusWord(v&flagMask)<<flagShift
}

func (w statusWord) withStatus(v uint16) statusWord {
	return w&^(statusMask<<statusShift) | statusWord(v&statusMask)<<statusShift
}

func (w statusWord) withCounter(v uint16) statusWord {
	return w&^(counterMask<<counterShift) | statusWord(v&counterMask)<<counterShift
}

func (w statusWord) withReserved(v uint16) statusWord {
	return w&^(reservedMask<<reservedShift) | statusWord(v&reservedMask)<<reservedShift
}

// runBitFields fills the packed word field by field and then forces a
// truncation: writing 35 into the 5-bit counter keeps only the low
// five bits, 35 & 0x1F = 3.
func runBitFields(ctx *Context) error {
	var w statusWord

	w = w.withFlag(1)
	w = w.withStatus(2)
	w = w.withCounter(15)
	w = w.withReserved(0xFF)

	ctx.Printf("Packed word (2 bytes): %#04x (binary: %016b)\n", uint16(w), uint16(w))
	ctx.Printf("  flag (1 bit): %d\n", w.flag())
	ctx.Printf("  status (2 bits): %d\n", w.status())
	ctx.Printf("  counter (5 bits): %d\n", w.counter())
	ctx.Printf("  reserved (8 bits): 0x%02X\n", w.reserved())
	ctx.Trace("packed word", uint16(w))

	w = w.withCounter(35)
	ctx.Printf("\nCounter after setting to 35: %d (truncated to 5 bits: 35 & 0x1F)\n", w.counter())
	ctx.Trace("counter(35)", w.counter())

	return nil
}
