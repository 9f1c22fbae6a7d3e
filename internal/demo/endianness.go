package demo

import (
	"encoding/binary"
	"unsafe"
)

// runEndianness probes the platform byte order and dumps the same
// word in native, little and big order. The probe reads the first
// byte of a uint16 holding 1: a low-order byte first means little
// endian, the layout every packet writer in this repo has to think
// about.
func runEndianness(ctx *Context) error {
	probe := uint16(1)
	firstByte := *(*byte)(unsafe.Pointer(&probe))

	order := "Big Endian"
	if firstByte == 1 {
		order = "Little Endian"
	}
	ctx.Printf("Machine is %s\n", order)
	ctx.Trace("byte order", order)

	const word = uint32(0x12345678)
	ctx.Printf("\nTest value: 0x%08X\n", word)

	var buf [4]byte
	dump := func(label string) {
		ctx.Printf("%s 0x%02X 0x%02X 0x%02X 0x%02X\n", label, buf[0], buf[1], buf[2], buf[3])
	}

	binary.NativeEndian.PutUint32(buf[:], word)
	dump("Native order: ")

	binary.LittleEndian.PutUint32(buf[:], word)
	dump("Little endian:")

	binary.BigEndian.PutUint32(buf[:], word)
	dump("Big endian:   ")

	ctx.Printf("\nBig endian is network byte order; the UDP snapshot packets\n")
	ctx.Printf("use it so any receiver decodes them the same way.\n")
	return nil
}
