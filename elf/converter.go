package elf

import "encoding/binary"

// Converter is the single seam between on-disk byte order and host byte
// order (§4.2). It carries one boolean decided once at load time; every
// primitive read in this package flows through it so byte-swapping is never
// scattered through record-decoding code.
type Converter struct {
	SwapNeeded bool
}

// hostIsLittleEndian reports the native byte order of the running process,
// the same way the teacher's identifier parsing does (binary.NativeEndian).
func hostIsLittleEndian() bool {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 1)
	return buf[0] == 1
}

// NewConverter decides swap_needed by comparing the file's encoding byte
// against the host's native order (§4.4 step 4).
func NewConverter(encoding DataEncoding) Converter {
	fileIsLittleEndian := encoding == DataEncodingTwosComplementLittleEndian
	return Converter{SwapNeeded: fileIsLittleEndian != hostIsLittleEndian()}
}

// ConvertByte is always identity: single bytes have no endianness.
func (c Converter) ConvertByte(x byte) byte { return x }

func (c Converter) ConvertHalf(x Half) Half {
	if !c.SwapNeeded {
		return x
	}
	return (x>>8)&0x00ff | (x<<8)&0xff00
}

func (c Converter) ConvertWord(x Word) Word {
	if !c.SwapNeeded {
		return x
	}
	return (x>>24)&0x000000ff |
		(x>>8)&0x0000ff00 |
		(x<<8)&0x00ff0000 |
		(x<<24)&0xff000000
}

func (c Converter) ConvertSword(x Sword) Sword {
	return Sword(c.ConvertWord(Word(x)))
}

func (c Converter) ConvertXword(x Xword) Xword {
	if !c.SwapNeeded {
		return x
	}
	hi := c.ConvertWord(Word(x >> 32))
	lo := c.ConvertWord(Word(x))
	return Xword(lo)<<32 | Xword(hi)
}

func (c Converter) ConvertSxword(x Sxword) Sxword {
	return Sxword(c.ConvertXword(Xword(x)))
}
