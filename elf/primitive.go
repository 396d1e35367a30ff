package elf

import "encoding/binary"

// decoder reads fixed-width integers from a Source (§4.3). Each read is a
// two-step operation: interpret the raw bytes in native host order (a
// no-op memcpy, never endian-aware on its own), then pass the result
// through the converter. The converter alone knows whether to swap; the
// primitive never embeds a platform assumption.
type decoder struct {
	src  Source
	conv Converter
}

func (d decoder) readByte() (byte, error) {
	var buf [1]byte
	if err := d.src.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return d.conv.ConvertByte(buf[0]), nil
}

func (d decoder) readHalf() (Half, error) {
	var buf [2]byte
	if err := d.src.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return d.conv.ConvertHalf(binary.NativeEndian.Uint16(buf[:])), nil
}

func (d decoder) readWord() (Word, error) {
	var buf [4]byte
	if err := d.src.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return d.conv.ConvertWord(binary.NativeEndian.Uint32(buf[:])), nil
}

func (d decoder) readSword() (Sword, error) {
	w, err := d.readWord()
	return Sword(w), err
}

func (d decoder) readXword() (Xword, error) {
	var buf [8]byte
	if err := d.src.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return d.conv.ConvertXword(binary.NativeEndian.Uint64(buf[:])), nil
}

func (d decoder) readSxword() (Sxword, error) {
	x, err := d.readXword()
	return Sxword(x), err
}

// readAddrOrOff reads an address/offset field, whose on-disk width depends
// on the file's class, and widens it to 64 bits (§3).
func (d decoder) readAddrOrOff(class Class) (Xword, error) {
	if class == Class64 {
		return d.readXword()
	}
	w, err := d.readWord()
	return Xword(w), err
}

// --- slice-based primitives used by section accessors, which decode from
// payload bytes already held in memory rather than streaming from Source.

func sliceHalf(b []byte, off int, conv Converter) Half {
	return conv.ConvertHalf(binary.NativeEndian.Uint16(b[off : off+2]))
}

func sliceWord(b []byte, off int, conv Converter) Word {
	return conv.ConvertWord(binary.NativeEndian.Uint32(b[off : off+4]))
}

func sliceSword(b []byte, off int, conv Converter) Sword {
	return Sword(sliceWord(b, off, conv))
}

func sliceXword(b []byte, off int, conv Converter) Xword {
	return conv.ConvertXword(binary.NativeEndian.Uint64(b[off : off+8]))
}

func sliceSxword(b []byte, off int, conv Converter) Sxword {
	return Sxword(sliceXword(b, off, conv))
}

func sliceAddrOrOff(b []byte, off int, class Class, conv Converter) (Xword, int) {
	if class == Class64 {
		return sliceXword(b, off, conv), 8
	}
	return Xword(sliceWord(b, off, conv)), 4
}
