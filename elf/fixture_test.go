package elf_test

import (
	"encoding/binary"

	"github.com/serge1/elfio-go/elf"
)

// fixtureSection describes one section to be laid out by buildELF64LE.
type fixtureSection struct {
	name    string
	typ     elf.SectionType
	flags   elf.SectionFlags
	link    uint32
	info    uint32
	entsize uint64
	data    []byte
}

// buildELF64LE assembles a minimal, valid little-endian 64-bit ELF image
// in memory: one PT_LOAD segment plus the given sections (NULL section is
// added automatically), with a trailing .shstrtab synthesized from the
// section names. This lets the test suite exercise the full Load path
// without a real compiled binary on disk.
func buildELF64LE(sections []fixtureSection) []byte {
	const ehdrSize = 64
	const phdrSize = 56
	const shdrSize = 64

	all := append([]fixtureSection{{name: "", typ: elf.SectionTypeNull}}, sections...)

	// Build .shstrtab payload and each section's name offset.
	shstrtab := []byte{0}
	nameOffsets := make([]uint32, len(all))
	for i, s := range all {
		if i == 0 {
			continue
		}
		nameOffsets[i] = uint32(len(shstrtab))
		shstrtab = append(shstrtab, []byte(s.name)...)
		shstrtab = append(shstrtab, 0)
	}
	shstrtabIndex := len(all)
	all = append(all, fixtureSection{typ: elf.SectionTypeStringTable, data: shstrtab})
	nameOffsets = append(nameOffsets, 0)

	buf := make([]byte, ehdrSize+phdrSize)

	offsets := make([]uint64, len(all))
	sizes := make([]uint64, len(all))
	for i, s := range all {
		if i == 0 {
			continue
		}
		offsets[i] = uint64(len(buf))
		buf = append(buf, s.data...)
		sizes[i] = uint64(len(s.data))
	}

	shoff := uint64(len(buf))
	for i, s := range all {
		var hdr [shdrSize]byte
		binary.LittleEndian.PutUint32(hdr[0:4], nameOffsets[i])
		binary.LittleEndian.PutUint32(hdr[4:8], uint32(s.typ))
		binary.LittleEndian.PutUint64(hdr[8:16], uint64(s.flags))
		binary.LittleEndian.PutUint64(hdr[16:24], 0) // sh_addr
		binary.LittleEndian.PutUint64(hdr[24:32], offsets[i])
		binary.LittleEndian.PutUint64(hdr[32:40], sizes[i])
		binary.LittleEndian.PutUint32(hdr[40:44], s.link)
		binary.LittleEndian.PutUint32(hdr[44:48], s.info)
		binary.LittleEndian.PutUint64(hdr[48:56], 1) // sh_addralign
		binary.LittleEndian.PutUint64(hdr[56:64], s.entsize)
		buf = append(buf, hdr[:]...)
	}

	// e_ident
	copy(buf[0:4], elf.IdentifierMagic)
	buf[4] = byte(elf.Class64)
	buf[5] = byte(elf.DataEncodingTwosComplementLittleEndian)
	buf[6] = 1 // EI_VERSION

	// ehdr, starting at byte 16
	binary.LittleEndian.PutUint16(buf[16:18], uint16(elf.FileTypeExecutable))
	binary.LittleEndian.PutUint16(buf[18:20], uint16(elf.MachineArchitectureX86_64))
	binary.LittleEndian.PutUint32(buf[20:24], 1) // e_version
	binary.LittleEndian.PutUint64(buf[24:32], 0x401000)
	binary.LittleEndian.PutUint64(buf[32:40], ehdrSize)   // e_phoff
	binary.LittleEndian.PutUint64(buf[40:48], shoff)      // e_shoff
	binary.LittleEndian.PutUint32(buf[48:52], 0)          // e_flags
	binary.LittleEndian.PutUint16(buf[52:54], ehdrSize)   // e_ehsize
	binary.LittleEndian.PutUint16(buf[54:56], phdrSize)   // e_phentsize
	binary.LittleEndian.PutUint16(buf[56:58], 1)          // e_phnum
	binary.LittleEndian.PutUint16(buf[58:60], shdrSize)   // e_shentsize
	binary.LittleEndian.PutUint16(buf[60:62], uint16(len(all)))
	binary.LittleEndian.PutUint16(buf[62:64], uint16(shstrtabIndex))

	// phdr, one PT_LOAD entry starting at byte 64
	binary.LittleEndian.PutUint32(buf[64:68], uint32(elf.ProgramLoadable))
	binary.LittleEndian.PutUint32(buf[68:72], uint32(elf.ProgramFlagReadableBit|elf.ProgramFlagExecutableBit))
	binary.LittleEndian.PutUint64(buf[72:80], 0)
	binary.LittleEndian.PutUint64(buf[80:88], 0x400000)
	binary.LittleEndian.PutUint64(buf[88:96], 0x400000)
	binary.LittleEndian.PutUint64(buf[96:104], uint64(len(buf)))
	binary.LittleEndian.PutUint64(buf[104:112], uint64(len(buf)))
	binary.LittleEndian.PutUint64(buf[112:120], 0x1000)

	return buf
}
