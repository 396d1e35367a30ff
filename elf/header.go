package elf

import "fmt"

// parseIdentifier decodes the 16-byte e_ident block and validates it per
// §4.4 steps 1-3. Identifier bytes are never byte-swapped: they have no
// endianness of their own, and encoding is precisely what tells us the
// file's byte order.
func parseIdentifier(src Source) (Identifier, error) {
	var id Identifier

	raw := make([]byte, ElfIdentifierSize)
	if err := src.ReadExact(raw); err != nil {
		return id, fmt.Errorf("failed to read identifier: %w", err)
	}

	copy(id.Magic[:], raw[0:4])
	id.Class = Class(raw[4])
	id.DataEncoding = DataEncoding(raw[5])
	id.IdentifierVersion = raw[6]
	id.OperatingSystemABI = OperatingSystemABI(raw[7])
	id.ABIVersion = raw[8]
	copy(id.Padding[:], raw[9:16])

	if id.Magic != [4]byte{IdentifierMagic[0], IdentifierMagic[1], IdentifierMagic[2], IdentifierMagic[3]} {
		return id, ErrMalformedMagic
	}

	switch id.Class {
	case Class32, Class64:
		// ok
	default:
		return id, fmt.Errorf("%w: %d", ErrUnsupportedClass, byte(id.Class))
	}

	switch id.DataEncoding {
	case DataEncodingTwosComplementLittleEndian, DataEncodingTwosComplementBigEndian:
		// ok
	default:
		return id, fmt.Errorf("%w: %d", ErrUnsupportedEncoding, byte(id.DataEncoding))
	}

	return id, nil
}

// parseHeader decodes the class-dependent header record that follows the
// identifier, in its on-disk field order (§3 "Header record", §4.4 step 5).
// The caller has already seeked back to offset 0.
func parseHeader(src Source, class Class, conv Converter) (Header, error) {
	var hdr Header

	d := decoder{src: src, conv: conv}

	// Re-read and discard the 16 identifier bytes: the header decoder reads
	// the record starting at offset 0, exactly as the abstract spec
	// prescribes, rather than assuming the caller seeked past them.
	ident := make([]byte, ElfIdentifierSize)
	if err := src.ReadExact(ident); err != nil {
		return hdr, fmt.Errorf("failed to re-read identifier: %w", err)
	}

	typ, err := d.readHalf()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_type: %w", err)
	}
	hdr.Type = FileType(typ)

	machine, err := d.readHalf()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_machine: %w", err)
	}
	hdr.Machine = MachineArchitecture(machine)

	hdr.Version, err = d.readWord()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_version: %w", err)
	}

	hdr.Entry, err = d.readAddrOrOff(class)
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_entry: %w", err)
	}

	hdr.ProgramHeaderOffset, err = d.readAddrOrOff(class)
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_phoff: %w", err)
	}

	hdr.SectionHeaderOffset, err = d.readAddrOrOff(class)
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_shoff: %w", err)
	}

	hdr.Flags, err = d.readWord()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_flags: %w", err)
	}

	hdr.HeaderSize, err = d.readHalf()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_ehsize: %w", err)
	}

	hdr.ProgramHeaderEntrySize, err = d.readHalf()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_phentsize: %w", err)
	}

	hdr.ProgramHeaderCount, err = d.readHalf()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_phnum: %w", err)
	}

	hdr.SectionHeaderEntrySize, err = d.readHalf()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_shentsize: %w", err)
	}

	hdr.SectionHeaderCount, err = d.readHalf()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_shnum: %w", err)
	}

	shstrndx, err := d.readHalf()
	if err != nil {
		return hdr, fmt.Errorf("failed to read e_shstrndx: %w", err)
	}
	hdr.SectionStringTableIndex = SectionIndex(shstrndx)

	return hdr, nil
}

// --- Header getters/setters on File (§6 "Public API surface"). Getters and
// setters are defined only once the file is Loaded; on Empty/Failed they
// return/ignore the zero value rather than panic (§4.13 Open Question,
// resolved in DESIGN.md).

func (f *File) Class() Class {
	if f.state != stateLoaded {
		return ClassNone
	}
	return f.ident.Class
}

func (f *File) Encoding() DataEncoding {
	if f.state != stateLoaded {
		return DataEncodingNone
	}
	return f.ident.DataEncoding
}

func (f *File) ElfVersion() byte {
	if f.state != stateLoaded {
		return 0
	}
	return f.ident.IdentifierVersion
}

func (f *File) OSABI() OperatingSystemABI {
	if f.state != stateLoaded {
		return OperatingSystemABIUnixSystemV
	}
	return f.ident.OperatingSystemABI
}

func (f *File) SetOSABI(v OperatingSystemABI) {
	if f.state == stateLoaded {
		f.ident.OperatingSystemABI = v
	}
}

func (f *File) ABIVersion() byte {
	if f.state != stateLoaded {
		return 0
	}
	return f.ident.ABIVersion
}

func (f *File) SetABIVersion(v byte) {
	if f.state == stateLoaded {
		f.ident.ABIVersion = v
	}
}

func (f *File) HeaderSize() Half {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.HeaderSize
}

func (f *File) SectionEntrySize() Half {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.SectionHeaderEntrySize
}

func (f *File) SegmentEntrySize() Half {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.ProgramHeaderEntrySize
}

func (f *File) Version() Word {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.Version
}

func (f *File) SetVersion(v Word) {
	if f.state == stateLoaded {
		f.header.Version = v
	}
}

func (f *File) Type() FileType {
	if f.state != stateLoaded {
		return FileTypeNone
	}
	return f.header.Type
}

func (f *File) SetType(t FileType) {
	if f.state == stateLoaded {
		f.header.Type = t
	}
}

func (f *File) Machine() MachineArchitecture {
	if f.state != stateLoaded {
		return MachineArchitectureNone
	}
	return f.header.Machine
}

func (f *File) SetMachine(m MachineArchitecture) {
	if f.state == stateLoaded {
		f.header.Machine = m
	}
}

func (f *File) Flags() Word {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.Flags
}

func (f *File) SetFlags(flags Word) {
	if f.state == stateLoaded {
		f.header.Flags = flags
	}
}

func (f *File) Entry() Addr {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.Entry
}

func (f *File) SetEntry(addr Addr) {
	if f.state == stateLoaded {
		f.header.Entry = addr
	}
}

func (f *File) SectionsCount() Half {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.SectionHeaderCount
}

func (f *File) SetSectionsCount(n Half) {
	if f.state == stateLoaded {
		f.header.SectionHeaderCount = n
	}
}

func (f *File) SectionsOffset() Off {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.SectionHeaderOffset
}

func (f *File) SetSectionsOffset(off Off) {
	if f.state == stateLoaded {
		f.header.SectionHeaderOffset = off
	}
}

func (f *File) SegmentsCount() Half {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.ProgramHeaderCount
}

func (f *File) SetSegmentsCount(n Half) {
	if f.state == stateLoaded {
		f.header.ProgramHeaderCount = n
	}
}

func (f *File) SegmentsOffset() Off {
	if f.state != stateLoaded {
		return 0
	}
	return f.header.ProgramHeaderOffset
}

func (f *File) SetSegmentsOffset(off Off) {
	if f.state == stateLoaded {
		f.header.ProgramHeaderOffset = off
	}
}

func (f *File) SectionNameStrIndex() SectionIndex {
	if f.state != stateLoaded {
		return SectionIndexUndefined
	}
	return f.header.SectionStringTableIndex
}

func (f *File) SetSectionNameStrIndex(idx SectionIndex) {
	if f.state == stateLoaded {
		f.header.SectionStringTableIndex = idx
	}
}

// Converter exposes the endianness converter so accessors outside this
// package (if any) can decode per-entry fields consistently (§6).
func (f *File) Converter() Converter {
	return f.conv
}
