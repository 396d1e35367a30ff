package elf

// Section is the decoded, host-byte-order view of one section header entry
// together with its payload bytes (§3 "Section record"). Section values are
// owned by the File that loaded them; accessors built from a Section borrow
// its Data and must not outlive the owning File (§3 "Lifecycle",
// §5 "Shared resources").
type Section struct {
	SectionHeaderEntry

	Name string
	Data []byte

	index Half
	file  *File
}

// Index returns the section's position in the section header table.
func (s *Section) Index() Half {
	return s.index
}

// decodeSectionHeaderEntry32 decodes one 32-bit on-disk section header
// record (40 bytes) at the source's current position.
func decodeSectionHeaderEntry32(d decoder) (SectionHeaderEntry, error) {
	var e SectionHeaderEntry
	var err error

	if e.NameIndex, err = d.readWord(); err != nil {
		return e, err
	}
	typ, err := d.readWord()
	if err != nil {
		return e, err
	}
	e.Type = SectionType(typ)
	flags, err := d.readWord()
	if err != nil {
		return e, err
	}
	e.Flags = SectionFlags(flags)
	if e.Address, err = d.readAddrOrOff(Class32); err != nil {
		return e, err
	}
	if e.Offset, err = d.readAddrOrOff(Class32); err != nil {
		return e, err
	}
	size, err := d.readWord()
	if err != nil {
		return e, err
	}
	e.Size = Xword(size)
	if e.Link, err = d.readWord(); err != nil {
		return e, err
	}
	if e.Info, err = d.readWord(); err != nil {
		return e, err
	}
	align, err := d.readWord()
	if err != nil {
		return e, err
	}
	e.AddressAlignment = Xword(align)
	entsize, err := d.readWord()
	if err != nil {
		return e, err
	}
	e.EntrySize = Xword(entsize)
	return e, nil
}

// decodeSectionHeaderEntry64 decodes one 64-bit on-disk section header
// record (64 bytes) at the source's current position.
func decodeSectionHeaderEntry64(d decoder) (SectionHeaderEntry, error) {
	var e SectionHeaderEntry
	var err error

	if e.NameIndex, err = d.readWord(); err != nil {
		return e, err
	}
	typ, err := d.readWord()
	if err != nil {
		return e, err
	}
	e.Type = SectionType(typ)
	flags, err := d.readXword()
	if err != nil {
		return e, err
	}
	e.Flags = SectionFlags(flags)
	if e.Address, err = d.readAddrOrOff(Class64); err != nil {
		return e, err
	}
	if e.Offset, err = d.readAddrOrOff(Class64); err != nil {
		return e, err
	}
	if e.Size, err = d.readXword(); err != nil {
		return e, err
	}
	if e.Link, err = d.readWord(); err != nil {
		return e, err
	}
	if e.Info, err = d.readWord(); err != nil {
		return e, err
	}
	if e.AddressAlignment, err = d.readXword(); err != nil {
		return e, err
	}
	if e.EntrySize, err = d.readXword(); err != nil {
		return e, err
	}
	return e, nil
}
