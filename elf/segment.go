package elf

// Segment is the decoded, host-byte-order view of one program header
// record (§3 "Segment record"). Only metadata is loaded at table-load time;
// re-reading the segment's file image, if needed, is an external
// collaborator's concern (§4.5, §5).
type Segment = ProgramHeaderEntry

// decodeSegment32 decodes one 32-bit on-disk segment record (32 bytes).
// Field order on disk differs from the 64-bit record: p_type, p_offset,
// p_vaddr, p_paddr, p_filesz, p_memsz, p_flags, p_align — flags moves to
// just before align instead of right after type (§3, confirmed bit-exactly
// against original_source/src/segment.rs's Load implementation).
func decodeSegment32(d decoder) (Segment, error) {
	var seg Segment
	var err error

	typ, err := d.readWord()
	if err != nil {
		return seg, err
	}
	seg.Type = ProgramType(typ)

	if seg.Offset, err = d.readAddrOrOff(Class32); err != nil {
		return seg, err
	}
	if seg.VirtualAddress, err = d.readAddrOrOff(Class32); err != nil {
		return seg, err
	}
	if seg.PhysicalAddress, err = d.readAddrOrOff(Class32); err != nil {
		return seg, err
	}
	filesz, err := d.readWord()
	if err != nil {
		return seg, err
	}
	seg.FileSize = Xword(filesz)
	memsz, err := d.readWord()
	if err != nil {
		return seg, err
	}
	seg.MemorySize = Xword(memsz)

	flags, err := d.readWord()
	if err != nil {
		return seg, err
	}
	seg.Flags = ProgramFlags(flags)

	align, err := d.readWord()
	if err != nil {
		return seg, err
	}
	seg.Alignment = Xword(align)

	return seg, nil
}

// decodeSegment64 decodes one 64-bit on-disk segment record (56 bytes).
// Field order: p_type, p_flags, p_offset, p_vaddr, p_paddr, p_filesz,
// p_memsz, p_align.
func decodeSegment64(d decoder) (Segment, error) {
	var seg Segment
	var err error

	typ, err := d.readWord()
	if err != nil {
		return seg, err
	}
	seg.Type = ProgramType(typ)

	flags, err := d.readWord()
	if err != nil {
		return seg, err
	}
	seg.Flags = ProgramFlags(flags)

	if seg.Offset, err = d.readAddrOrOff(Class64); err != nil {
		return seg, err
	}
	if seg.VirtualAddress, err = d.readAddrOrOff(Class64); err != nil {
		return seg, err
	}
	if seg.PhysicalAddress, err = d.readAddrOrOff(Class64); err != nil {
		return seg, err
	}
	if seg.FileSize, err = d.readXword(); err != nil {
		return seg, err
	}
	if seg.MemorySize, err = d.readXword(); err != nil {
		return seg, err
	}
	if seg.Alignment, err = d.readXword(); err != nil {
		return seg, err
	}

	return seg, nil
}
