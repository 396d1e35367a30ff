package elf

// RelocationEntry is a single decoded relocation entry (§4.8). Addend is nil
// for SHT_REL sections, which carry no explicit addend field.
type RelocationEntry struct {
	Offset Addr
	Symbol Word
	Type   Word
	Addend *Sxword
}

// RelocationTable is an on-demand accessor over a relocation section's
// payload (§4.8). It branches on both the section's type (REL vs RELA)
// and the file's class: the class decides how symbol and type are packed
// into r_info, and class and type together decide the entry width.
type RelocationTable struct {
	section *Section
	rela    bool
	class   Class
	conv    Converter
}

// NewRelocationTable builds a RelocationTable accessor over section.
// SHT_RELA (explicit addend) framing is selected when
// section.Type == SectionTypeRelocationWithAddends; any other type is
// decoded as SHT_REL.
func NewRelocationTable(section *Section, class Class, conv Converter) *RelocationTable {
	return &RelocationTable{
		section: section,
		rela:    section.Type == SectionTypeRelocationWithAddends,
		class:   class,
		conv:    conv,
	}
}

func (t *RelocationTable) entrySize() int {
	switch {
	case t.class == Class64 && t.rela:
		return 24
	case t.class == Class64 && !t.rela:
		return 16
	case t.class != Class64 && t.rela:
		return 12
	default:
		return 8
	}
}

// Count returns the number of decodable entries in the table.
func (t *RelocationTable) Count() int {
	if t == nil || t.section == nil {
		return 0
	}
	sz := t.entrySize()
	if sz == 0 {
		return 0
	}
	return len(t.section.Data) / sz
}

// Get decodes the i'th relocation entry. ok is false when i is out of
// range.
func (t *RelocationTable) Get(i int) (*RelocationEntry, bool) {
	if t == nil || t.section == nil || i < 0 || i >= t.Count() {
		return nil, false
	}

	data := t.section.Data
	off := i * t.entrySize()

	var rel RelocationEntry
	var info Xword

	if t.class == Class64 {
		rel.Offset = Addr(sliceXword(data, off, t.conv))
		info = sliceXword(data, off+8, t.conv)
		rel.Symbol = Word(info >> 32)
		rel.Type = Word(info & 0xffffffff)
		if t.rela {
			addend := sliceSxword(data, off+16, t.conv)
			rel.Addend = &addend
		}
	} else {
		rel.Offset = Addr(sliceWord(data, off, t.conv))
		info = Xword(sliceWord(data, off+4, t.conv))
		rel.Symbol = Word(info >> 8)
		rel.Type = Word(info & 0xff)
		if t.rela {
			addend := Sxword(sliceSword(data, off+8, t.conv))
			rel.Addend = &addend
		}
	}

	return &rel, true
}
