package elf

import "github.com/ianlancetaylor/demangle"

// Symbol is a single decoded symbol table entry, resolved against its
// names table (§4.7). DemangledName is filled in only when the raw name
// parses as an Itanium C++ or Rust mangled name.
type Symbol struct {
	SymbolEntry

	Name          string
	DemangledName string
}

// PrettyName returns the demangled name when available, falling back to
// the raw symbol name otherwise.
func (s *Symbol) PrettyName() string {
	if s.DemangledName != "" {
		return s.DemangledName
	}
	return s.Name
}

// AddressRange reports the symbol's [start, end) byte range in its
// defining image, or ok=false for symbols that don't denote an address
// range (undefined, unnamed, or thread-local).
func (s *Symbol) AddressRange() (start, end Addr, ok bool) {
	if s.Value == 0 || s.NameIndex == 0 || s.Type() == SymbolTypeTLS {
		return 0, 0, false
	}
	return s.Value, s.Value + Addr(s.Size), true
}

// SymbolTable is an on-demand accessor over a symbol table section's
// payload (§4.7). Entries are decoded lazily per Get call rather than all
// at once, since a table may hold thousands of rarely-inspected entries.
type SymbolTable struct {
	section *Section
	names   *StringTable
	class   Class
	conv    Converter
}

// NewSymbolTable builds a SymbolTable accessor over section, resolving
// names out of the linked string table (sh_link, §4.7 "Binding").
func NewSymbolTable(section *Section, names *StringTable, class Class, conv Converter) *SymbolTable {
	return &SymbolTable{section: section, names: names, class: class, conv: conv}
}

// entrySize is 16 bytes for 32-bit symbols, 24 bytes for 64-bit.
func (t *SymbolTable) entrySize() int {
	if t.class == Class64 {
		return 24
	}
	return 16
}

// Count returns the number of decodable entries in the table, or 0 when
// the section's entry size is 0.
func (t *SymbolTable) Count() int {
	if t == nil || t.section == nil || t.section.EntrySize == 0 {
		return 0
	}
	return len(t.section.Data) / t.entrySize()
}

// Get decodes the i'th symbol, resolving its name and, where possible,
// its demangled name. ok is false when i is out of range.
func (t *SymbolTable) Get(i int) (*Symbol, bool) {
	if t == nil || t.section == nil || i < 0 || i >= t.Count() {
		return nil, false
	}

	data := t.section.Data
	sz := t.entrySize()
	off := i * sz

	var sym Symbol
	if t.class == Class64 {
		// Elf64_Sym: st_name, st_info, st_other, st_shndx, st_value, st_size.
		sym.NameIndex = sliceWord(data, off, t.conv)
		sym.Info = data[off+4]
		sym.Other = SymbolVisibility(data[off+5])
		sym.SectionIndex = SectionIndex(sliceHalf(data, off+6, t.conv))
		sym.Value = Addr(sliceXword(data, off+8, t.conv))
		sym.Size = sliceXword(data, off+16, t.conv)
	} else {
		// Elf32_Sym: st_name, st_value, st_size, st_info, st_other, st_shndx.
		sym.NameIndex = sliceWord(data, off, t.conv)
		sym.Value = Addr(sliceWord(data, off+4, t.conv))
		sym.Size = Xword(sliceWord(data, off+8, t.conv))
		sym.Info = data[off+12]
		sym.Other = SymbolVisibility(data[off+13])
		sym.SectionIndex = SectionIndex(sliceHalf(data, off+14, t.conv))
	}

	sym.Name = t.names.Get(sym.NameIndex)
	if demangled, err := demangle.ToString(sym.Name); err == nil {
		sym.DemangledName = demangled
	}

	return &sym, true
}

// SymbolsByName returns every symbol whose raw or demangled name matches
// name.
func (t *SymbolTable) SymbolsByName(name string) []*Symbol {
	var result []*Symbol
	for i := 0; i < t.Count(); i++ {
		sym, ok := t.Get(i)
		if ok && (sym.Name == name || sym.DemangledName == name) {
			result = append(result, sym)
		}
	}
	return result
}
