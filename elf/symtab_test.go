package elf_test

import (
	"encoding/binary"
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"

	"github.com/serge1/elfio-go/elf"
)

type SymbolTableSuite struct{}

func TestSymbolTable(t *testing.T) {
	suite.RunTests(t, &SymbolTableSuite{})
}

// symbol64 encodes one Elf64_Sym record: st_name, st_info, st_other,
// st_shndx, st_value, st_size.
func symbol64(name uint32, info, other byte, shndx uint16, value, size uint64) []byte {
	var buf [24]byte
	binary.LittleEndian.PutUint32(buf[0:4], name)
	buf[4] = info
	buf[5] = other
	binary.LittleEndian.PutUint16(buf[6:8], shndx)
	binary.LittleEndian.PutUint64(buf[8:16], value)
	binary.LittleEndian.PutUint64(buf[16:24], size)
	return buf[:]
}

func (SymbolTableSuite) TestGetAndLookup(t *testing.T) {
	strtab := []byte("\x00main\x00_Z3fooi\x00")

	info := byte(elf.SymbolTypeFunction) | byte(elf.SymbolBindingGlobal)<<4
	symbols := append(
		symbol64(0, 0, 0, 0, 0, 0), // STN_UNDEF
		symbol64(1, info, byte(elf.SymbolVisibilityDefault), 1, 0x401000, 16)...)
	symbols = append(symbols, symbol64(6, info, byte(elf.SymbolVisibilityDefault), 1, 0x401010, 32)...)

	content := buildELF64LE([]fixtureSection{
		{name: ".strtab", typ: elf.SectionTypeStringTable, data: strtab},
		{
			name: ".symtab", typ: elf.SectionTypeSymbolTable, link: 1,
			entsize: 24, data: symbols,
		},
	})

	file, err := elf.ParseBytes(content)
	expect.Nil(t, err)

	strSection, ok := file.GetSectionByName(".strtab")
	expect.True(t, ok)
	symSection, ok := file.GetSectionByName(".symtab")
	expect.True(t, ok)

	names := elf.NewStringTable(strSection)
	symtab := elf.NewSymbolTable(symSection, names, file.Class(), file.Converter())

	expect.Equal(t, 3, symtab.Count())

	sym, ok := symtab.Get(1)
	expect.True(t, ok)
	expect.Equal(t, "main", sym.Name)
	expect.Equal(t, "main", sym.PrettyName())
	expect.Equal(t, elf.Addr(0x401000), sym.Value)
	expect.Equal(t, elf.SymbolTypeFunction, sym.Type())
	expect.Equal(t, elf.SymbolBindingGlobal, sym.Binding())

	mangled, ok := symtab.Get(2)
	expect.True(t, ok)
	expect.Equal(t, "_Z3fooi", mangled.Name)
	expect.Equal(t, "foo(int)", mangled.PrettyName())

	byName := symtab.SymbolsByName("main")
	expect.Equal(t, 1, len(byName))
	expect.Equal(t, "main", byName[0].Name)

	_, ok = symtab.Get(99)
	expect.False(t, ok)
}
