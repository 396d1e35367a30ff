package elf_test

import (
	"encoding/binary"
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"

	"github.com/serge1/elfio-go/elf"
)

type DynamicTableSuite struct{}

func TestDynamicTable(t *testing.T) {
	suite.RunTests(t, &DynamicTableSuite{})
}

// dyn64 encodes one Elf64_Dyn record: d_tag, d_val.
func dyn64(tag elf.DynamicTag, value uint64) []byte {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(tag))
	binary.LittleEndian.PutUint64(buf[8:16], value)
	return buf[:]
}

func (DynamicTableSuite) TestCountStopsAtNullAndResolvesNeeded(t *testing.T) {
	dynstr := []byte("\x00libc.so.6\x00libm.so.6\x00")

	entries := dyn64(elf.DynamicTagNeeded, 1)
	entries = append(entries, dyn64(elf.DynamicTagNeeded, 11)...)
	entries = append(entries, dyn64(elf.DynamicTagStringTable, 0)...)
	entries = append(entries, dyn64(elf.DynamicTagNull, 0)...)
	// Trailing garbage past DT_NULL must not be counted.
	entries = append(entries, dyn64(elf.DynamicTagNeeded, 1)...)

	content := buildELF64LE([]fixtureSection{
		{name: ".dynstr", typ: elf.SectionTypeStringTable, data: dynstr},
		{
			name: ".dynamic", typ: elf.SectionTypeDynamic, link: 1,
			entsize: 16, data: entries,
		},
	})

	file, err := elf.ParseBytes(content)
	expect.Nil(t, err)

	strSection, ok := file.GetSectionByName(".dynstr")
	expect.True(t, ok)
	dynSection, ok := file.GetSectionByName(".dynamic")
	expect.True(t, ok)

	names := elf.NewStringTable(strSection)
	dyn := elf.NewDynamicTable(dynSection, names, file.Class(), file.Converter())

	expect.Equal(t, 4, dyn.Count())

	entry, ok := dyn.Get(3)
	expect.True(t, ok)
	expect.Equal(t, elf.DynamicTagNull, entry.Tag)

	needed := dyn.Needed()
	expect.Equal(t, 2, len(needed))
	expect.Equal(t, "libc.so.6", needed[0])
	expect.Equal(t, "libm.so.6", needed[1])
}
