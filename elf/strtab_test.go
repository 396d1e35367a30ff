package elf_test

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"

	"github.com/serge1/elfio-go/elf"
)

type StringTableSuite struct{}

func TestStringTable(t *testing.T) {
	suite.RunTests(t, &StringTableSuite{})
}

func (StringTableSuite) TestGet(t *testing.T) {
	content := buildELF64LE([]fixtureSection{
		{
			name: ".strtab", typ: elf.SectionTypeStringTable,
			data: []byte("\x00Milkshake\x00shake\x00no\x00"),
		},
	})

	file, err := elf.ParseBytes(content)
	expect.Nil(t, err)

	section, ok := file.GetSectionByName(".strtab")
	expect.True(t, ok)

	table := elf.NewStringTable(section)
	expect.Equal(t, "Milkshake", table.Get(1))
	expect.Equal(t, "shake", table.Get(5))
	expect.Equal(t, "", table.Get(10))
	expect.Equal(t, "shake", table.Get(11))
	expect.Equal(t, "no", table.Get(17))
	expect.Equal(t, "o", table.Get(18))
	expect.Equal(t, "", table.Get(19))
	expect.Equal(t, "", table.Get(20))
}
