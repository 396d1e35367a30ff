package elf_test

import (
	"encoding/binary"
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"

	"github.com/serge1/elfio-go/elf"
)

type InitFiniArraySuite struct{}

func TestInitFiniArray(t *testing.T) {
	suite.RunTests(t, &InitFiniArraySuite{})
}

func (InitFiniArraySuite) TestGet(t *testing.T) {
	var data [16]byte
	binary.LittleEndian.PutUint64(data[0:8], 0xffffffffffffffff)
	binary.LittleEndian.PutUint64(data[8:16], 0)

	content := buildELF64LE([]fixtureSection{
		{name: ".init_array", typ: elf.SectionTypeInitArray, data: data[:]},
	})

	file, err := elf.ParseBytes(content)
	expect.Nil(t, err)

	section, ok := file.GetSectionByName(".init_array")
	expect.True(t, ok)

	arr := elf.NewInitFiniArray(section, file.Class(), file.Converter())
	expect.Equal(t, 2, arr.Count())

	first, ok := arr.Get(0)
	expect.True(t, ok)
	expect.Equal(t, elf.Addr(0xffffffffffffffff), first.Value)

	second, ok := arr.Get(1)
	expect.True(t, ok)
	expect.Equal(t, elf.Addr(0), second.Value)

	_, ok = arr.Get(2)
	expect.False(t, ok)
}
