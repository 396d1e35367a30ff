package elf_test

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"

	"github.com/serge1/elfio-go/elf"
)

type ModInfoSuite struct{}

func TestModInfo(t *testing.T) {
	suite.RunTests(t, &ModInfoSuite{})
}

func (ModInfoSuite) TestGetAndDuplicateKeyLastWins(t *testing.T) {
	payload := []byte(
		"license=GPL\x00" +
			"description=Platform-independent bitbanging I2C driver\x00" +
			"depends=\x00" +
			"depends=i2c-core\x00")

	content := buildELF64LE([]fixtureSection{
		{name: ".modinfo", typ: elf.SectionTypeProgramDefinedInfo, data: payload},
	})

	file, err := elf.ParseBytes(content)
	expect.Nil(t, err)

	section, ok := file.GetSectionByName(".modinfo")
	expect.True(t, ok)

	mi := elf.NewModInfo(section)
	expect.Equal(t, 3, mi.Count())

	license, ok := mi.Get("license")
	expect.True(t, ok)
	expect.Equal(t, "GPL", license)

	description, ok := mi.Get("description")
	expect.True(t, ok)
	expect.Equal(t, "Platform-independent bitbanging I2C driver", description)

	depends, ok := mi.Get("depends")
	expect.True(t, ok)
	expect.Equal(t, "i2c-core", depends)

	_, ok = mi.Get("missing")
	expect.False(t, ok)

	expect.Equal(t, []string{"license", "description", "depends"}, mi.Keys())
}
