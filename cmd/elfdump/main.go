// Command elfdump prints the structural contents of an ELF file: header,
// sections (with accessor-specific detail for string, symbol, relocation,
// dynamic, note, array, and modinfo sections), and program headers.
package main

import (
	"fmt"
	"os"

	"github.com/serge1/elfio-go/elf"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("USAGE: elfdump <file>")
		os.Exit(1)
	}

	content, err := os.ReadFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	file, err := elf.ParseBytes(content)
	if err != nil {
		panic(err)
	}

	fmt.Printf(
		"Class: %v  Encoding: %v  Type: %v  Machine: %v  Entry: 0x%x\n",
		file.Class(), file.Encoding(), file.Type(), file.Machine(), file.Entry())

	fmt.Println("Sections:", len(file.Sections()))
	for _, section := range file.Sections() {
		fmt.Printf("  [%d] %s: %v\n", section.Index(), section.Name, section.Type)
		printSectionDetail(file, section)
	}

	fmt.Println("Segments:", len(file.Segments()))
	for i, seg := range file.Segments() {
		fmt.Printf("  [%d] %v\n", i, seg)
	}
}

func printSectionDetail(file *elf.File, section *elf.Section) {
	switch section.Type {
	case elf.SectionTypeStringTable:
		strtab := elf.NewStringTable(section)
		fmt.Printf("    string table, %d bytes\n", strtab.Size())

	case elf.SectionTypeSymbolTable, elf.SectionTypeDynamicSymbolTable:
		names := linkedStringTable(file, section)
		symtab := elf.NewSymbolTable(section, names, file.Class(), file.Converter())
		for i := 0; i < symtab.Count(); i++ {
			sym, ok := symtab.Get(i)
			if !ok {
				continue
			}
			fmt.Printf(
				"    %d: %x %d %s %s %s %d %s\n",
				i, sym.Value, sym.Size, sym.Type(), sym.Binding(),
				sym.Other, sym.SectionIndex, sym.PrettyName())
		}

	case elf.SectionTypeRelocationWithAddends, elf.SectionTypeRelocationNoAddends:
		reloc := elf.NewRelocationTable(section, file.Class(), file.Converter())
		for i := 0; i < reloc.Count(); i++ {
			r, ok := reloc.Get(i)
			if !ok {
				continue
			}
			fmt.Printf("    %d: offset=0x%x symbol=%d type=%d\n", i, r.Offset, r.Symbol, r.Type)
		}

	case elf.SectionTypeDynamic:
		names := linkedStringTable(file, section)
		dyn := elf.NewDynamicTable(section, names, file.Class(), file.Converter())
		for i := 0; i < dyn.Count(); i++ {
			entry, ok := dyn.Get(i)
			if !ok {
				continue
			}
			fmt.Printf("    %d: %v = 0x%x\n", i, entry.Tag, entry.Value)
		}

	case elf.SectionTypeNote:
		notes := elf.NewNoteTable(section, file.Converter())
		for i := 0; i < notes.Count(); i++ {
			note, ok := notes.Get(i)
			if !ok {
				continue
			}
			fmt.Printf(
				"    %d: name=%s type=%d description_len=%d\n",
				i, note.Name, note.Type, len(note.Description))
		}

	case elf.SectionTypeInitArray, elf.SectionTypeFiniArray:
		arr := elf.NewInitFiniArray(section, file.Class(), file.Converter())
		for i := 0; i < arr.Count(); i++ {
			entry, ok := arr.Get(i)
			if !ok {
				continue
			}
			fmt.Printf("    %d: 0x%x\n", i, entry.Value)
		}

	case elf.SectionTypeProgramDefinedInfo:
		if section.Name == ".modinfo" {
			mi := elf.NewModInfo(section)
			for _, key := range mi.Keys() {
				value, _ := mi.Get(key)
				fmt.Printf("    %s = %s\n", key, value)
			}
		}
	}
}

func linkedStringTable(file *elf.File, section *elf.Section) *elf.StringTable {
	linked, ok := file.GetSectionByIndex(int(section.Link))
	if !ok {
		return elf.NewStringTable(&elf.Section{})
	}
	return elf.NewStringTable(linked)
}
