// Package elf decodes ELF object files: executables, shared libraries,
// relocatable object files, core dumps, and kernel modules.
//
// Based on linux's man page, elf.h, golang's debug/elf package, and the
// elfio C++/Rust reference implementations.
package elf

import (
	"fmt"
)

var (
	// EI_MAG0 - EI_MAG3
	IdentifierMagic = []byte{
		0x7f, // ELFMAG0
		'E',  // ELFMAG1
		'L',  // ELFMAG2
		'F',  // ELFMAG3
	}
)

const (
	MaxNumProgramHeaderEntries = 0xffff // PN_XNUM
	MaxNumSectionHeaderEntries = 0xff00 // SHN_LORESERVE

	SectionStringTableIndexNotDefined = 0 // SHN_UNDEF

	IdentifierVersion = 1 // EI_CURRENT
	FormatVersion     = 1 // EV_CURRENT

	ElfIdentifierSize = 16

	Elf32HeaderSize             = 52
	Elf64HeaderSize             = 64
	Elf32SectionHeaderEntrySize = 40
	Elf64SectionHeaderEntrySize = 64
	Elf32ProgramHeaderEntrySize = 32
	Elf64ProgramHeaderEntrySize = 56
	Elf32SymbolEntrySize        = 16
	Elf64SymbolEntrySize        = 24
	Elf32DynamicEntrySize       = 8
	Elf64DynamicEntrySize       = 16
	Elf32RelEntrySize           = 8
	Elf32RelaEntrySize          = 12
	Elf64RelEntrySize           = 16
	Elf64RelaEntrySize          = 24

	// NOTE: Although Elf64_Nhdr is defined, real-world elf64 files continue to
	// encode notes using 4-byte aligned Elf32_Nhdr.
	NoteHeaderSize  = 12
	NoteWordSize    = 4
	ArrayEntrySize4 = 4
	ArrayEntrySize8 = 8
)

// EI_CLASS
type Class byte

const (
	ClassNone = Class(0) // ELFCLASSNONE
	Class32   = Class(1) // ELFCLASS32
	Class64   = Class(2) // ELFCLASS64
)

func (class Class) String() string {
	switch class {
	case ClassNone:
		return "ClassNone"
	case Class32:
		return "Class32"
	case Class64:
		return "Class64"
	default:
		return fmt.Sprintf("ClassUnknown(%d)", byte(class))
	}
}

// EI_DATA
type DataEncoding byte

const (
	DataEncodingNone                       = DataEncoding(0) // ELFDATANONE
	DataEncodingTwosComplementLittleEndian = DataEncoding(1) // ELFDATA2LSB
	DataEncodingTwosComplementBigEndian    = DataEncoding(2) // ELFDATA2MSB
)

func (encoding DataEncoding) String() string {
	switch encoding {
	case DataEncodingNone:
		return "DataEncodingNone"
	case DataEncodingTwosComplementLittleEndian:
		return "TwosComplementLittleEndian"
	case DataEncodingTwosComplementBigEndian:
		return "TwosComplementBigEndian"
	default:
		return fmt.Sprintf("DataEncodingUnknown(%d)", byte(encoding))
	}
}

// EI_OSABI
type OperatingSystemABI byte

const (
	OperatingSystemABIUnixSystemV = OperatingSystemABI(0) // ELFOSABI_NONE
	OperatingSystemABILinux       = OperatingSystemABI(3) // ELFOSABI_LINUX
)

func (osAbi OperatingSystemABI) String() string {
	switch osAbi {
	case OperatingSystemABIUnixSystemV:
		return "UnixSystemV"
	case OperatingSystemABILinux:
		return "Linux"
	default:
		return fmt.Sprintf("OperatingSystemABIUnknown(%d)", byte(osAbi))
	}
}

// e_type
type FileType uint16

const (
	FileTypeNone         = FileType(0) // ET_NONE
	FileTypeRelocatable  = FileType(1) // ET_REL
	FileTypeExecutable   = FileType(2) // ET_EXEC
	FileTypeSharedObject = FileType(3) // ET_DYN
	FileTypeCore         = FileType(4) // ET_CORE
)

func (ft FileType) String() string {
	switch ft {
	case FileTypeNone:
		return "FileTypeNone"
	case FileTypeRelocatable:
		return "Relocatable"
	case FileTypeExecutable:
		return "Executable"
	case FileTypeSharedObject:
		return "SharedObject"
	case FileTypeCore:
		return "Core"
	default:
		return fmt.Sprintf("FileTypeUnknown(%d)", uint16(ft))
	}
}

// e_machine
// NOTE: golang's debug/elf.Machine defines a more complete list of machine
// types. This repo recognizes only the machines exercised by the scenarios
// in SPEC_FULL.md; anything else decodes fine but stringifies generically.
type MachineArchitecture uint16

const (
	MachineArchitectureNone    = MachineArchitecture(0)  // EM_NONE
	MachineArchitecturePowerPC = MachineArchitecture(20) // EM_PPC
	MachineArchitecture386     = MachineArchitecture(3)  // EM_386
	MachineArchitecturePowerPC64 = MachineArchitecture(21) // EM_PPC64
	MachineArchitectureX86_64  = MachineArchitecture(62) // EM_X86_64
)

func (arch MachineArchitecture) String() string {
	switch arch {
	case MachineArchitectureNone:
		return "MachineArchitectureNone"
	case MachineArchitecture386:
		return "x86"
	case MachineArchitecturePowerPC:
		return "PowerPC"
	case MachineArchitecturePowerPC64:
		return "PowerPC64"
	case MachineArchitectureX86_64:
		return "x86-64"
	default:
		return fmt.Sprintf("MachineArchitectureUnknown(%d)", uint16(arch))
	}
}

type ProgramType uint32

const (
	ProgramNull            = ProgramType(0)          // PT_NULL
	ProgramLoadable        = ProgramType(1)          // PT_LOAD
	ProgramDynamicLinking  = ProgramType(2)          // PT_DYNAMIC
	ProgramInterpreterPath = ProgramType(3)          // PT_INTERP
	ProgramNote            = ProgramType(4)          // PT_NOTE
	ProgramHeaderInfo      = ProgramType(6)          // PT_PHDR
	ProgramTLS             = ProgramType(7)          // PT_TLS
	ProgramGNUStack        = ProgramType(0x6474e551) // PT_GNU_STACK
)

func (segType ProgramType) String() string {
	switch segType {
	case ProgramNull:
		return "ProgramNull"
	case ProgramLoadable:
		return "Loadable"
	case ProgramDynamicLinking:
		return "DynamicLinking"
	case ProgramInterpreterPath:
		return "InterpreterPath"
	case ProgramNote:
		return "Note"
	case ProgramHeaderInfo:
		return "HeaderInfo"
	case ProgramTLS:
		return "TLS"
	case ProgramGNUStack:
		return "GNUStack"
	default:
		return fmt.Sprintf("ProgramUnknown(%d)", uint32(segType))
	}
}

type ProgramFlags uint32

const (
	ProgramFlagExecutableBit = ProgramFlags(0x1) // PF_X
	ProgramFlagWritableBit   = ProgramFlags(0x2) // PF_W
	ProgramFlagReadableBit   = ProgramFlags(0x4) // PF_R
)

func (bits ProgramFlags) String() string {
	if bits > 7 {
		return fmt.Sprintf("%#x", uint32(bits))
	}

	rwx := []byte{'-', '-', '-'}
	if bits&ProgramFlagReadableBit != 0 {
		rwx[0] = 'r'
	}

	if bits&ProgramFlagWritableBit != 0 {
		rwx[1] = 'w'
	}

	if bits&ProgramFlagExecutableBit != 0 {
		rwx[2] = 'x'
	}

	return string(rwx)
}

type SectionType uint32

const (
	SectionTypeNull                  = SectionType(0)  // SHT_NULL
	SectionTypeProgramDefinedInfo    = SectionType(1)  // SHT_PROGBITS
	SectionTypeSymbolTable           = SectionType(2)  // SHT_SYMTAB
	SectionTypeStringTable           = SectionType(3)  // SHT_STRTAB
	SectionTypeRelocationWithAddends = SectionType(4)  // SHT_RELA
	SectionTypeSymbolHashTable       = SectionType(5)  // SHT_HASH
	SectionTypeDynamic               = SectionType(6)  // SHT_DYNAMIC
	SectionTypeNote                  = SectionType(7)  // SHT_NOTE
	SectionTypeNoSpace               = SectionType(8)  // SHT_NOBITS
	SectionTypeRelocationNoAddends   = SectionType(9)  // SHT_REL
	SectionTypeDynamicSymbolTable    = SectionType(11) // SHT_DYNSYM
	SectionTypeInitArray             = SectionType(14) // SHT_INIT_ARRAY
	SectionTypeFiniArray             = SectionType(15) // SHT_FINI_ARRAY
)

func (stype SectionType) String() string {
	switch stype {
	case SectionTypeNull:
		return "SectionTypeNull"
	case SectionTypeProgramDefinedInfo:
		return "ProgramDefinedInfo"
	case SectionTypeSymbolTable:
		return "SymbolTable"
	case SectionTypeStringTable:
		return "StringTable"
	case SectionTypeRelocationWithAddends:
		return "RelocationWithAddends"
	case SectionTypeSymbolHashTable:
		return "SymbolHashTable"
	case SectionTypeDynamic:
		return "Dynamic"
	case SectionTypeNote:
		return "Note"
	case SectionTypeNoSpace:
		return "NoSpace"
	case SectionTypeRelocationNoAddends:
		return "RelocationNoAddends"
	case SectionTypeDynamicSymbolTable:
		return "DynamicSymbolTable"
	case SectionTypeInitArray:
		return "InitArray"
	case SectionTypeFiniArray:
		return "FiniArray"
	default:
		return fmt.Sprintf("SectionTypeUnknown(%d)", uint32(stype))
	}
}

type SectionFlags uint64

const (
	SectionContainsWritableData = SectionFlags(0x1) // SHF_WRITE
	SectionOccupiesMemory       = SectionFlags(0x2) // SHF_ALLOC
	SectionContainsInstructions = SectionFlags(0x4) // SHF_EXECINSTR
)

func (flags SectionFlags) String() string {
	rwx := []byte{'-', '-', '-'}
	if flags&SectionContainsWritableData != 0 {
		rwx[0] = 'w'
	}
	if flags&SectionOccupiesMemory != 0 {
		rwx[1] = 'a'
	}
	if flags&SectionContainsInstructions != 0 {
		rwx[2] = 'x'
	}
	return string(rwx)
}

// The bottom 4 bits of st_info
type SymbolType byte

func SymbolInfoToType(info byte) SymbolType {
	return SymbolType(info & 0xf)
}

const (
	SymbolTypeNone     = SymbolType(0) // STT_NOTYPE
	SymbolTypeObject   = SymbolType(1) // STT_OBJECT
	SymbolTypeFunction = SymbolType(2) // STT_FUNC
	SymbolTypeSection  = SymbolType(3) // STT_SECTION
	SymbolTypeFile     = SymbolType(4) // STT_FILE
	SymbolTypeCommon   = SymbolType(5) // STT_COMMON
	SymbolTypeTLS      = SymbolType(6) // STT_TLS
)

func (st SymbolType) String() string {
	switch st {
	case SymbolTypeNone:
		return "NoType"
	case SymbolTypeObject:
		return "Object"
	case SymbolTypeFunction:
		return "Function"
	case SymbolTypeSection:
		return "Section"
	case SymbolTypeFile:
		return "SourceFile"
	case SymbolTypeCommon:
		return "Common"
	case SymbolTypeTLS:
		return "TLS"
	default:
		return fmt.Sprintf("SymbolTypeUnknown(%d)", byte(st))
	}
}

// The top 4 bits of st_info
type SymbolBinding byte

func SymbolInfoToBinding(info byte) SymbolBinding {
	return SymbolBinding(info >> 4)
}

const (
	SymbolBindingLocal  = SymbolBinding(0) // STB_LOCAL
	SymbolBindingGlobal = SymbolBinding(1) // STB_GLOBAL
	SymbolBindingWeak   = SymbolBinding(2) // STB_WEAK
)

func (sb SymbolBinding) String() string {
	switch sb {
	case SymbolBindingLocal:
		return "Local"
	case SymbolBindingGlobal:
		return "Global"
	case SymbolBindingWeak:
		return "Weak"
	default:
		return fmt.Sprintf("SymbolBindingUnknown(%d)", byte(sb))
	}
}

type SymbolVisibility byte

const (
	SymbolVisibilityDefault   = SymbolVisibility(0) // STV_DEFAULT
	SymbolVisibilityInternal  = SymbolVisibility(1) // STV_INTERNAL
	SymbolVisibilityHidden    = SymbolVisibility(2) // STV_HIDDEN
	SymbolVisibilityProtected = SymbolVisibility(3) // STV_PROTECTED
)

func (vis SymbolVisibility) String() string {
	switch vis {
	case SymbolVisibilityDefault:
		return "Default"
	case SymbolVisibilityInternal:
		return "Internal"
	case SymbolVisibilityHidden:
		return "Hidden"
	case SymbolVisibilityProtected:
		return "Protected"
	default:
		return fmt.Sprintf("SymbolVisibilityUnknown(%d)", byte(vis))
	}
}

type SectionIndex uint16

const (
	SectionIndexUndefined = SectionIndex(0) // SHN_UNDEF
	SectionIndexAbsolute  = SectionIndex(0xfff1)

	SectionStringTableName = ".shstrtab"
	StringTableName        = ".strtab"
)

// d_tag
type DynamicTag int64

const (
	DynamicTagNull            = DynamicTag(0)  // DT_NULL
	DynamicTagNeeded          = DynamicTag(1)  // DT_NEEDED
	DynamicTagPLTRelSize      = DynamicTag(2)  // DT_PLTRELSZ
	DynamicTagStringTable     = DynamicTag(5)  // DT_STRTAB
	DynamicTagSymbolTable     = DynamicTag(6)  // DT_SYMTAB
	DynamicTagInitArray       = DynamicTag(25) // DT_INIT_ARRAY
	DynamicTagFiniArray       = DynamicTag(26) // DT_FINI_ARRAY
	DynamicTagLoOS            = DynamicTag(0x6000000d)
	DynamicTagHiOS            = DynamicTag(0x6ffff000)
	DynamicTagLoProc          = DynamicTag(0x70000000)
	DynamicTagHiProc          = DynamicTag(0x7fffffff)
)

func (tag DynamicTag) String() string {
	switch tag {
	case DynamicTagNull:
		return "NULL"
	case DynamicTagNeeded:
		return "NEEDED"
	case DynamicTagPLTRelSize:
		return "PLTRELSZ"
	case DynamicTagStringTable:
		return "STRTAB"
	case DynamicTagSymbolTable:
		return "SYMTAB"
	case DynamicTagInitArray:
		return "INIT_ARRAY"
	case DynamicTagFiniArray:
		return "FINI_ARRAY"
	default:
		if tag >= DynamicTagLoOS && tag <= DynamicTagHiOS {
			return fmt.Sprintf("OS-specific(%#x)", int64(tag))
		}
		if tag >= DynamicTagLoProc && tag <= DynamicTagHiProc {
			return fmt.Sprintf("ProcessorSpecific(%#x)", int64(tag))
		}
		return fmt.Sprintf("DynamicTagUnknown(%d)", int64(tag))
	}
}
