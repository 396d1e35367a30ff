package elf

import (
	"bytes"
	"fmt"
	"io"
)

// state is the loaded-file lifecycle (§4.13): Empty -> Loading -> Loaded,
// or Failed on any error along the way.
type state int

const (
	stateEmpty state = iota
	stateLoading
	stateLoaded
	stateFailed
)

// File is the loaded-file value: the root of the decoded ELF object. It is
// created empty, populated by exactly one Load call, and read-only for the
// rest of its lifetime (§3 "Lifecycle").
type File struct {
	state state

	ident  Identifier
	header Header
	conv   Converter

	sections []*Section
	segments []Segment
}

// New returns an empty File in host byte order, ready for Load.
func New() *File {
	return &File{state: stateEmpty}
}

// NewWith reserves construction parameters for a future write path (§6);
// this core is read-only, so the class/encoding are recorded but have no
// effect: getters report zero values until Load, and Load replaces them
// with the values decoded from the file.
func NewWith(class Class, encoding DataEncoding) *File {
	f := New()
	f.ident.Class = class
	f.ident.DataEncoding = encoding
	return f
}

// Parse reads and decodes an ELF file from r.
func Parse(r io.Reader) (*File, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read elf file: %w", err)
	}
	return ParseBytes(content)
}

// ParseBytes decodes an ELF file already held in memory.
func ParseBytes(content []byte) (*File, error) {
	f := New()
	src := NewReaderSource(bytes.NewReader(content))
	if err := f.Load(src); err != nil {
		return nil, err
	}
	return f, nil
}

// Load populates an Empty File from source, per the state machine in
// §4.13: on success the File becomes Loaded; on any decode or I/O error it
// becomes Failed and exposes no partially-parsed data.
func (f *File) Load(src Source) error {
	if f.state != stateEmpty {
		return fmt.Errorf("elf: Load called on a file that is not Empty")
	}
	f.state = stateLoading

	if err := f.load(src); err != nil {
		f.state = stateFailed
		f.sections = nil
		f.segments = nil
		return err
	}

	f.state = stateLoaded
	return nil
}

func (f *File) load(src Source) error {
	ident, err := parseIdentifier(src)
	if err != nil {
		return err
	}
	f.ident = ident
	f.conv = NewConverter(ident.DataEncoding)

	if err := src.Seek(0); err != nil {
		return fmt.Errorf("failed to seek to header: %w", err)
	}

	header, err := parseHeader(src, ident.Class, f.conv)
	if err != nil {
		return err
	}
	f.header = header

	if err := f.loadSegments(src); err != nil {
		return err
	}

	if err := f.loadSections(src); err != nil {
		return err
	}

	f.resolveSectionNames()
	f.bindLinkedSections()

	return nil
}

// loadSegments walks the program header table (§4.5): iterate the header's
// stride and count, seeking to base_offset + i*stride per entry. Only
// metadata is loaded.
func (f *File) loadSegments(src Source) error {
	count := int(f.header.ProgramHeaderCount)
	stride := int64(f.header.ProgramHeaderEntrySize)

	segments := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		off := int64(f.header.ProgramHeaderOffset) + int64(i)*stride
		if err := src.Seek(off); err != nil {
			return fmt.Errorf("failed to seek to segment %d: %w", i, err)
		}

		d := decoder{src: src, conv: f.conv}

		var seg Segment
		var err error
		if f.ident.Class == Class64 {
			seg, err = decodeSegment64(d)
		} else {
			seg, err = decodeSegment32(d)
		}
		if err != nil {
			return fmt.Errorf("%w: segment %d: %v", ErrTruncated, i, err)
		}

		segments = append(segments, seg)
	}

	f.segments = segments
	return nil
}

// loadSections walks the section header table (§4.5): iterate the
// header's stride and count, then for each entry with a non-SHT_NOBITS
// type, seek to its file offset and materialize its payload.
func (f *File) loadSections(src Source) error {
	count := int(f.header.SectionHeaderCount)
	stride := int64(f.header.SectionHeaderEntrySize)

	sections := make([]*Section, 0, count)
	for i := 0; i < count; i++ {
		off := int64(f.header.SectionHeaderOffset) + int64(i)*stride
		if err := src.Seek(off); err != nil {
			return fmt.Errorf("failed to seek to section %d: %w", i, err)
		}

		d := decoder{src: src, conv: f.conv}

		var entry SectionHeaderEntry
		var err error
		if f.ident.Class == Class64 {
			entry, err = decodeSectionHeaderEntry64(d)
		} else {
			entry, err = decodeSectionHeaderEntry32(d)
		}
		if err != nil {
			return fmt.Errorf("%w: section %d: %v", ErrTruncated, i, err)
		}

		section := &Section{
			SectionHeaderEntry: entry,
			index:              Half(i),
			file:               f,
		}

		if entry.Type != SectionTypeNoSpace && entry.Size > 0 {
			if err := src.Seek(int64(entry.Offset)); err != nil {
				return fmt.Errorf("failed to seek to payload of section %d: %w", i, err)
			}
			payload := make([]byte, entry.Size)
			if err := src.ReadExact(payload); err != nil {
				return fmt.Errorf("%w: payload of section %d: %v", ErrTruncated, i, err)
			}
			section.Data = payload
		} else {
			section.Data = []byte{}
		}

		sections = append(sections, section)
	}

	f.sections = sections
	return nil
}

// resolveSectionNames resolves every section's name from the names-table
// payload once all sections are loaded (§4.5 tail, §3 invariants).
func (f *File) resolveSectionNames() {
	if f.header.SectionStringTableIndex == SectionIndexUndefined {
		return
	}

	idx := int(f.header.SectionStringTableIndex)
	if idx >= len(f.sections) {
		return
	}

	names := f.sections[idx].Data
	for _, s := range f.sections {
		s.Name = getNulTerminatedString(names, int(s.NameIndex))
	}
}

// bindLinkedSections is the load step for sh_link / sh_info binding. It
// does nothing: no linked section is resolved or cached at load time.
func (f *File) bindLinkedSections() {
	// SectionHeaderEntry.Link is kept as decoded. Callers look up a linked
	// table with GetSectionByIndex(int(section.Link)) and pass it to the
	// accessor constructor (e.g. NewSymbolTable, NewDynamicTable).
}

// Sections returns every loaded section, in section header table order.
func (f *File) Sections() []*Section {
	return f.sections
}

// Segments returns every loaded segment, in program header table order.
func (f *File) Segments() []Segment {
	return f.segments
}

// GetSectionByName performs a linear search by name (§9 "Open questions").
func (f *File) GetSectionByName(name string) (*Section, bool) {
	for _, s := range f.sections {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// GetSectionByIndex bounds-checks idx against the loaded section table.
func (f *File) GetSectionByIndex(idx int) (*Section, bool) {
	if idx < 0 || idx >= len(f.sections) {
		return nil, false
	}
	return f.sections[idx], true
}
