package elf

// Note is a single decoded note entry (§4.10). Description is an opaque
// blob whose format is defined solely by Name and Type; this package does
// not interpret it.
type Note struct {
	Type        Word
	Name        string
	Description []byte
}

const noteWordAlign = 4

// NoteTable is an on-demand accessor over a note section's payload
// (§4.10). Construction pre-scans the payload to find each note's start
// offset, since namesz/descsz vary per entry and word-align the stride
// between them; Get then decodes a single entry lazily.
type NoteTable struct {
	section *Section
	conv    Converter
	starts  []int
}

// NewNoteTable builds a NoteTable accessor over section, scanning its
// payload once to record each note's starting offset.
func NewNoteTable(section *Section, conv Converter) *NoteTable {
	t := &NoteTable{section: section, conv: conv}

	data := section.Data
	size := len(data)

	current := 0
	for current+3*noteWordAlign <= size {
		t.starts = append(t.starts, current)

		namesz := int(sliceWord(data, current, conv))
		descsz := int(sliceWord(data, current+4, conv))

		current += 3*noteWordAlign +
			roundUpToWord(namesz) +
			roundUpToWord(descsz)
	}

	return t
}

func roundUpToWord(n int) int {
	return ((n + noteWordAlign - 1) / noteWordAlign) * noteWordAlign
}

// Count returns the number of notes found during the pre-scan.
func (t *NoteTable) Count() int {
	if t == nil {
		return 0
	}
	return len(t.starts)
}

// Get decodes the i'th note. ok is false when i is out of range or the
// entry's declared sizes don't fit within the remaining payload.
func (t *NoteTable) Get(i int) (*Note, bool) {
	if t == nil || i < 0 || i >= len(t.starts) {
		return nil, false
	}

	data := t.section.Data
	start := t.starts[i]
	area := data[start:]

	nameSize := int(sliceWord(area, 0, t.conv))
	descSize := int(sliceWord(area, 4, t.conv))
	ntype := sliceWord(area, 8, t.conv)

	maxSize := len(area)
	if nameSize < 1 || 12+nameSize > maxSize {
		return nil, false
	}

	name := string(area[12 : 12+nameSize-1])
	descPos := 12 + roundUpToWord(nameSize)
	if descPos+descSize > maxSize {
		return nil, false
	}
	desc := area[descPos : descPos+descSize]

	return &Note{Type: ntype, Name: name, Description: desc}, true
}
