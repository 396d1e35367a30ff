package elf

// getNulTerminatedString reads a NUL-terminated string out of a names
// payload at the given byte offset (§4.6). An out-of-range offset yields
// the empty string rather than a panic, per the sentinel-default policy.
func getNulTerminatedString(data []byte, offset int) string {
	if offset < 0 || offset >= len(data) {
		return ""
	}
	end := offset
	for end < len(data) && data[end] != 0 {
		end++
	}
	return string(data[offset:end])
}

// StringTable is an on-demand accessor over a names-table section's
// payload (§4.6). It holds no independent state beyond the section it
// wraps, matching the "accessor over section" shape used throughout the
// table-of-contents accessors (§2 layer 6).
type StringTable struct {
	section *Section
}

// NewStringTable builds a StringTable accessor over section. section is
// expected to carry SHT_STRTAB data, but no type check is enforced here:
// callers that hand in the wrong section simply get back garbage strings,
// consistent with this package's non-validating posture on caller misuse.
func NewStringTable(section *Section) *StringTable {
	return &StringTable{section: section}
}

// Get returns the NUL-terminated string stored at offset, or "" if offset
// is out of range.
func (t *StringTable) Get(offset Word) string {
	if t == nil || t.section == nil {
		return ""
	}
	return getNulTerminatedString(t.section.Data, int(offset))
}

// Size returns the size in bytes of the underlying names payload.
func (t *StringTable) Size() int {
	if t == nil || t.section == nil {
		return 0
	}
	return len(t.section.Data)
}
