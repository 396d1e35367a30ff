package elf

import "errors"

// Error kinds (§7). Callers classify a Load failure with errors.Is, the
// same pattern the teacher uses for dwarf.ErrSectionNotFound.
var (
	ErrMalformedMagic      = errors.New("not an ELF file: bad magic")
	ErrUnsupportedClass    = errors.New("unsupported ELF class")
	ErrUnsupportedEncoding = errors.New("unsupported ELF data encoding")
	ErrTruncated           = errors.New("truncated ELF record")

	// ErrNotLoaded names the not-Loaded condition. No function in this
	// package returns it: getters on a File that is not in the Loaded state
	// return zero values instead.
	ErrNotLoaded = errors.New("elf file is not loaded")
)
