package names

import "unsafe"

// Compile-time layout checks. The tables hold rows for every identifier
// in a codebase, so record sizes are part of the contract.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(Handle(0))-4]
	_ = [1]struct{}{}[unsafe.Sizeof(utf8Record{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(uniqueName{})-12]
	_ = [1]struct{}{}[unsafe.Sizeof(constantName{})-4]
)
