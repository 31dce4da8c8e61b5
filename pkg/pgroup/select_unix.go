//go:build unix

package pgroup

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// fdSetWordBits is computed from the actual element type of unix.FdSet.Bits
// rather than hardcoded, since it differs across the platforms this build
// tag covers: 64 bits per word on linux, but a 32-bit int32/uint32 array on
// darwin/freebsd/etc. Hardcoding 64 there would silently drop the bit for
// any fd >= 32.
var fdSetWordBits = int(unsafe.Sizeof(unix.FdSet{}.Bits[0]) * 8)

func fdSetAdd(set *unix.FdSet, fd int) {
	set.Bits[fd/fdSetWordBits] |= 1 << (uint(fd) % uint(fdSetWordBits))
}

func fdSetHas(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/fdSetWordBits]&(1<<(uint(fd)%uint(fdSetWordBits))) != 0
}
