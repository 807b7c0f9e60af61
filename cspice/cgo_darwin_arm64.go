//go:build cspice && cgo && darwin && arm64

package cspice

/*
#cgo CFLAGS: -I${SRCDIR}/include
#cgo LDFLAGS: ${SRCDIR}/lib/darwin-arm64/cspice.a -lm
#include "SpiceUsr.h"
*/
import "C"
