//go:build cspice && cgo && darwin && amd64

package cspice

/*
#cgo CFLAGS: -I${SRCDIR}/include
#cgo LDFLAGS: ${SRCDIR}/lib/darwin-amd64/cspice.a -lm
#include "SpiceUsr.h"
*/
import "C"
