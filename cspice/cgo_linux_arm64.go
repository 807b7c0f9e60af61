//go:build cspice && cgo && linux && arm64

package cspice

/*
#cgo CFLAGS: -I${SRCDIR}/include
#cgo LDFLAGS: ${SRCDIR}/lib/linux-arm64/cspice.a -lm
#include "SpiceUsr.h"
*/
import "C"
