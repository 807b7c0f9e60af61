//go:build cspice && cgo && linux && amd64

package cspice

/*
#cgo CFLAGS: -I${SRCDIR}/include
#cgo LDFLAGS: ${SRCDIR}/lib/linux-amd64/cspice.a -lm
#include "SpiceUsr.h"
*/
import "C"
