//go:build cspice && cgo && ((linux && (amd64 || arm64)) || (darwin && (amd64 || arm64)))

package cspice

/*
#include "SpiceUsr.h"
#include <stdlib.h>
*/
import "C"

import (
	"strings"
	"unsafe"
)

const (
	messageLen   = 1841
	tracebackLen = 8192
	kernelStrLen = 1024
	bodyNameLen  = 37
	utcStrLen    = 128
)

type nativeBridge struct{}

func newBridge() (bridge, error) {
	return nativeBridge{}, nil
}

// cBuffer allocates a zeroed C buffer of n bytes. The caller frees it.
func cBuffer(n int) *C.char {
	return (*C.char)(C.calloc(C.size_t(n), 1))
}

func goTrimmed(buf *C.char) string {
	return strings.TrimRight(C.GoString(buf), " \x00")
}

// constStr and charBuf convert Go-allocated C strings to the CSPICE char typedefs.
func constStr(p *C.char) *C.ConstSpiceChar {
	return (*C.ConstSpiceChar)(unsafe.Pointer(p))
}

func charBuf(p *C.char) *C.SpiceChar {
	return (*C.SpiceChar)(unsafe.Pointer(p))
}

func (nativeBridge) setup() {
	op := C.CString("SET")
	defer C.free(unsafe.Pointer(op))

	// errprt_c and erract_c take a writable list argument.
	devices := C.CString("NONE")
	defer C.free(unsafe.Pointer(devices))
	C.errprt_c(constStr(op), 0, charBuf(devices))

	action := C.CString("RETURN")
	defer C.free(unsafe.Pointer(action))
	C.erract_c(constStr(op), 0, charBuf(action))
}

func (nativeBridge) failed() bool {
	return C.failed_c() != 0
}

func (nativeBridge) reset() {
	C.reset_c()
}

func (nativeBridge) getmsg(option string) string {
	cOption := C.CString(option)
	defer C.free(unsafe.Pointer(cOption))

	buf := cBuffer(messageLen)
	defer C.free(unsafe.Pointer(buf))

	C.getmsg_c(constStr(cOption), C.SpiceInt(messageLen), charBuf(buf))
	return goTrimmed(buf)
}

func (nativeBridge) qcktrc() string {
	buf := cBuffer(tracebackLen)
	defer C.free(unsafe.Pointer(buf))

	C.qcktrc_c(C.SpiceInt(tracebackLen), charBuf(buf))
	return goTrimmed(buf)
}

func (nativeBridge) furnsh(file string) {
	cFile := C.CString(file)
	defer C.free(unsafe.Pointer(cFile))
	C.furnsh_c(constStr(cFile))
}

func (nativeBridge) unload(file string) {
	cFile := C.CString(file)
	defer C.free(unsafe.Pointer(cFile))
	C.unload_c(constStr(cFile))
}

func (nativeBridge) kclear() {
	C.kclear_c()
}

func (nativeBridge) ktotal(kind string) int {
	cKind := C.CString(kind)
	defer C.free(unsafe.Pointer(cKind))

	var count C.SpiceInt
	C.ktotal_c(constStr(cKind), &count)
	return int(count)
}

func (nativeBridge) kdata(which int, kind string) (string, string, string, int, bool) {
	cKind := C.CString(kind)
	defer C.free(unsafe.Pointer(cKind))

	file := cBuffer(kernelStrLen)
	defer C.free(unsafe.Pointer(file))
	filtyp := cBuffer(kernelStrLen)
	defer C.free(unsafe.Pointer(filtyp))
	source := cBuffer(kernelStrLen)
	defer C.free(unsafe.Pointer(source))

	var (
		handle C.SpiceInt
		found  C.SpiceBoolean
	)
	C.kdata_c(
		C.SpiceInt(which),
		constStr(cKind),
		C.SpiceInt(kernelStrLen),
		C.SpiceInt(kernelStrLen),
		C.SpiceInt(kernelStrLen),
		charBuf(file),
		charBuf(filtyp),
		charBuf(source),
		&handle,
		&found,
	)
	if found == 0 {
		return "", "", "", 0, false
	}
	return goTrimmed(file), goTrimmed(filtyp), goTrimmed(source), int(handle), true
}

func (nativeBridge) str2et(s string) float64 {
	cStr := C.CString(s)
	defer C.free(unsafe.Pointer(cStr))

	var et C.SpiceDouble
	C.str2et_c(constStr(cStr), &et)
	return float64(et)
}

func (nativeBridge) et2utc(et float64, format string, prec int) string {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))

	buf := cBuffer(utcStrLen)
	defer C.free(unsafe.Pointer(buf))

	C.et2utc_c(C.SpiceDouble(et), constStr(cFormat), C.SpiceInt(prec), C.SpiceInt(utcStrLen), charBuf(buf))
	return goTrimmed(buf)
}

func (nativeBridge) deltet(epoch float64, eptype string) float64 {
	cType := C.CString(eptype)
	defer C.free(unsafe.Pointer(cType))

	var delta C.SpiceDouble
	C.deltet_c(C.SpiceDouble(epoch), constStr(cType), &delta)
	return float64(delta)
}

func (nativeBridge) bodn2c(name string) (int, bool) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var (
		code  C.SpiceInt
		found C.SpiceBoolean
	)
	C.bodn2c_c(constStr(cName), &code, &found)
	return int(code), found != 0
}

func (nativeBridge) bodc2n(code int) (string, bool) {
	buf := cBuffer(bodyNameLen)
	defer C.free(unsafe.Pointer(buf))

	var found C.SpiceBoolean
	C.bodc2n_c(C.SpiceInt(code), C.SpiceInt(bodyNameLen), charBuf(buf), &found)
	if found == 0 {
		return "", false
	}
	return goTrimmed(buf), true
}

func (nativeBridge) bodvrd(body, item string, maxn int) []float64 {
	if maxn <= 0 {
		return nil
	}
	cBody := C.CString(body)
	defer C.free(unsafe.Pointer(cBody))
	cItem := C.CString(item)
	defer C.free(unsafe.Pointer(cItem))

	values := make([]C.SpiceDouble, maxn)
	var dim C.SpiceInt
	C.bodvrd_c(constStr(cBody), constStr(cItem), C.SpiceInt(maxn), &dim, &values[0])

	out := make([]float64, int(dim))
	for i := range out {
		out[i] = float64(values[i])
	}
	return out
}

func (nativeBridge) spkezr(target string, et float64, ref, abcorr, observer string) ([6]float64, float64) {
	cTarget := C.CString(target)
	defer C.free(unsafe.Pointer(cTarget))
	cRef := C.CString(ref)
	defer C.free(unsafe.Pointer(cRef))
	cAbcorr := C.CString(abcorr)
	defer C.free(unsafe.Pointer(cAbcorr))
	cObserver := C.CString(observer)
	defer C.free(unsafe.Pointer(cObserver))

	var (
		state [6]C.SpiceDouble
		lt    C.SpiceDouble
	)
	C.spkezr_c(constStr(cTarget), C.SpiceDouble(et), constStr(cRef), constStr(cAbcorr), constStr(cObserver), &state[0], &lt)

	var out [6]float64
	for i := range out {
		out[i] = float64(state[i])
	}
	return out, float64(lt)
}

func (nativeBridge) spkpos(target string, et float64, ref, abcorr, observer string) ([3]float64, float64) {
	cTarget := C.CString(target)
	defer C.free(unsafe.Pointer(cTarget))
	cRef := C.CString(ref)
	defer C.free(unsafe.Pointer(cRef))
	cAbcorr := C.CString(abcorr)
	defer C.free(unsafe.Pointer(cAbcorr))
	cObserver := C.CString(observer)
	defer C.free(unsafe.Pointer(cObserver))

	var (
		pos [3]C.SpiceDouble
		lt  C.SpiceDouble
	)
	C.spkpos_c(constStr(cTarget), C.SpiceDouble(et), constStr(cRef), constStr(cAbcorr), constStr(cObserver), &pos[0], &lt)

	var out [3]float64
	for i := range out {
		out[i] = float64(pos[i])
	}
	return out, float64(lt)
}

func (nativeBridge) pxform(from, to string, et float64) [3][3]float64 {
	cFrom := C.CString(from)
	defer C.free(unsafe.Pointer(cFrom))
	cTo := C.CString(to)
	defer C.free(unsafe.Pointer(cTo))

	var rot [3][3]C.SpiceDouble
	C.pxform_c(constStr(cFrom), constStr(cTo), C.SpiceDouble(et), &rot[0])

	var out [3][3]float64
	for i := range out {
		for j := range out[i] {
			out[i][j] = float64(rot[i][j])
		}
	}
	return out
}

func (nativeBridge) dpr() float64 {
	return float64(C.dpr_c())
}

func (nativeBridge) tkvrsn(item string) string {
	cItem := C.CString(item)
	defer C.free(unsafe.Pointer(cItem))
	return C.GoString((*C.char)(unsafe.Pointer(C.tkvrsn_c(constStr(cItem)))))
}
