package cspice

// bridge is the set of CSPICE routines the toolkit forwards to. Each method
// maps to one C routine; none of them report errors directly, callers check
// failed after every call.
type bridge interface {
	setup()
	failed() bool
	reset()
	getmsg(option string) string
	qcktrc() string

	furnsh(file string)
	unload(file string)
	kclear()
	ktotal(kind string) int
	kdata(which int, kind string) (file, filtyp, source string, handle int, found bool)

	str2et(s string) float64
	et2utc(et float64, format string, prec int) string
	deltet(epoch float64, eptype string) float64

	bodn2c(name string) (int, bool)
	bodc2n(code int) (string, bool)
	bodvrd(body, item string, maxn int) []float64

	spkezr(target string, et float64, ref, abcorr, observer string) ([6]float64, float64)
	spkpos(target string, et float64, ref, abcorr, observer string) ([3]float64, float64)
	pxform(from, to string, et float64) [3][3]float64

	dpr() float64
	tkvrsn(item string) string
}
