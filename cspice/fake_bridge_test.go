package cspice

import (
	"math"
	"strconv"
)

type fakeFile struct {
	kind     string
	handle   int
	children []string
	vars     map[string][]float64
}

type fakeLoaded struct {
	file   string
	kind   string
	source string
	handle int
}

// fakeBridge models the parts of CSPICE the toolkit relies on: a sticky
// failed flag with message buffers and a kernel pool backed by files.
type fakeBridge struct {
	files map[string]fakeFile
	pool  []fakeLoaded

	setups int
	calls  []string
	kinds  []string

	failedFlag bool
	short      string
	long       string
	explain    string
	trace      string
}

func newFakeBridge(files map[string]fakeFile) *fakeBridge {
	if files == nil {
		files = map[string]fakeFile{}
	}
	return &fakeBridge{files: files}
}

func newFakeToolkit(files map[string]fakeFile) (*Toolkit, *fakeBridge) {
	fake := newFakeBridge(files)
	return newToolkit(fake, &config{}), fake
}

func (f *fakeBridge) signal(short, long, explain, trace string) {
	if f.failedFlag {
		return
	}
	f.failedFlag = true
	f.short = short
	f.long = long
	f.explain = explain
	f.trace = trace
}

func (f *fakeBridge) lookup(name string) ([]float64, bool) {
	for _, l := range f.pool {
		if v, ok := f.files[l.file].vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (f *fakeBridge) hasKind(kind string) bool {
	for _, l := range f.pool {
		if l.kind == kind {
			return true
		}
	}
	return false
}

func (f *fakeBridge) setup() {
	f.setups++
	f.calls = append(f.calls, "setup")
}

func (f *fakeBridge) failed() bool {
	f.calls = append(f.calls, "failed")
	return f.failedFlag
}

func (f *fakeBridge) reset() {
	f.calls = append(f.calls, "reset")
	f.failedFlag = false
	f.short, f.long, f.explain, f.trace = "", "", "", ""
}

func (f *fakeBridge) getmsg(option string) string {
	f.calls = append(f.calls, "getmsg "+option)
	switch option {
	case "SHORT":
		return f.short
	case "LONG":
		return f.long
	case "EXPLAIN":
		return f.explain
	}
	return ""
}

func (f *fakeBridge) qcktrc() string {
	f.calls = append(f.calls, "qcktrc")
	return f.trace
}

func (f *fakeBridge) furnsh(file string) {
	f.calls = append(f.calls, "furnsh")
	f.load(file, "")
}

func (f *fakeBridge) load(file, source string) {
	def, ok := f.files[file]
	if !ok {
		f.signal("SPICE(NOSUCHFILE)",
			"The attempt to load \""+file+"\" by the routine FURNSH failed. It could not be located.",
			"The indicated file does not exist.",
			"furnsh_c --> FURNSH --> ZZLDKER")
		return
	}
	f.pool = append(f.pool, fakeLoaded{file: file, kind: def.kind, source: source, handle: def.handle})
	for _, child := range def.children {
		f.load(child, file)
	}
}

func (f *fakeBridge) unload(file string) {
	f.calls = append(f.calls, "unload")
	kept := f.pool[:0]
	for _, l := range f.pool {
		if l.file == file || l.source == file {
			continue
		}
		kept = append(kept, l)
	}
	f.pool = kept
}

func (f *fakeBridge) kclear() {
	f.calls = append(f.calls, "kclear")
	f.pool = nil
}

func (f *fakeBridge) matching(kind string) []fakeLoaded {
	var out []fakeLoaded
	for _, l := range f.pool {
		if kind == "ALL" || l.kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func (f *fakeBridge) ktotal(kind string) int {
	f.calls = append(f.calls, "ktotal")
	f.kinds = append(f.kinds, kind)
	return len(f.matching(kind))
}

func (f *fakeBridge) kdata(which int, kind string) (string, string, string, int, bool) {
	f.calls = append(f.calls, "kdata")
	f.kinds = append(f.kinds, kind)
	m := f.matching(kind)
	if which < 0 || which >= len(m) {
		return "", "", "", 0, false
	}
	l := m[which]
	return l.file, l.kind, l.source, l.handle, true
}

func (f *fakeBridge) str2et(s string) float64 {
	f.calls = append(f.calls, "str2et")
	if _, ok := f.lookup("DELTET/DELTA_T_A"); !ok {
		f.signal("SPICE(NOLEAPSECONDS)",
			"The variable that points to the leapseconds (DELTET/DELTA_AT) could not be located in the kernel pool.",
			"There are no leapseconds in the kernel pool.",
			"str2et_c --> STR2ET --> TTRANS")
		return 0
	}
	return 64.183927284731
}

func (f *fakeBridge) et2utc(et float64, format string, prec int) string {
	f.calls = append(f.calls, "et2utc")
	if _, ok := f.lookup("DELTET/DELTA_T_A"); !ok {
		f.signal("SPICE(MISSINGTIMEINFO)",
			"The kernel pool does not contain all of the values required for the time conversion.",
			"A time conversion needs values that are not in the kernel pool.",
			"et2utc_c --> ET2UTC --> UNITIM")
		return ""
	}
	return "2000-01-01T12:00:00.000"
}

func (f *fakeBridge) deltet(epoch float64, eptype string) float64 {
	f.calls = append(f.calls, "deltet")
	if eptype != "UTC" && eptype != "ET" {
		f.signal("SPICE(INVALIDEPOCH)", "'"+eptype+"' is not a valid epoch type.", "Invalid epoch type.", "deltet_c --> DELTET")
		return 0
	}
	if _, ok := f.lookup("DELTET/DELTA_T_A"); !ok {
		f.signal("SPICE(MISSINGTIMEINFO)",
			"The kernel pool does not contain the DELTET variables.",
			"A time conversion needs values that are not in the kernel pool.",
			"deltet_c --> DELTET")
		return 0
	}
	return 64.184
}

var fakeBodies = map[string]int{"EARTH": 399, "MOON": 301, "SUN": 10}

func (f *fakeBridge) bodn2c(name string) (int, bool) {
	f.calls = append(f.calls, "bodn2c")
	code, ok := fakeBodies[name]
	return code, ok
}

func (f *fakeBridge) bodc2n(code int) (string, bool) {
	f.calls = append(f.calls, "bodc2n")
	for name, c := range fakeBodies {
		if c == code {
			return name, true
		}
	}
	return "", false
}

func (f *fakeBridge) bodvrd(body, item string, maxn int) []float64 {
	f.calls = append(f.calls, "bodvrd")
	code, ok := fakeBodies[body]
	if !ok {
		f.signal("SPICE(NOTRANSLATION)", "The body name "+body+" could not be translated.", "", "bodvrd_c --> BODVRD")
		return nil
	}
	name := "BODY" + strconv.Itoa(code) + "_" + item
	v, ok := f.lookup(name)
	if !ok {
		f.signal("SPICE(KERNELVARNOTFOUND)", "The variable "+name+" could not be found in the kernel pool.",
			"The kernel variable was not found.", "bodvrd_c --> BODVRD")
		return nil
	}
	if len(v) > maxn {
		v = v[:maxn]
	}
	return append([]float64(nil), v...)
}

func (f *fakeBridge) requireSPK(trace string) bool {
	if !f.hasKind("SPK") {
		f.signal("SPICE(NOLOADEDFILES)", "At least one SPK file needs to be loaded.",
			"There are no files of the required type loaded.", trace)
		return false
	}
	return true
}

func (f *fakeBridge) spkezr(target string, et float64, ref, abcorr, observer string) ([6]float64, float64) {
	f.calls = append(f.calls, "spkezr")
	if !f.requireSPK("spkezr_c --> SPKEZR --> SPKEZ --> SPKGEO") {
		return [6]float64{}, 0
	}
	return [6]float64{384400, 0, 0, 0, 1.022, 0}, 1.282
}

func (f *fakeBridge) spkpos(target string, et float64, ref, abcorr, observer string) ([3]float64, float64) {
	f.calls = append(f.calls, "spkpos")
	if !f.requireSPK("spkpos_c --> SPKPOS --> SPKGPS") {
		return [3]float64{}, 0
	}
	return [3]float64{384400, 0, 0}, 1.282
}

func (f *fakeBridge) pxform(from, to string, et float64) [3][3]float64 {
	f.calls = append(f.calls, "pxform")
	if from != to {
		f.signal("SPICE(UNKNOWNFRAME)", "Unknown frame '"+to+"'.", "", "pxform_c --> PXFORM")
		return [3][3]float64{}
	}
	return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (f *fakeBridge) dpr() float64 {
	f.calls = append(f.calls, "dpr")
	return 180 / math.Pi
}

func (f *fakeBridge) tkvrsn(item string) string {
	f.calls = append(f.calls, "tkvrsn")
	return "CSPICE_N0067"
}
