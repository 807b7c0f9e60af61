package cspice

// TimeFormat selects the et2utc_c output format.
type TimeFormat string

const (
	FormatCalendar    TimeFormat = "C"    // 1986 APR 12 16:31:09.814
	FormatDayOfYear   TimeFormat = "D"    // 1986-102 // 16:31:12.814
	FormatJulian      TimeFormat = "J"    // JD 2446533.18834276
	FormatISOCalendar TimeFormat = "ISOC" // 1987-04-12T16:31:12.814
	FormatISODay      TimeFormat = "ISOD" // 1987-102T16:31:12.814
)

// StrToET converts a time string to ephemeris time, seconds past J2000 TDB.
// UTC strings require a leapseconds kernel.
func (t *Toolkit) StrToET(s string) (float64, error) {
	var et float64
	err := t.call("str2et_c", func(lib bridge) {
		et = lib.str2et(s)
	})
	return et, err
}

// ETToUTC formats ephemeris time as UTC with prec fractional second digits.
func (t *Toolkit) ETToUTC(et float64, format TimeFormat, prec int) (string, error) {
	var s string
	err := t.call("et2utc_c", func(lib bridge) {
		s = lib.et2utc(et, string(format), prec)
	})
	return s, err
}

// EpochType names the time system of the deltet_c epoch argument.
type EpochType string

const (
	EpochUTC EpochType = "UTC"
	EpochET  EpochType = "ET"
)

// DeltaET returns ET - UTC at epoch. It needs the leapseconds variables in
// the kernel pool.
func (t *Toolkit) DeltaET(epoch float64, eptype EpochType) (float64, error) {
	var delta float64
	err := t.call("deltet_c", func(lib bridge) {
		delta = lib.deltet(epoch, string(eptype))
	})
	return delta, err
}
