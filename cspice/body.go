package cspice

// BodyNameToCode translates a body name to its NAIF integer code.
func (t *Toolkit) BodyNameToCode(name string) (code int, found bool, err error) {
	err = t.call("bodn2c_c", func(lib bridge) {
		code, found = lib.bodn2c(name)
	})
	return code, found, err
}

// BodyCodeToName translates a NAIF integer code to a body name.
func (t *Toolkit) BodyCodeToName(code int) (name string, found bool, err error) {
	err = t.call("bodc2n_c", func(lib bridge) {
		name, found = lib.bodc2n(code)
	})
	return name, found, err
}

// BodyValues reads up to maxn values of BODY<id>_<item> from the kernel pool,
// for example BodyValues("EARTH", "RADII", 3).
func (t *Toolkit) BodyValues(body, item string, maxn int) ([]float64, error) {
	var values []float64
	err := t.call("bodvrd_c", func(lib bridge) {
		values = lib.bodvrd(body, item, maxn)
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
