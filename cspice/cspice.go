// Package cspice provides Go bindings for NASA/JPL's CSPICE toolkit.
//
// The bindings are synchronous. CSPICE keeps its kernel pool and error state
// in process globals; every call goes through one Toolkit, which serializes
// access and turns the CSPICE failed flag into *Error values.
//
// The native bridge is built with the cspice tag and needs SpiceUsr.h under
// include/ and cspice.a under lib/<goos>-<goarch>/ in this directory. Without
// it Open returns ErrUnsupported.
package cspice

// Furnish loads a kernel into the pool of the process-wide Toolkit.
func Furnish(file string) (*Kernel, error) {
	t, err := Open()
	if err != nil {
		return nil, err
	}
	return t.Furnish(file)
}

// Unload removes a kernel from the pool of the process-wide Toolkit.
func Unload(file string) error {
	t, err := Open()
	if err != nil {
		return err
	}
	return t.Unload(file)
}

// UnloadAll unloads every kernel from the process-wide Toolkit.
func UnloadAll() error {
	t, err := Open()
	if err != nil {
		return err
	}
	return t.UnloadAll()
}

// KernelCount returns the number of loaded kernels of kind.
func KernelCount(kind KernelKind) (int, error) {
	t, err := Open()
	if err != nil {
		return 0, err
	}
	return t.KernelCount(kind)
}

// KernelData returns the loaded kernel of kind at index.
func KernelData(index int, kind KernelKind) (KernelInfo, bool, error) {
	t, err := Open()
	if err != nil {
		return KernelInfo{}, false, err
	}
	return t.KernelData(index, kind)
}
