//go:build !cspice || !cgo || !((linux && (amd64 || arm64)) || (darwin && (amd64 || arm64)))

package cspice

import "fmt"

func newBridge() (bridge, error) {
	return nil, fmt.Errorf("%w: cspice Go bindings require cgo, the cspice build tag and a linux or darwin target", ErrUnsupported)
}
