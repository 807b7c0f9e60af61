package cspice

import (
	"fmt"
	"strings"
	"sync"
)

// KernelKind is the CSPICE kernel type code used by ktotal_c and kdata_c.
type KernelKind string

const (
	KindSPK  KernelKind = "SPK"
	KindCK   KernelKind = "CK"
	KindPCK  KernelKind = "PCK"
	KindDSK  KernelKind = "DSK"
	KindEK   KernelKind = "EK"
	KindText KernelKind = "TEXT"
	KindMeta KernelKind = "META"
	KindAll  KernelKind = "ALL"
)

var kernelKinds = map[string]KernelKind{
	"spk":  KindSPK,
	"ck":   KindCK,
	"pck":  KindPCK,
	"dsk":  KindDSK,
	"ek":   KindEK,
	"text": KindText,
	"meta": KindMeta,
	"all":  KindAll,
}

// ParseKernelKind maps a kind name such as "spk" or "META" to its KernelKind.
func ParseKernelKind(s string) (KernelKind, error) {
	kind, ok := kernelKinds[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidKernelKind, s)
	}
	return kind, nil
}

// code returns the CSPICE type code for k, accepting any spelling
// ParseKernelKind accepts.
func (k KernelKind) code() (string, error) {
	kind, err := ParseKernelKind(string(k))
	if err != nil {
		return "", err
	}
	return string(kind), nil
}

// KernelInfo describes one entry of the loaded kernel pool.
type KernelInfo struct {
	// File is the kernel path as it was furnished.
	File string
	// Kind is the kernel type. Empty if CSPICE reported an unknown type.
	Kind KernelKind
	// Source is the meta-kernel that loaded File, empty if furnished directly.
	Source string
	// Handle is the DAF/DAS handle for binary kernels, 0 for text kernels.
	Handle int
}

// Furnish loads a kernel file into the pool. Meta-kernels load every file
// they list. The returned Kernel unloads the file on Close.
func (t *Toolkit) Furnish(file string) (*Kernel, error) {
	if err := t.call("furnsh_c", func(lib bridge) {
		lib.furnsh(file)
	}); err != nil {
		return nil, err
	}

	return &Kernel{toolkit: t, file: file}, nil
}

// Unload removes a previously furnished file. Unloading a file that is not
// loaded does nothing.
func (t *Toolkit) Unload(file string) error {
	return t.call("unload_c", func(lib bridge) {
		lib.unload(file)
	})
}

// Clear unloads every kernel and clears the kernel pool variables.
func (t *Toolkit) Clear() error {
	return t.call("kclear_c", func(lib bridge) {
		lib.kclear()
	})
}

// KernelCount returns how many kernels of kind are loaded.
func (t *Toolkit) KernelCount(kind KernelKind) (int, error) {
	code, err := kind.code()
	if err != nil {
		return 0, err
	}

	var n int
	err = t.call("ktotal_c", func(lib bridge) {
		n = lib.ktotal(code)
	})
	return n, err
}

// KernelData returns the loaded kernel of kind at the 0-based index. found is
// false when index is not below KernelCount(kind).
func (t *Toolkit) KernelData(index int, kind KernelKind) (info KernelInfo, found bool, err error) {
	code, err := kind.code()
	if err != nil {
		return KernelInfo{}, false, err
	}

	err = t.call("kdata_c", func(lib bridge) {
		var filtyp string
		info.File, filtyp, info.Source, info.Handle, found = lib.kdata(index, code)
		if found {
			info.Kind, _ = ParseKernelKind(filtyp)
		}
	})
	if err != nil {
		return KernelInfo{}, false, err
	}
	return info, found, nil
}

// Kernels returns every loaded kernel of kind in load order.
func (t *Toolkit) Kernels(kind KernelKind) ([]KernelInfo, error) {
	n, err := t.KernelCount(kind)
	if err != nil {
		return nil, err
	}

	out := make([]KernelInfo, 0, n)
	for i := 0; i < n; i++ {
		info, found, err := t.KernelData(i, kind)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		out = append(out, info)
	}
	return out, nil
}

// UnloadAll unloads every loaded kernel. Unloading a meta-kernel also unloads
// the files it loaded, so the pool is re-read from index 0 after each unload.
func (t *Toolkit) UnloadAll() error {
	for {
		n, err := t.KernelCount(KindAll)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		info, found, err := t.KernelData(0, KindAll)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		if err := t.Unload(info.File); err != nil {
			return err
		}
	}
}

// Kernel is a furnished kernel file.
type Kernel struct {
	mu      sync.Mutex
	toolkit *Toolkit
	file    string
	closed  bool
}

// File returns the path the kernel was furnished from.
func (k *Kernel) File() string {
	if k == nil {
		return ""
	}
	return k.file
}

// Close unloads the kernel. Close is idempotent.
func (k *Kernel) Close() error {
	if k == nil {
		return nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return nil
	}
	if err := k.toolkit.Unload(k.file); err != nil {
		return err
	}
	k.closed = true
	return nil
}

// Info looks the kernel up in the pool. It returns ErrKernelNotLoaded when
// the file left the pool without Close, e.g. through its meta-kernel.
func (k *Kernel) Info() (KernelInfo, error) {
	if k == nil {
		return KernelInfo{}, ErrKernelClosed
	}

	k.mu.Lock()
	closed := k.closed
	k.mu.Unlock()
	if closed {
		return KernelInfo{}, ErrKernelClosed
	}

	kernels, err := k.toolkit.Kernels(KindAll)
	if err != nil {
		return KernelInfo{}, err
	}
	for _, info := range kernels {
		if info.File == k.file {
			return info, nil
		}
	}
	return KernelInfo{}, fmt.Errorf("%w: %s", ErrKernelNotLoaded, k.file)
}
