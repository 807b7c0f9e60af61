// Command spicekernels furnishes SPICE kernels and reports the loaded pool.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/gospice/gospice/cspice"
)

// kernelList collects repeated -kernel flags in order.
type kernelList []string

func (k *kernelList) String() string { return strings.Join(*k, ",") }

func (k *kernelList) Set(v string) error {
	*k = append(*k, v)
	return nil
}

func main() {
	var kernels kernelList
	flag.Var(&kernels, "kernel", "Kernel file to furnish (repeatable, loaded in order)")
	kindName := flag.String("kind", "all", "Kernel kind to list (spk, ck, pck, dsk, ek, text, meta, all)")
	timeStr := flag.String("time", "", "Convert a time string to ET and back to UTC")
	unloadAll := flag.Bool("unload-all", false, "Unload every kernel before exit")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(os.Stdout, logger, kernels, *kindName, *timeStr, *unloadAll); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func run(out io.Writer, logger *zap.Logger, kernels []string, kindName, timeStr string, unloadAll bool) error {
	kind, err := cspice.ParseKernelKind(kindName)
	if err != nil {
		return err
	}

	tk, err := cspice.Open(cspice.WithLogger(logger))
	if err != nil {
		return err
	}

	for _, path := range kernels {
		if _, err := tk.Furnish(path); err != nil {
			return err
		}
		logger.Info("furnished kernel", zap.String("file", path))
	}

	infos, err := tk.Kernels(kind)
	if err != nil {
		return err
	}
	styled := isTerminal(out)
	fmt.Fprintln(out, renderKernels(infos, kind, styled))

	if timeStr != "" {
		et, err := tk.StrToET(timeStr)
		if err != nil {
			return err
		}
		utc, err := tk.ETToUTC(et, cspice.FormatISOCalendar, 3)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  ET %.6f  UTC %s\n", timeStr, et, utc)
	}

	if unloadAll {
		if err := tk.UnloadAll(); err != nil {
			return err
		}
		n, err := tk.KernelCount(cspice.KindAll)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "kernels loaded after unload: %d\n", n)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

func renderKernels(infos []cspice.KernelInfo, kind cspice.KernelKind, styled bool) string {
	if len(infos) == 0 {
		return fmt.Sprintf("no %s kernels loaded", kind)
	}

	header := []string{"#", "KIND", "FILE", "SOURCE", "HANDLE"}
	rows := make([][]string, 0, len(infos))
	for i, info := range infos {
		source := info.Source
		if source == "" {
			source = "-"
		}
		handle := "-"
		if info.Handle != 0 {
			handle = strconv.Itoa(info.Handle)
		}
		rows = append(rows, []string{strconv.Itoa(i), string(info.Kind), info.File, source, handle})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(formatRow(header, widths, func(_ int, s string) string {
		if styled {
			return headerStyle.Render(s)
		}
		return s
	}))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(formatRow(row, widths, func(col int, s string) string {
			if !styled {
				return s
			}
			switch col {
			case 1:
				return kindStyle.Render(s)
			case 3, 4:
				return dimStyle.Render(s)
			}
			return s
		}))
	}
	return b.String()
}

func formatRow(cells []string, widths []int, style func(col int, s string) string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		padded := cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		parts[i] = style(i, padded)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
