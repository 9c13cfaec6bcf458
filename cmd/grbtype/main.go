package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/grbtype/errors"
	"github.com/wippyai/grbtype/resource"
	"github.com/wippyai/grbtype/typedesc"
	"github.com/wippyai/grbtype/witabi"
)

func main() {
	var (
		define      = flag.String("define", "", "User-defined types to register (name:size,name2:size)")
		free        = flag.String("free", "", "User-defined types to release (comma-separated)")
		list        = flag.Bool("list", false, "List built-in and user-defined types")
		verbose     = flag.Bool("v", false, "Log descriptor lifecycle events")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync() //nolint:errcheck
	typedesc.SetLogger(logger)
	resource.SetLogger(logger)

	defs, err := parseDefs(*define)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := typedesc.NewStore(typedesc.WithLogger(logger))
	defer store.Close()

	if *interactive {
		if err := runInteractive(store, defs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *define == "" && *free == "" && !*list {
		fmt.Fprintln(os.Stderr, "Usage: grbtype [-define name:size,...] [-free name,...] [-list] [-v]")
		fmt.Fprintln(os.Stderr, "       grbtype -i  (interactive mode)")
		os.Exit(1)
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(os.Stdout, store, defs, splitList(*free), *list, styled); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type typeDef struct {
	name string
	size uintptr
}

// parseDefs parses "name:size,name2:size" into type definitions.
func parseDefs(s string) ([]typeDef, error) {
	var defs []typeDef
	for _, item := range splitList(s) {
		d, err := parseDef(item)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

func parseDef(item string) (typeDef, error) {
	name, sizeStr, ok := strings.Cut(item, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return typeDef{}, fmt.Errorf("invalid type definition %q (want name:size)", item)
	}
	size, err := strconv.ParseUint(strings.TrimSpace(sizeStr), 10, 32)
	if err != nil {
		return typeDef{}, fmt.Errorf("invalid size in %q: %w", item, err)
	}
	return typeDef{name: name, size: uintptr(size)}, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func run(w io.Writer, store *typedesc.Store, defs []typeDef, frees []string, list, styled bool) error {
	for _, d := range defs {
		t, err := store.New(d.name, d.size, nil)
		if err != nil {
			return fmt.Errorf("define %s: %w", d.name, err)
		}
		fmt.Fprintf(w, "defined %s\n", t)
	}

	for _, name := range frees {
		t, ok := store.Lookup(name)
		if !ok {
			return errors.NotFound(errors.PhaseLookup, name)
		}
		stale := t
		builtin := t.Class() == typedesc.Builtin

		typedesc.Free(&t)
		typedesc.Free(&stale)

		if builtin {
			fmt.Fprintf(w, "released handle to %s (built-in, storage kept)\n", name)
		} else {
			fmt.Fprintf(w, "freed %s\n", name)
		}
	}

	if list {
		rows := append(typedesc.Builtins(), store.Types()...)
		fmt.Fprint(w, renderTable(rows, styled))
		st := store.Stats()
		fmt.Fprintf(w, "storage: %d allocated, %d freed, %d live\n", st.Allocs, st.Frees, st.Live())
	}
	return nil
}

func renderTable(rows []*typedesc.Type, styled bool) string {
	var b strings.Builder
	header := fmt.Sprintf("%-10s %-13s %6s %-8s %s", "NAME", "CLASS", "SIZE", "TAG", "WIT")
	if styled {
		header = titleStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteByte('\n')

	for _, t := range rows {
		desc, err := witabi.Describe(t)
		if err != nil {
			desc = "-"
		}
		line := fmt.Sprintf("%-10s %-13s %6d %-8s %s", t.Name(), t.Class(), t.Size(), t.Magic(), desc)
		if styled {
			line = rowStyle(t).Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
