package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/mod/modfile"

	"github.com/pigmentlang/pigment"
)

// ANSI color codes for terminal output
const (
	colorReset = "\033[0m"
	colorRed   = "\033[1;31m"
	colorGray  = "\033[0;37m"
)

// watchDebounce keeps one rapid editor save burst from triggering
// multiple expansions.
const watchDebounce = 300 * time.Millisecond

type args struct {
	inputPath  *string
	outputPath *string
	target     *string
	configPath *string
	goPackage  *string
	fallback   *string
	precision  *int
	watch      *bool
	noColor    *bool
}

func readArgs() *args {
	a := &args{
		inputPath:  flag.String("input", "", "Path to the input file"),
		outputPath: flag.String("output", "", "Path to the output file (default: standard output)"),
		target:     flag.String("target", "", "Output target: go, css or glsl"),
		configPath: flag.String("config", "", "Path to a pigment.yaml file (default: pigment.yaml next to the input)"),
		goPackage:  flag.String("go-package", "", "Package qualifier used by the go target"),
		fallback:   flag.String("fallback", "", "Color spliced in when a literal fails to resolve (hex string or SVG color name)"),
		precision:  flag.Int("precision", -1, "Channel decimal places; negative keeps the shortest exact form"),
		watch:      flag.Bool("watch", false, "Re-expand whenever the input file changes"),
		noColor:    flag.Bool("no-color", false, "Disable ANSI colors in diagnostics"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	if *a.inputPath == "" {
		fatal("Input not informed")
	}

	cfg := pigment.NewConfig()
	if *a.configPath != "" {
		if err := cfg.LoadFile(*a.configPath, false); err != nil {
			fatal("Can't load configuration: %s", err.Error())
		}
	} else {
		if err := cfg.LoadOptional(filepath.Dir(*a.inputPath)); err != nil {
			fatal("Can't load configuration: %s", err.Error())
		}
	}

	// flags override whatever the configuration file says
	if *a.target != "" {
		cfg.SetString("emit.target", *a.target)
	}
	if *a.goPackage != "" {
		cfg.SetString("emit.go_package", *a.goPackage)
	}
	if *a.fallback != "" {
		cfg.SetString("expand.fallback", *a.fallback)
	}
	if *a.precision >= 0 {
		cfg.SetInt("emit.precision", *a.precision)
	}

	if cfg.GetString("emit.target") == "go" && *a.goPackage == "" {
		if pkg := modulePackageName(filepath.Dir(*a.inputPath)); pkg != "" {
			cfg.SetString("emit.go_package", pkg)
		}
	}

	run := func() bool {
		expander, err := pigment.NewExpander(cfg)
		if err != nil {
			fatal("%s", err.Error())
		}
		output, diagnostics, err := expander.ExpandFile(*a.inputPath)
		if err != nil {
			fatal("Can't expand input: %s", err.Error())
		}

		printDiagnostics(diagnostics, *a.noColor)

		if *a.outputPath == "" {
			fmt.Print(output)
		} else if err := os.WriteFile(*a.outputPath, []byte(output), 0644); err != nil {
			fatal("Can't write output: %s", err.Error())
		}
		return len(diagnostics) > 0
	}

	if !*a.watch {
		if run() {
			os.Exit(1)
		}
		return
	}

	run()
	if err := watchAndRerun(*a.inputPath, run); err != nil {
		fatal("Can't watch input: %s", err.Error())
	}
}

func printDiagnostics(diagnostics []pigment.Diagnostic, noColor bool) {
	for _, d := range diagnostics {
		if noColor {
			fmt.Fprintln(os.Stderr, d.FormatCLI())
			continue
		}
		fmt.Fprintf(os.Stderr, "%s%s:%s:%s %serror:%s %s\n",
			colorGray, d.FilePath, d.Span.Start, colorReset,
			colorRed, colorReset, d.Message)
	}
}

// watchAndRerun re-runs fn whenever the input file changes.  It
// watches the containing directory rather than the file itself, so
// editors that save through an atomic rename still trigger it.
func watchAndRerun(path string, fn func() bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	baseName := filepath.Base(path)
	var (
		debounceTimer *time.Timer
		debounceCh    <-chan time.Time
	)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(watchDebounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			fn()
			debounceTimer = nil
			debounceCh = nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %s\n", err.Error())
		}
	}
}

// modulePackageName derives the default go target package qualifier
// from the enclosing module: the last segment of the module path in
// the nearest go.mod above dir.
func modulePackageName(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			path := modfile.ModulePath(data)
			if path == "" {
				return ""
			}
			parts := strings.Split(path, "/")
			return parts[len(parts)-1]
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"error:"+colorReset+" "+format+"\n", args...)
	os.Exit(1)
}
