// pdejs translates a Processing sketch into JavaScript, mirroring the
// teacher's procyon driver: a flag-parsed CLI that reads one source input,
// runs it through the translator, and reports diagnostics to stderr while
// writing only the emitted program to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kent-wong/my-processing/internal/cache"
	"github.com/kent-wong/my-processing/internal/hostplugin"
	"github.com/kent-wong/my-processing/internal/resolve"
	"github.com/kent-wong/my-processing/pkg/translate"
)

var (
	strict   = flag.Bool("strict", false, "fail instead of continuing when translation reports an error")
	dryRun   = flag.Bool("dry-run", false, "translate but print nothing to stdout, reporting size only")
	version  = flag.Bool("version", false, "print version and exit")
	cacheDir = flag.String("cache", "", "directory of a translation cache to read/write (disabled if empty)")
	libDir   = flag.String("lib-dir", "", "directory to load $p.lib native plugins from")
	libs     = flag.String("libs", "", "comma-separated list of plugin names to load from -lib-dir")
)

const versionStr = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdejs - Processing to JavaScript translator\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdejs [options] < sketch.pde > sketch.js\n")
		fmt.Fprintf(os.Stderr, "  pdejs [options] sketch.pde > sketch.js\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("pdejs version %s\n", versionStr)
		os.Exit(0)
	}

	source, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	if len(source) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no input provided\n")
		flag.Usage()
		os.Exit(1)
	}

	opts := resolve.DefaultOptions()
	if err := loadPlugins(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading plugins: %v\n", err)
		os.Exit(1)
	}

	var c *cache.Cache
	var hash string
	if *cacheDir != "" {
		c, err = cache.Open(cache.Config{Dir: *cacheDir})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening cache: %v\n", err)
			os.Exit(1)
		}
		defer c.Close()

		hash = cache.HashSource(string(source))
		if cached, ok, err := c.Get(hash); err == nil && ok {
			writeResult(cached)
			return
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache lookup failed: %v\n", err)
		}
	}

	result, err := translate.Translate(string(source), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if *strict {
			os.Exit(1)
		}
	}

	if c != nil {
		if _, err := c.Put(hash, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
		}
	}

	writeResult(result)
}

func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func loadPlugins(opts *resolve.Options) error {
	if *libDir == "" || *libs == "" {
		return nil
	}
	for _, name := range splitCommaList(*libs) {
		plugin, err := hostplugin.Load(*libDir, name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		opts.HostLib[name] = plugin
	}
	return nil
}

func splitCommaList(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func writeResult(result string) {
	if *dryRun {
		fmt.Fprintf(os.Stderr, "Dry run - would write %d bytes\n", len(result))
		return
	}
	fmt.Print(result)
}
