// Command gen-builtins regenerates internal/resolve/builtins_table.go from
// internal/gen's authoritative member lists. Run it after editing
// internal/gen.GlobalRuntimeMembers or PConstantsMembers.
package main

import (
	"fmt"
	"os"

	"github.com/kent-wong/my-processing/internal/gen"
)

const outPath = "internal/resolve/builtins_table.go"

func main() {
	src, err := gen.Generate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen-builtins:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(src), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "gen-builtins:", err)
		os.Exit(1)
	}
}
