// Package hostplugin loads native `.so`/`.dylib` plugins into spec.md §6's
// `$p.lib` registry, shaped after the teacher's plugin daemon: a
// goinvoke-based FFI loader keyed by the host OS's shared-library
// extension, reading back one exported C string via the same
// null-terminated-buffer convention the daemon's Dispatch call used. Unlike
// the daemon, a plugin here contributes only a static export-name list
// (resolve.LibPlugin.Exports) at load time — no JSON request/response
// dispatch loop, since the renderer only ever needs to know a plugin
// export's NAME to resolve an identifier to it; the actual call happens in
// emitted JS at runtime, not inside this translator.
package hostplugin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/jamesits/goinvoke"

	"github.com/kent-wong/my-processing/internal/resolve"
)

// pluginFuncs mirrors the teacher's PluginFuncs: a struct of *goinvoke.Proc
// fields whose `func` tags goinvoke.Unmarshal resolves against the shared
// library's exported symbols.
type pluginFuncs struct {
	ExportNames *goinvoke.Proc `func:"ExportNames"`
}

// Load loads one native plugin by name from dir and returns the
// resolve.LibPlugin populated from its ExportNames() call: a
// null-terminated JSON string-array the plugin returns listing every
// global name it contributes under `$p.lib.<name>`.
func Load(dir, name string) (*resolve.LibPlugin, error) {
	ext := ".so"
	if runtime.GOOS == "darwin" {
		ext = ".dylib"
	}

	path := filepath.Join(dir, name+ext)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("plugin not found: %s", path)
	}

	funcs := &pluginFuncs{}
	if err := goinvoke.Unmarshal(path, funcs); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if funcs.ExportNames == nil {
		return nil, fmt.Errorf("plugin %s missing ExportNames", path)
	}

	ret, _, _ := funcs.ExportNames.Call()
	raw := gostring(unsafe.Pointer(ret))

	var names []string
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			return nil, fmt.Errorf("parsing %s export list: %w", path, err)
		}
	}
	return &resolve.LibPlugin{Exports: names}, nil
}

// gostring converts a null-terminated C string pointer to a Go string,
// mirroring the teacher daemon's gostring helper exactly (including its
// 1MB runaway-scan safety limit).
func gostring(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	var length int
	for {
		if *(*byte)(unsafe.Pointer(uintptr(p) + uintptr(length))) == 0 {
			break
		}
		length++
		if length > 1024*1024 {
			break
		}
	}
	return string(unsafe.Slice((*byte)(p), length))
}
