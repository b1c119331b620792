package internalcheck

import (
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The entire point of the package layout is that exactly one package talks
// to the native library. Everything else goes through it.
func TestCgoConfinedToBindings(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/bdchik/notcurses-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	fset := token.NewFileSet()

	for _, pkg := range pkgs {
		allowed := strings.HasSuffix(pkg.PkgPath, "internal/bindings")
		for _, file := range pkg.GoFiles {
			// Parse the on-disk file: cgo preprocessing would otherwise
			// hide the "C" import in the loaded syntax.
			f, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", file, err)
			}
			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "C" && !allowed {
					findings = append(findings, file)
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Errorf("cgo imports outside internal/bindings:\n  %s",
			strings.Join(findings, "\n  "))
	}
}
