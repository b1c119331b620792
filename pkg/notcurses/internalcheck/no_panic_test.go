package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The wrapper's contract is explicit error returns. A panic in library code
// would tear down an application with the terminal still in notcurses
// mode.
func TestNoPanicsInWrapper(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg,
		"github.com/bdchik/notcurses-go/pkg/notcurses",
		"github.com/bdchik/notcurses-go/pkg/notcurses/visual",
	)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			filename := pkg.Fset.Position(file.Pos()).Filename
			if strings.HasSuffix(filename, "_test.go") {
				continue
			}
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				ident, ok := call.Fun.(*ast.Ident)
				if !ok || ident.Name != "panic" {
					return true
				}
				pos := pkg.Fset.Position(call.Pos())
				findings = append(findings, fmt.Sprintf("%s:%d", pos.Filename, pos.Line))
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Errorf("panic calls in wrapper packages:\n  %s",
			strings.Join(findings, "\n  "))
	}
}
