// Package loopcall detects sequential upstream calls inside loops.
package loopcall

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects upstream calls made one by one inside a loop body.
// Calls inside a function literal (the errgroup g.Go pattern) are concurrent
// and are not reported.
var Analyzer = &analysis.Analyzer{
	Name:     "loopcall",
	Doc:      "detects upstream catalog calls inside loops that should fan out through errgroup",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// upstreamMethods are the ports.CatalogAPI and ports.AssetFetcher calls
// that each cost one HTTP round trip.
var upstreamMethods = map[string]bool{
	"ListCreatures":     true,
	"GetCreature":       true,
	"GetSpecies":        true,
	"GetTypeRelations":  true,
	"ListTypes":         true,
	"GetEvolutionChain": true,
	"FetchAsset":        true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.FuncLit:
				return false
			case *ast.CallExpr:
				sel, ok := node.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				if upstreamMethods[sel.Sel.Name] {
					pass.Reportf(node.Pos(),
						"sequential upstream call: %s inside loop - fan out with errgroup",
						sel.Sel.Name)
				}
			}
			return true
		})
	})

	return nil, nil
}
