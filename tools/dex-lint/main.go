// dex-lint is a custom static analyzer for dex-core upstream access patterns.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/dex-core/tools/dex-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
