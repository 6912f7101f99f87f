package main

import (
	"github.com/nestimate/nestimate/cmd/cli/root"

	_ "github.com/nestimate/nestimate/cmd/cli/predict"
	_ "github.com/nestimate/nestimate/cmd/cli/properties"
	_ "github.com/nestimate/nestimate/cmd/cli/users"
)

func main() {
	root.Execute()
}
