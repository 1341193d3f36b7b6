package main

import "fmt"

func runVersion() int {
	fmt.Printf("pictopt version %s\n", cliVersion)
	return 0
}

func runLicenses() int {
	fmt.Println(`pictopt bundles the following third-party Go modules:

  github.com/rs/zerolog        MIT
  gopkg.in/yaml.v3              Apache-2.0/MIT
  github.com/ajstarks/svgo      Apache-2.0
  pgregory.net/rapid             Mozilla Public License 2.0

See each module's repository for the full license text.`)
	return 0
}

// runWizard is the external-collaborator stub (spec.md §1): the interactive
// wizard UI itself is out of scope for this core.
func runWizard() int {
	fmt.Println("pictopt wizard: the interactive wizard is not part of this core; use `pictopt generate` directly.")
	return 2
}
