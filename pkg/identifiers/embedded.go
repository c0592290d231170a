package identifiers

import _ "embed"

// embeddedSpecs is the built-in identifier spec table.
//
//go:embed identifiers.yaml
var embeddedSpecs []byte
