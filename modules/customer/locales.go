package customer

import "embed"

// Locales holds the message catalogues of the customer form, one YAML file per
// language under LocalesDir.
//
//go:embed locales/*.yaml
var Locales embed.FS

const LocalesDir = "locales"
