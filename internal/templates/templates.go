// Package templates holds the byte-exact bodies written by fix mode.
package templates

import _ "embed"

// License is the body written to LICENSE
//
//go:embed license.txt
var License string

// Gitignore is the body written to .gitignore
//
//go:embed gitignore.txt
var Gitignore string
