// Package main provides the cfgtrack command-line interface.
package main

import (
	"github.com/Cyclone1070/cfgtrack/cmd/cfgtrack/internal"
)

func main() {
	internal.Execute()
}
