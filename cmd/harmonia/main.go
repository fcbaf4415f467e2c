// Harmonia - a colour harmony toolkit
//
// Harmonia converts colours between notations and derives complementary,
// analogous, triadic, tetradic and monochrome schemes and palettes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/harmonia/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
