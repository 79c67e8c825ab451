// Package main is the entry point for the gifgrab application.
package main

import (
	"github.com/gifgrab-cli/gifgrab/cache"
	"github.com/gifgrab-cli/gifgrab/cmd"
	"github.com/gifgrab-cli/gifgrab/config"
	"github.com/gifgrab-cli/gifgrab/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
