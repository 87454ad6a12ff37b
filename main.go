// Package main is the entry point for the cotocowind application.
package main

import (
	"github.com/cotocowind/cotocowind/cmd"
	"github.com/cotocowind/cotocowind/config"
	"github.com/cotocowind/cotocowind/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
