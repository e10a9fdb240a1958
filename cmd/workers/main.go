package main

import (
	"github.com/bornholm/workers/internal/command"
	"github.com/bornholm/workers/internal/command/add"
	"github.com/bornholm/workers/internal/command/display"
	"github.com/bornholm/workers/internal/command/selection"
)

func main() {
	command.Main(
		"workers", "record and list workers in a local database",
		add.Command(),
		display.Command(),
		selection.Command(),
	)
}
