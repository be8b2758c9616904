package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/RecipeLab/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("RecipeLab"), kong.Description("RecipeLab keeps recipes and a log of every time they were cooked."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
