// monitor loads a flat binary image at a chosen origin, resets a chip
// against it and drops into an interactive single-step TUI.
package main

import (
	"fmt"
	"os"

	"github.com/chacovskyle/nes6502core/bus"
	"github.com/chacovskyle/nes6502core/cpu"
	"github.com/chacovskyle/nes6502core/memory"
	"github.com/chacovskyle/nes6502core/monitor"
	cli "gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:    "monitor",
		Usage:   "interactively single-step a 6502 image",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "image", Aliases: []string{"i"}, Usage: "flat binary image to load"},
			&cli.IntFlag{Name: "origin", Aliases: []string{"o"}, Usage: "address the image is loaded at", Value: 0x8000},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	imagePath := c.String("image")
	if imagePath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("", 1)
	}
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading image: %v", err), 1)
	}

	origin := uint16(c.Int("origin"))
	ram, err := memory.NewRegion(0x0000, 0xFFFF)
	if err != nil {
		return cli.Exit(fmt.Sprintf("building RAM: %v", err), 1)
	}
	ram.Set(origin, data)
	ram.Write16(0xFFFC, origin) // reset vector points at the loaded image

	b := bus.New()
	b.Connect(ram)

	chip := cpu.New(b)
	chip.Reset()

	return monitor.Run(chip, b)
}
