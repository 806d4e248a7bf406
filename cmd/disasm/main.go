// disasm loads a flat binary image of 6502 code and lists it to
// stdout starting at a chosen address. It does not follow control
// flow: a JMP or branch disassembles as that one instruction, not its
// target, so code interleaved with data will desync after the data
// bytes are misread as opcodes.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/chacovskyle/nes6502core/disassemble"
	"github.com/chacovskyle/nes6502core/memory"
	cli "gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:    "disasm",
		Usage:   "disassemble a flat 6502 binary image",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "flat binary image to disassemble",
			},
			&cli.IntFlag{
				Name:    "origin",
				Aliases: []string{"o"},
				Usage:   "address the image is loaded at",
				Value:   0x8000,
			},
			&cli.IntFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "address to start disassembling from (defaults to origin)",
				Value:   -1,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of instructions to list, 0 means until the image runs out",
				Value:   0,
			},
		},
		Action: run,
	}
	sort.Sort(cli.FlagsByName(app.Flags))
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
	end := uint32(origin) + uint32(len(data)) - 1
	if end > 0xFFFF {
		end = 0xFFFF
	}
	region, err := memory.NewRegion(origin, uint16(end))
	if err != nil {
		return cli.Exit(fmt.Sprintf("building image region: %v", err), 1)
	}
	region.Set(origin, data)

	start := origin
	if c.Int("start") >= 0 {
		start = uint16(c.Int("start"))
	}

	if n := c.Int("count"); n > 0 {
		for _, line := range disassemble.Listing(start, region, n) {
			fmt.Println(line)
		}
		return nil
	}

	// No explicit count: disassemble by consumed byte count rather
	// than PC, since PC can wrap before the image itself runs out.
	pc := start
	consumed := 0
	for consumed < len(data) {
		line, n := disassemble.Step(pc, region)
		fmt.Println(line)
		if n <= 0 {
			n = 1
		}
		pc += uint16(n)
		consumed += n
	}
	return nil
}
