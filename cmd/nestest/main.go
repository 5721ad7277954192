// Command nestest drives a Processor against ROM images: a plain run to
// exhaustion, an interactive single-stepping debugger, or a line-by-line
// replay against the published nestest reference log.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"nes6502/bus"
	"nes6502/cpu"
	"nes6502/debugger"
	"nes6502/loader"
	"nes6502/trace"
	"nes6502/video"
)

func main() {
	app := &cli.App{
		Name:    "nestest",
		Usage:   "Run, debug, or replay a 6502/2A03 program against nestest",
		Version: "v0.1.0",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "execute an iNES ROM until a fatal opcode or step limit",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Aliases: []string{"n"}, Value: 100000, Usage: "maximum instructions to execute"},
				},
				Action: runCommand,
			},
			{
				Name:  "debug",
				Usage: "launch the interactive single-stepping TUI on a raw PRG image",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "origin", Aliases: []string{"o"}, Value: uint64(loader.DefaultOrigin), Usage: "load address"},
				},
				Action: debugCommand,
			},
			{
				Name:  "replay",
				Usage: "step an iNES ROM against a nestest-format reference log, reporting the first mismatch",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log", Aliases: []string{"l"}, Required: true, Usage: "path to the reference log"},
				},
				Action: replayCommand,
			},
		},
	}

	for _, cmd := range app.Commands {
		sort.Sort(cli.FlagsByName(cmd.Flags))
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "nestest:", err)
		os.Exit(1)
	}
}

func romArg(c *cli.Context) ([]byte, error) {
	path := c.Args().First()
	if path == "" {
		return nil, cli.Exit("a ROM path is required", 86)
	}
	return os.ReadFile(path)
}

func runCommand(c *cli.Context) error {
	rom, err := romArg(c)
	if err != nil {
		return err
	}

	b := bus.New()
	if err := loader.LoadINES(b, rom); err != nil {
		return err
	}

	proc := cpu.NewNESProcessor()
	clk := video.New()
	limit := c.Int("steps")

	for i := 0; i < limit; i++ {
		if err := proc.Step(b); err != nil {
			return err
		}
		clk.Advance(proc.Cycles)
	}

	fmt.Printf("executed %d instructions; PC=$%04X scanline=%d\n", limit, proc.PC, clk.Scanline())
	return nil
}

func debugCommand(c *cli.Context) error {
	rom, err := romArg(c)
	if err != nil {
		return err
	}
	return debugger.Run(rom, uint16(c.Uint64("origin")))
}

func replayCommand(c *cli.Context) error {
	rom, err := romArg(c)
	if err != nil {
		return err
	}

	logFile, err := os.Open(c.String("log"))
	if err != nil {
		return err
	}
	defer logFile.Close()

	b := bus.New()
	if err := loader.LoadINES(b, rom); err != nil {
		return err
	}

	proc := cpu.NewNESProcessor()
	clk := video.New()

	scanner := bufio.NewScanner(logFile)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		want, ok := trace.ParseLine(scanner.Text())
		if !ok {
			continue
		}

		got := trace.Line{
			PC:  proc.PC,
			A:   proc.A,
			X:   proc.X,
			Y:   proc.Y,
			P:   proc.P(),
			SP:  proc.S,
			CYC: uint32(clk.Column()),
		}

		if diffs := trace.Diff(got, want); len(diffs) > 0 {
			return fmt.Errorf("line %d: mismatch: %v", lineNo, diffs)
		}

		if err := proc.Step(b); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		clk.Advance(proc.Cycles)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("replayed %d lines with no mismatch\n", lineNo)
	return nil
}
