/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/massung/chip8-vm/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Options are the command line settings of the emulator.
type Options struct {
	ROM    string
	Font   string
	Speed  int
	Scale  int
	Paused bool
	Debug  bool
	Quiet  bool
}

const (
	minScale     = 1
	maxScale     = 10
	defaultScale = 5
)

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command line syntax and all flags.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Fprintf(os.Stderr, "%s\n\n", e.msg)
	}
	fmt.Fprintf(os.Stderr, "usage: chip8 [options] [rom file]\n\n")
	e.flags.SetOutput(os.Stderr)
	e.flags.PrintDefaults()
	fmt.Fprintln(os.Stderr)
}

// ParseFlags parses the command line arguments, excluding the program name.
// The ROM may be given with -rom or as the only positional argument.
func ParseFlags(args []string) (Options, error) {
	flags := flag.NewFlagSet("chip8", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	switch rest := flags.Args(); {
	case len(rest) > 1:
		return opts, &UsageError{flags: flags, msg: fmt.Sprintf("unexpected argument %s after the ROM file", rest[1])}
	case len(rest) == 1 && opts.ROM != "":
		return opts, &UsageError{flags: flags, msg: "ROM given both as -rom and as an argument"}
	case len(rest) == 1:
		opts.ROM = rest[0]
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	flags.StringVar(&opts.ROM, "rom", "", "name of the ROM file to load at startup")
	flags.StringVar(&opts.Font, "font", "font.bmp", "bitmap font used by the debug panels")
	flags.IntVar(&opts.Speed, "speed", chip8.DefaultSpeed, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", defaultScale, "size of a CHIP-8 pixel on screen")
	flags.BoolVar(&opts.Paused, "paused", false, "start with emulation paused")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "only log errors")
}

func validateOptions(opts Options) error {
	if opts.Speed < chip8.MinSpeed || opts.Speed > chip8.MaxSpeed {
		return fmt.Errorf("speed %d out of range %d-%d", opts.Speed, chip8.MinSpeed, chip8.MaxSpeed)
	}
	if opts.Scale < minScale || opts.Scale > maxScale {
		return fmt.Errorf("scale %d out of range %d-%d", opts.Scale, minScale, maxScale)
	}
	if opts.Debug && opts.Quiet {
		return fmt.Errorf("-debug and -q can not be combined")
	}
	return nil
}

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
