package main

import (
	"errors"
	"flag"
	"io"
	"strings"

	"github.com/phyten/contrastx/internal/config"
	engineopts "github.com/phyten/contrastx/internal/engine/opts"
	"github.com/phyten/contrastx/internal/wcag"
)

// listFlag collects repeated and comma separated values.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, engineopts.SplitMulti([]string{v})...)
	return nil
}

type checkArgs struct {
	flags      config.CheckConfig
	configPath string
	require    []wcag.Criterion
	file       string
	prefix     string
	positional []string
	showHelp   bool
}

type serveArgs struct {
	flags      config.ServeConfig
	configPath string
	showHelp   bool
}

// parseCheckArgs parses the flags shared by check, batch and names. Flags
// and positional arguments may be interleaved.
func parseCheckArgs(name string, args []string) (checkArgs, error) {
	var out checkArgs
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		output, color   string
		swatch, suggest bool
		minRatio        float64
		criteria        listFlag
		require         listFlag
	)
	fs.StringVar(&output, "o", "", "")
	fs.StringVar(&output, "output", "", "")
	fs.StringVar(&color, "color", "", "")
	fs.Var(&criteria, "c", "")
	fs.Var(&criteria, "criteria", "")
	fs.BoolVar(&swatch, "swatch", false, "")
	fs.BoolVar(&suggest, "suggest", false, "")
	fs.Float64Var(&minRatio, "min-ratio", 0, "")
	fs.Var(&require, "require", "")
	fs.StringVar(&out.configPath, "config", "", "")
	if name == "batch" {
		fs.StringVar(&out.file, "f", "", "")
		fs.StringVar(&out.file, "file", "", "")
	}
	if name == "names" {
		fs.StringVar(&out.prefix, "prefix", "", "")
	}

	positional, err := parseInterleaved(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		out.showHelp = true
		return out, nil
	}
	if err != nil {
		return out, err
	}
	out.positional = positional

	set := visited(fs)
	if set["o"] || set["output"] {
		out.flags.Output = &output
	}
	if set["color"] {
		out.flags.Color = &color
	}
	if set["c"] || set["criteria"] {
		list := []string(criteria)
		out.flags.Criteria = &list
	}
	if set["swatch"] {
		out.flags.Swatch = &swatch
	}
	if set["suggest"] {
		out.flags.Suggest = &suggest
	}
	if set["min-ratio"] {
		out.flags.MinRatio = &minRatio
	}
	if len(require) > 0 {
		out.require, err = wcag.ParseCriteria(require)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func parseServeArgs(args []string) (serveArgs, error) {
	var out serveArgs
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		port int
		addr string
		open bool
	)
	fs.IntVar(&port, "p", 0, "")
	fs.IntVar(&port, "port", 0, "")
	fs.StringVar(&addr, "addr", "", "")
	fs.BoolVar(&open, "open", false, "")
	fs.StringVar(&out.configPath, "config", "", "")

	positional, err := parseInterleaved(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		out.showHelp = true
		return out, nil
	}
	if err != nil {
		return out, err
	}
	if len(positional) > 0 {
		return out, errors.New("serve takes no arguments")
	}

	set := visited(fs)
	if set["p"] || set["port"] {
		out.flags.Port = &port
	}
	if set["addr"] {
		out.flags.Addr = &addr
	}
	if set["open"] {
		out.flags.Open = &open
	}
	return out, nil
}

func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
