package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phyten/contrastx/internal/colornames"
	"github.com/phyten/contrastx/internal/config"
	"github.com/phyten/contrastx/internal/engine"
	engineopts "github.com/phyten/contrastx/internal/engine/opts"
	"github.com/phyten/contrastx/internal/output"
	"github.com/phyten/contrastx/internal/termcolor"
	"github.com/phyten/contrastx/internal/wcag"
)

func (a *app) checkCmd(args []string) error {
	ca, err := parseCheckArgs("contrastx", args)
	if err != nil {
		return err
	}
	if ca.showHelp {
		a.printUsage()
		return nil
	}
	if len(ca.positional) != 2 {
		return fmt.Errorf("expected FOREGROUND and BACKGROUND, got %d argument(s) (see contrastx -h)", len(ca.positional))
	}
	settings, o, err := a.resolveCheck(ca)
	if err != nil {
		return err
	}
	o.Foreground = ca.positional[0]
	o.Background = ca.positional[1]
	res, err := engine.Run(o)
	if err != nil {
		return err
	}
	results := []*engine.Result{res}
	if err := a.emit(settings, results, true); err != nil {
		return err
	}
	return checkRequired(results, ca.require)
}

func (a *app) batchCmd(args []string) error {
	ca, err := parseCheckArgs("batch", args)
	if err != nil {
		return err
	}
	if ca.showHelp {
		a.printUsage()
		return nil
	}
	if len(ca.positional) > 0 {
		return fmt.Errorf("batch reads pairs from -f or stdin, got %d argument(s)", len(ca.positional))
	}
	settings, o, err := a.resolveCheck(ca)
	if err != nil {
		return err
	}

	var in io.Reader = a.stdin
	if ca.file != "" && ca.file != "-" {
		f, err := os.Open(ca.file)
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}
	pairs, err := engine.ParsePairs(in)
	if err != nil {
		return err
	}
	results, err := engine.RunBatch(pairs, o)
	if err != nil {
		return err
	}
	if err := a.emit(settings, results, false); err != nil {
		return err
	}
	return checkRequired(results, ca.require)
}

func (a *app) namesCmd(args []string) error {
	ca, err := parseCheckArgs("names", args)
	if err != nil {
		return err
	}
	if ca.showHelp {
		a.printUsage()
		return nil
	}
	if len(ca.positional) > 0 && ca.prefix == "" {
		ca.prefix = ca.positional[0]
	}
	settings, _, err := a.resolveCheck(ca)
	if err != nil {
		return err
	}
	return output.WriteNames(a.stdout, settings.Output, colornames.Entries(ca.prefix), a.tableOptions(settings))
}

// resolveCheck merges defaults, config file, environment and flags into the
// output settings and the engine options. Required criteria are always
// evaluated even when --criteria leaves them out.
func (a *app) resolveCheck(ca checkArgs) (config.CheckSettings, engine.Options, error) {
	layers, err := config.LoadLayers(a.cwd, ca.configPath, a.getenv)
	if err != nil {
		return config.CheckSettings{}, engine.Options{}, err
	}
	return checkOptions(layers, ca)
}

func checkOptions(layers config.Layers, ca checkArgs) (config.CheckSettings, engine.Options, error) {
	settings, err := layers.Check(ca.flags)
	if err != nil {
		return settings, engine.Options{}, err
	}
	o := engineopts.Defaults()
	settings.ApplyToOptions(&o)
	for _, c := range ca.require {
		if !containsCriterion(o.Criteria, c) {
			o.Criteria = append(o.Criteria, c)
		}
	}
	if err := engineopts.NormalizeAndValidate(&o); err != nil {
		return settings, o, err
	}
	return settings, o, nil
}

func (a *app) tableOptions(settings config.CheckSettings) output.TableOptions {
	mode, err := termcolor.ParseMode(settings.Color)
	if err != nil {
		mode = termcolor.ModeAuto
	}
	return output.TableOptions{
		Color:  termcolor.Resolve(mode, a.tty, termcolor.EnvMap(a.environ)),
		Swatch: settings.Swatch,
	}
}

func (a *app) emit(settings config.CheckSettings, results []*engine.Result, single bool) error {
	return output.Write(a.stdout, settings.Output, results, single, a.tableOptions(settings))
}

func checkRequired(results []*engine.Result, required []wcag.Criterion) error {
	if len(required) == 0 {
		return nil
	}
	for _, r := range results {
		for _, c := range required {
			if r.Checks.Get(c) != wcag.Pass {
				return errRequirement
			}
		}
	}
	return nil
}

func containsCriterion(list []wcag.Criterion, c wcag.Criterion) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}
