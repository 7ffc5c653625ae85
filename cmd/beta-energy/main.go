// Command beta-energy draws the jet velocity and kinetic energy figures from
// the shock-position and mass/energy simulation output.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chrissnell/jetfigures/internal/archive"
	"github.com/chrissnell/jetfigures/internal/constants"
	"github.com/chrissnell/jetfigures/internal/jet"
	"github.com/chrissnell/jetfigures/internal/log"
	"github.com/chrissnell/jetfigures/internal/render"
	"github.com/chrissnell/jetfigures/pkg/config"
)

func main() {
	var (
		cfgFile     = flag.String("config", "", "YAML configuration file (defaults are used when empty)")
		shockFile   = flag.String("shock", "", "Shock position file (overrides config)")
		energyFile  = flag.String("energy", "", "Mass and energy file (overrides config)")
		betaOut     = flag.String("beta-out", "", "Beta figure file name (overrides config)")
		energyOut   = flag.String("energy-out", "", "Kinetic energy figure file name (overrides config)")
		csvOutput   = flag.String("csv", "", "Optional CSV output file for the merged table")
		archivePath = flag.String("archive", "", "Optional SQLite archive to record this run in")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	override(&cfg.BetaEnergy.ShockPositionFile, *shockFile)
	override(&cfg.BetaEnergy.MassEnergyFile, *energyFile)
	override(&cfg.BetaEnergy.BetaFigure, *betaOut)
	override(&cfg.BetaEnergy.EnergyFigure, *energyOut)

	log.Infof("beta-energy %s", constants.Version)

	res, err := jet.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := jet.WriteDiagnostics(os.Stdout, res.Epochs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing diagnostics: %v\n", err)
		os.Exit(1)
	}

	beta, err := render.BetaFigure(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building beta figure: %v\n", err)
		os.Exit(1)
	}
	energy, err := render.EnergyFigure(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building energy figure: %v\n", err)
		os.Exit(1)
	}

	for _, out := range []struct {
		fig  *render.Figure
		file string
	}{
		{beta, cfg.BetaEnergy.BetaFigure},
		{energy, cfg.BetaEnergy.EnergyFigure},
	} {
		if err := out.fig.Save(out.file); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving figure %s: %v\n", out.file, err)
			os.Exit(1)
		}
		log.Infow("wrote figure", "file", out.file)
	}

	if *csvOutput != "" {
		if err := exportCSV(*csvOutput, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		log.Infow("exported merged table", "file", *csvOutput)
	}

	if *archivePath != "" {
		if err := record(*archivePath, cfg, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error archiving run: %v\n", err)
			os.Exit(1)
		}
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func exportCSV(filename string, res *jet.Result) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := jet.WriteCSV(file, res.Samples); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func record(path string, cfg *config.ConfigData, res *jet.Result) error {
	a, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer a.Close()

	run := archive.NewRun("beta-energy", constants.Version, cfg)
	if err := a.SaveJetRun(context.Background(), run, res); err != nil {
		return err
	}
	log.Infow("archived run", "id", run.ID, "archive", path)
	return nil
}
