// Command radio-lc draws the radio light-curve figure from the simulated
// light curves and the observation spreadsheet.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chrissnell/jetfigures/internal/archive"
	"github.com/chrissnell/jetfigures/internal/constants"
	"github.com/chrissnell/jetfigures/internal/log"
	"github.com/chrissnell/jetfigures/internal/radio"
	"github.com/chrissnell/jetfigures/internal/render"
	"github.com/chrissnell/jetfigures/pkg/config"
)

func main() {
	var (
		cfgFile     = flag.String("config", "", "YAML configuration file (defaults are used when empty)")
		lcRoot      = flag.String("lc-root", "", "Light curve file name root (overrides config)")
		obsFile     = flag.String("observations", "", "Observation spreadsheet (overrides config)")
		figOut      = flag.String("out", "", "Figure file name (overrides config)")
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
	if *lcRoot != "" {
		cfg.Radio.LightCurveRoot = *lcRoot
	}
	if *obsFile != "" {
		cfg.Radio.ObservationFile = *obsFile
	}
	if *figOut != "" {
		cfg.Radio.Figure = *figOut
	}

	log.Infof("radio-lc %s", constants.Version)

	res, err := radio.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fig, err := render.RadioFigure(res, cfg.Radio.ErrorBarSigma)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building radio figure: %v\n", err)
		os.Exit(1)
	}
	if err := fig.Save(cfg.Radio.Figure); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving radio figure: %v\n", err)
		os.Exit(1)
	}
	log.Infow("wrote figure", "file", cfg.Radio.Figure)

	if *archivePath != "" {
		a, err := archive.Open(*archivePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening archive: %v\n", err)
			os.Exit(1)
		}
		defer a.Close()

		run := archive.NewRun("radio-lc", constants.Version, cfg)
		if err := a.SaveRadioRun(context.Background(), run, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error archiving run: %v\n", err)
			os.Exit(1)
		}
		log.Infow("archived run", "id", run.ID, "archive", *archivePath)
	}
}
