package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/mahesh-hegde/plotweave/app/chart"
	"github.com/mahesh-hegde/plotweave/app/config"
	"github.com/mahesh-hegde/plotweave/app/dataset"
	"github.com/mahesh-hegde/plotweave/app/render"
	"github.com/mahesh-hegde/plotweave/app/samples"
	"github.com/mahesh-hegde/plotweave/app/server"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "server":
		runServer()
	case "render":
		runRender()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: plotweave <command> [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  server        Start the plotweave server")
	fmt.Fprintln(os.Stderr, "  render        Render a chart from a file without starting the server")
}

func loadConfig(dataDir string) config.PlotweaveConfig {
	conf := config.Default()
	if dataDir == "" {
		return conf
	}
	conf.DataDir = dataDir

	confPath := path.Join(dataDir, "config.json")
	confFile, err := os.Open(confPath)
	if err != nil {
		slog.Info("no config.json, using defaults", "path", confPath)
		return conf
	}
	defer confFile.Close()

	confDec := json.NewDecoder(confFile)
	if err := confDec.Decode(&conf); err != nil {
		slog.Error("error while reading config.json", "err", err)
		os.Exit(1)
	}
	conf.ApplyDefaults()
	conf.DataDir = dataDir
	return conf
}

func runServer() {
	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	var serverConf config.ServerRuntimeConfig
	var dataDir string
	flags.StringVarP(&serverConf.Addr, "address", "a", "localhost", "Server address to bind")
	flags.IntVarP(&serverConf.Port, "port", "p", 8080, "Server port to bind")
	flags.StringVarP(&dataDir, "data-dir", "d", "",
		"data directory to read config.json and the samples DB (optional)")
	flags.StringVar(&serverConf.CertDir, "cert-dir", "", "TLS certificate directory")
	flags.BoolVar(&serverConf.AcmeEnabled, "acme", false, "obtain TLS certificates via ACME")
	flags.BoolVar(&serverConf.BehindLoadBalancer, "behind-lb", false, "trust X-Forwarded-For for rate limiting")
	flags.IntVar(&serverConf.RateLimit, "rate-limit", 0, "requests per second per client, 0 disables")
	flags.IntVar(&serverConf.GzipLevel, "gzip", 0, "gzip compression level, 0 disables")

	flags.Parse(os.Args[2:])

	conf := loadConfig(dataDir)

	db, err := samples.NewSQLiteDB(conf.DataDir)
	if err != nil {
		slog.Error("error while opening samples DB", "err", err)
		os.Exit(1)
	}
	sampleStore := samples.NewSampleStore(db)
	if err := sampleStore.Init(context.Background()); err != nil {
		slog.Error("error while loading sample datasets", "err", err)
		os.Exit(1)
	}

	datasets := dataset.NewStore(conf.DatasetTTL())
	controller := server.NewPlotweaveController(&conf, datasets, sampleStore)

	fmt.Printf("Starting server on %s:%d\n", serverConf.Addr, serverConf.Port)
	server.StartServer(controller, &conf, serverConf)
}

func runRender() {
	flags := pflag.NewFlagSet("render", pflag.ExitOnError)
	var input, output, title, xLabel, yLabel string
	var xAttrs, yAttrs []string
	var noHeader bool
	flags.StringVarP(&input, "input", "i", "", "Input data file (required)")
	flags.StringVarP(&output, "output", "o", "", "Output PNG file (defaults to the plot title)")
	flags.StringVarP(&title, "title", "t", "", "Plot title")
	flags.StringSliceVarP(&xAttrs, "x-attrs", "x", nil, "X axis attributes (required)")
	flags.StringSliceVarP(&yAttrs, "y-attrs", "y", nil, "Y axis attributes (required)")
	flags.StringVar(&xLabel, "x-label", "", "X axis label")
	flags.StringVar(&yLabel, "y-label", "", "Y axis label")
	flags.BoolVar(&noHeader, "no-header", false, "input file has no header row")

	flags.Parse(os.Args[2:])

	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		os.Exit(1)
	}

	f, err := os.Open(input)
	if err != nil {
		slog.Error("error while opening input file", "err", err)
		os.Exit(1)
	}
	defer f.Close()

	ds, err := dataset.Parse(f, input, !noHeader)
	if err != nil {
		slog.Error("could not load input file", "err", err)
		os.Exit(1)
	}

	plotConf := chart.Config{
		Title:       title,
		XAxisLabel:  xLabel,
		YAxisLabel:  yLabel,
		XAttributes: xAttrs,
		YAttributes: yAttrs,
	}
	plot, err := chart.Build(ds, plotConf)
	if err != nil {
		slog.Error("could not build plot", "err", err)
		os.Exit(1)
	}

	conf := config.Default()
	png, err := render.PNG(plot,
		vg.Points(float64(conf.ChartWidth)), vg.Points(float64(conf.ChartHeight)))
	if err != nil {
		slog.Error("could not render plot", "err", err)
		os.Exit(1)
	}

	if output == "" {
		output = plotConf.ExportFilename()
	}
	if err := os.WriteFile(output, png, 0o644); err != nil {
		slog.Error("could not write output file", "err", err)
		os.Exit(1)
	}
	slog.Info("wrote chart", "file", output, "lines", len(plot.Combinations), "rows", len(plot.Rows))
}
