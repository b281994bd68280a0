// Command salesreport runs the sales reporting batch pipeline: it reads
// one tabular sales dataset, cleans and aggregates it, and regenerates
// every report artifact in the output directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"salescli/internal/app"
	"salescli/internal/infrastructure"
	"salescli/pkg/contracts"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	application.Logger.Info("Starting",
		slog.String("version", contracts.Version))

	if err := application.Run(context.Background()); err != nil {
		application.Logger.Error("Pipeline run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
