package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bedflow/internal/testkit"
)

func main() {
	out := flag.String("out", "services_weekly.csv", "output file path")
	format := flag.String("format", "", "output format: csv or xlsx (default inferred from -out)")
	weeks := flag.Int("weeks", 52, "number of weeks per service")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	flag.Parse()

	if *weeks < 1 || *weeks > 52 {
		fmt.Fprintln(os.Stderr, "weeks must be between 1 and 52")
		os.Exit(2)
	}

	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName == "" {
		if strings.ToLower(filepath.Ext(*out)) == ".xlsx" {
			fmtName = "xlsx"
		} else {
			fmtName = "csv"
		}
	}

	cfg := testkit.DefaultHospitalConfig()
	cfg.Weeks = *weeks
	cfg.Seed = *seed

	records := testkit.NewHospitalDataGenerator(cfg).GenerateRecords()

	var err error
	switch fmtName {
	case "csv":
		err = testkit.WriteCSV(*out, records)
	case "xlsx":
		err = testkit.WriteXLSX(*out, records)
	default:
		fmt.Fprintln(os.Stderr, "unsupported format:", fmtName)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error writing fixture:", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d records for %d services to %s\n", len(records), len(cfg.Services), *out)
}
