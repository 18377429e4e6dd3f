package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	rulecheck "github.com/reoring/rulecheck"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "rulecheck CLI\n\nUsage:\n  rulecheck validate [-relaxed] [-config file.yaml] [-columns a,b,c] [-fail-fast] [-fail-on-warning] [-json] [-q] rules.json...\n\nExit status: 0 all files valid, 1 at least one invalid, 2 usage or load error.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var (
		relaxedIn  bool
		configPath string
		columnsCSV string
		failFast   bool
		failOnWarn bool
		asJSON     bool
		quiet      bool
	)
	fs.BoolVar(&relaxedIn, "relaxed", false, "tolerate comments and trailing commas in rule files")
	fs.StringVar(&configPath, "config", "", "YAML file overriding validator limits")
	fs.StringVar(&columnsCSV, "columns", "", "comma-separated dataset column hint")
	fs.BoolVar(&failFast, "fail-fast", false, "stop at the first error")
	fs.BoolVar(&failOnWarn, "fail-on-warning", false, "treat warnings as errors")
	fs.BoolVar(&asJSON, "json", false, "emit results as JSON")
	fs.BoolVar(&quiet, "q", false, "suppress per-issue output, print verdicts only")
	_ = fs.Parse(args)
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		os.Exit(2)
	}

	cfg := rulecheck.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = rulecheck.LoadConfig(configPath)
		if err != nil {
			fatalf("%v", err)
		}
	}
	opt := rulecheck.ValidateOpt{FailFast: failFast, FailOnWarning: failOnWarn}
	if columnsCSV != "" {
		opt.Columns = splitCSV(columnsCSV)
	}
	v := rulecheck.New(cfg)

	exit := 0
	for _, f := range files {
		rules, err := loadFile(f, relaxedIn)
		if err != nil {
			fatalf("%s: %v", f, err)
		}
		res := v.Validate(rules, opt)
		report(f, res, asJSON, quiet)
		if !res.Valid {
			exit = 1
		}
	}
	os.Exit(exit)
}

func loadFile(path string, relaxedIn bool) (rulecheck.Schema, error) {
	if relaxedIn {
		return rulecheck.LoadRelaxedFile(path)
	}
	return rulecheck.LoadFile(path)
}

func report(file string, res rulecheck.Result, asJSON, quiet bool) {
	if asJSON {
		out, err := json.MarshalIndent(struct {
			File string `json:"file"`
			rulecheck.Result
		}{File: file, Result: res}, "", "  ")
		if err != nil {
			fatalf("encode result: %v", err)
		}
		fmt.Println(string(out))
		return
	}
	if !quiet {
		for _, is := range res.Issues {
			fmt.Println(is)
		}
	}
	verdict := "OK"
	if !res.Valid {
		verdict = "INVALID"
	}
	fmt.Printf("%s: %s (%d rules, %d errors, %d warnings)\n",
		file, verdict, len(res.Rules), len(res.Errors()), len(res.Warnings()))
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "rulecheck: "+format+"\n", args...)
	os.Exit(2)
}
