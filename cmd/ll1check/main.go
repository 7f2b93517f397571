/*
Ll1check reads a context-free grammar written in the project's grammar
meta-language, reports its FIRST/FOLLOW sets and LL(1) rule table, and, if
the grammar is LL(1), checks one line of target input against it with a
table-driven panic-mode acceptor.

Usage:

	ll1check [flags]

The flags are:

	-v, --version
		Give the current version of ll1check and then exit.

	-g, --grammar FILE
		Read the grammar from FILE. Defaults to "input.txt" in the current
		working directory.

	-i, --input STRING
		Check STRING against the grammar instead of prompting for a line on
		standard input.

	-d, --direct
		Force reading directly from stdin instead of going through GNU
		readline where possible.

	--config FILE
		Load defaults for --grammar and --cache from a TOML config file
		(keys grammar_path and cache_path). Flags given explicitly on the
		command line take precedence.

	--cache FILE
		Cache the parsed grammar to FILE and reuse it on the next run instead
		of re-parsing the grammar source, refreshing the cache whenever the
		grammar file is newer.

Exit code is 0 if the grammar is LL(1) and the input is accepted, and
nonzero on any error, on a non-LL(1) grammar, or on a rejected input.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/ll1check"
	"github.com/dekarrin/ll1check/frontend"
	"github.com/dekarrin/ll1check/internal/input"
	"github.com/dekarrin/ll1check/internal/version"
)

const (
	// ExitSuccess indicates the grammar was LL(1) and the input was accepted.
	ExitSuccess = iota

	// ExitInitError indicates a problem reading or analyzing the grammar.
	ExitInitError

	// ExitNotLL1 indicates the grammar is not LL(1); the acceptor did not run.
	ExitNotLL1

	// ExitRejected indicates the acceptor ran and rejected the input.
	ExitRejected
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	grammarFile = pflag.StringP("grammar", "g", "input.txt", "The grammar source file to analyze")
	inputStr    = pflag.StringP("input", "i", "", "Check this string instead of prompting for one on standard input")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	configFile  = pflag.String("config", "", "Load flag defaults from a TOML config file")
	cacheFile   = pflag.String("cache", "", "Cache the parsed grammar to this file and reuse it on the next run")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if *configFile != "" {
		cfg, err := ll1check.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		if !pflag.CommandLine.Changed("grammar") && cfg.GrammarPath != "" {
			*grammarFile = cfg.GrammarPath
		}
		if !pflag.CommandLine.Changed("cache") && cfg.CachePath != "" {
			*cacheFile = cfg.CachePath
		}
	}

	checker, err := loadChecker(*grammarFile, *cacheFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	firstFollow, ruleTable := checker.Report()
	fmt.Println(firstFollow)
	fmt.Println(ruleTable)

	if !checker.IsLL1() {
		fmt.Println(checker.Verdict())
		returnCode = ExitNotLL1
		return
	}

	target, err := readTargetInput(*inputStr, *forceDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	result := checker.Accept(target)
	for _, f := range result.Failures {
		fmt.Println(f.Message)
	}
	if result.Accepted {
		fmt.Println("Input Accepted")
	} else {
		fmt.Println("Input Rejected")
		returnCode = ExitRejected
	}
}

func loadChecker(grammarPath, cachePath string) (*ll1check.Checker, error) {
	if cachePath != "" {
		if cacheFresherThan(cachePath, grammarPath) {
			checker, err := ll1check.LoadCached(cachePath)
			if err == nil {
				return checker, nil
			}
			// fall through and re-parse on any cache read/decode problem
		}
	}

	f, err := os.Open(grammarPath)
	if err != nil {
		return nil, fmt.Errorf("open grammar file: %w", err)
	}
	defer f.Close()

	prods, err := frontend.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar file: %w", err)
	}

	checker, err := ll1check.Analyze(prods)
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		if err := checker.SaveCache(cachePath); err != nil {
			return nil, err
		}
	}

	return checker, nil
}

func cacheFresherThan(cachePath, grammarPath string) bool {
	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return false
	}
	grammarInfo, err := os.Stat(grammarPath)
	if err != nil {
		return false
	}
	return cacheInfo.ModTime().After(grammarInfo.ModTime())
}

func readTargetInput(preset string, forceDirect bool) (string, error) {
	if preset != "" {
		return preset, nil
	}

	useReadline := !forceDirect && isInteractiveStdin()

	const prompt = "please write a input: "

	if useReadline {
		reader, err := input.NewInteractiveReader(prompt)
		if err != nil {
			return "", fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
		defer reader.Close()
		return reader.ReadLine()
	}

	fmt.Print(prompt)
	reader := input.NewDirectReader(os.Stdin)
	defer reader.Close()
	return reader.ReadLine()
}

func isInteractiveStdin() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
