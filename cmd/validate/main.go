package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ethanbaker/gestuab/pkg/memorandum"
	"gopkg.in/yaml.v3"
)

// memorandumFile is the layout of the YAML input
type memorandumFile struct {
	Memorandums []*memorandum.Memorandum `yaml:"memorandums"`
}

// Validate memoranda read from a YAML file
func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code: 0 when every memorandum
// is valid, 1 when any failed validation and 2 on usage or input errors
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags.SetOutput(stderr)
	file := flags.String("file", "", "YAML file with a 'memorandums' list")
	ruleSet := flags.String("rule-set", string(memorandum.RuleSetDefault), "rule set to apply (default or update)")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *file == "" {
		fmt.Fprintln(stderr, "[VALIDATE]: -file is required")
		flags.Usage()
		return 2
	}

	set, err := memorandum.ParseRuleSet(*ruleSet)
	if err != nil {
		fmt.Fprintf(stderr, "[VALIDATE]: %v\n", err)
		return 2
	}

	memoranda, err := readMemoranda(*file)
	if err != nil {
		fmt.Fprintf(stderr, "[VALIDATE]: %v\n", err)
		return 2
	}

	invalid := 0
	for i, m := range memoranda {
		failures := memorandum.Validate(m, set)
		if len(failures) > 0 {
			invalid++
		}
		for _, f := range failures {
			fmt.Fprintf(stdout, "%d\t%s\t%s\n", i, f.Field, f.Message)
		}
	}

	fmt.Fprintf(stderr, "[VALIDATE]: %d of %d memorandums invalid (rule set '%s')\n", invalid, len(memoranda), set)
	if invalid > 0 {
		return 1
	}
	return 0
}

// readMemoranda decodes the memorandum list from a YAML file
func readMemoranda(path string) ([]*memorandum.Memorandum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read memorandum file: %w", err)
	}

	var contents memorandumFile
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("failed to parse memorandum file: %w", err)
	}

	// A blank list entry decodes to nil and is checked as an empty memorandum
	for i, m := range contents.Memorandums {
		if m == nil {
			contents.Memorandums[i] = &memorandum.Memorandum{}
		}
	}

	return contents.Memorandums, nil
}
