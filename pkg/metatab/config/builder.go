package config

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// Builder runs the interactive question/answer flow that captures a
// configuration for a concrete dataset. Reading answers from an io.Reader
// keeps every step testable against scripted input.
type Builder struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewBuilder returns a builder reading answers from in and writing prompts
// to out.
func NewBuilder(in io.Reader, out io.Writer) *Builder {
	return &Builder{in: bufio.NewScanner(in), out: out}
}

// Run walks through the prompts and returns the captured configuration.
// It never writes the document; use WriteFile for that.
func (b *Builder) Run(ds *models.Dataset) (*Config, error) {
	cfg := &Config{ColumnPolicy: PolicyBlacklist}

	sheetNames := ds.SheetNames()
	choice, err := b.askChoice("Which sheet would you like to use?", append([]string{"all"}, sheetNames...), "all")
	if err != nil {
		return nil, err
	}
	selected := sheetNames
	if choice != "all" {
		selected = []string{choice}
	}

	columns := columnsOf(ds, selected)
	if len(columns) == 0 {
		return nil, &ConfigurationError{Reason: "the selected sheets have no columns"}
	}

	idColumn, err := b.askChoice("Which column contains the unique identifier of the target object?", columns, "")
	if err != nil {
		return nil, err
	}
	cfg.IdentifierColumns = []string{idColumn}

	mode, err := b.askChoice(
		fmt.Sprintf("How is the path coded in the column %q?", idColumn),
		[]string{string(ModeAbsolute), string(ModeRelative), string(ModeFilename)}, "")
	if err != nil {
		return nil, err
	}
	cfg.IdentifierMode = IdentifierMode(mode)

	if cfg.RequiresBase() {
		for {
			answer, err := b.ask("What is the absolute path of the collection holding the files? (it should start with /{zone}/home)")
			if err != nil {
				return nil, err
			}
			base, err := validateStorePath(answer)
			if err != nil {
				fmt.Fprintln(b.out, err)
				continue
			}
			cfg.BaseCollection = base
			break
		}
	}

	// Sheets without the identifier column cannot be processed; drop them
	// here so the run does not abort on a sheet the operator never meant
	// to include.
	if choice == "all" {
		var kept []string
		for _, name := range selected {
			if ds.Sheet(name).HasColumn(idColumn) {
				kept = append(kept, name)
			} else {
				fmt.Fprintf(b.out, "Column %q is missing from sheet %q, so that sheet will be excluded.\n", idColumn, name)
			}
		}
		selected = kept
		columns = columnsOf(ds, selected)
	}
	if len(selected) < len(sheetNames) {
		cfg.Sheets = selected
	}

	exclude, err := b.askYesNo("Would you like to exclude any of the columns?")
	if err != nil {
		return nil, err
	}
	if exclude {
		excludable := make([]string, 0, len(columns))
		for _, c := range columns {
			if c != idColumn {
				excludable = append(excludable, c)
			}
		}
		for {
			answer, err := b.ask(fmt.Sprintf("List the columns to exclude, separated by spaces (%s)", strings.Join(excludable, ", ")))
			if err != nil {
				return nil, err
			}
			picked := strings.Fields(answer)
			if !allKnown(picked, excludable) {
				fmt.Fprintln(b.out, "Not all of these columns exist, try again.")
				continue
			}
			cfg.Columns = picked
			break
		}
	}

	return cfg, nil
}

// validateStorePath normalizes and checks a base collection path: it must be
// absolute and follow the /{zone}/home/... hierarchy of the store.
func validateStorePath(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("the path must not be empty")
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	s = path.Clean(s)
	parts := strings.Split(s, "/")
	// parts[0] is the empty string before the leading slash.
	if len(parts) < 4 || parts[2] != "home" {
		return "", fmt.Errorf("please provide a path matching /{zone}/home/{project}")
	}
	return s, nil
}

func columnsOf(ds *models.Dataset, sheets []string) []string {
	seen := make(map[string]struct{})
	var columns []string
	for _, name := range sheets {
		sheet := ds.Sheet(name)
		if sheet == nil {
			continue
		}
		for _, c := range sheet.Columns {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			columns = append(columns, c)
		}
	}
	return columns
}

func allKnown(picked, known []string) bool {
	set := make(map[string]struct{}, len(known))
	for _, k := range known {
		set[k] = struct{}{}
	}
	for _, p := range picked {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return len(picked) > 0
}

func (b *Builder) ask(prompt string) (string, error) {
	fmt.Fprintf(b.out, "%s\n> ", prompt)
	if !b.in.Scan() {
		if err := b.in.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("input ended before the configuration was complete: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(b.in.Text()), nil
}

func (b *Builder) askChoice(prompt string, choices []string, def string) (string, error) {
	full := fmt.Sprintf("%s [%s]", prompt, strings.Join(choices, "/"))
	for {
		answer, err := b.ask(full)
		if err != nil {
			return "", err
		}
		if answer == "" && def != "" {
			return def, nil
		}
		for _, c := range choices {
			if answer == c {
				return c, nil
			}
		}
		fmt.Fprintf(b.out, "Please answer one of: %s\n", strings.Join(choices, ", "))
	}
}

func (b *Builder) askYesNo(prompt string) (bool, error) {
	for {
		answer, err := b.ask(prompt + " [y/n]")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
		fmt.Fprintln(b.out, "Please answer y or n.")
	}
}
