// Copyright 2025 The rscheck Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the rscheck command line tool.

rscheck finds misspelled words in source code. Every line of every target file
is split into identifiers, every identifier is split into words (camelCase and
snake_case aware), and every word that is not in one of the given wordlists is
reported with its file and line.

# Usage

Check a project tree against the system dictionary:

	rscheck -t src -w /usr/share/dict/words

Only check Go and Rust files, skip a vendored directory and ignore some jargon:

	rscheck -t . -w words.txt -i jargon.txt -e go -e rs -p vendor

Check text from another tool and stream JSON records to an editor:

	git diff | rscheck --stdin -w words.txt --format json

# Words

A token is a run of ASCII letters, digits and underscores that holds at least
one letter. Tokens like thisIsMyFunction are split at upper case letters,
tokens like my_function at underscores, and anything else is taken whole.
Words are lowercased before the lookup. A word is only reported when its
length lies within --min and --max (2 and 20 by default) and it is not on an
ignore list. Ignore list entries shorter than 3 characters are dropped.

# Configuration

Settings not given as flags are read from a TOML file, by default
config.toml in the platform config dir ($XDG_CONFIG_HOME/rscheck on Linux):

	[check]
	min = 2
	max = 20

	[dict]
	wordlists = ["/usr/share/dict/words"]
	ignore = []

	[filter]
	extensions = []
	exclude_extensions = []
	exclude_paths = []
	gitignore = false

	[output]
	format = "text"
	color = true

List flags extend the lists of the config file. Write a default file with:

	rscheck config init

# Exit Status

0 when the run completed, 1 on invalid flags or an unreadable wordlist, and 2
when --fail-on-typos is set and typos were found.
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aqbifzl/rscheck/internal/cmd"
)

// sigHandler is a simple handler for OS signals to exit without a summary.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(1)
	}()
}

func main() {
	sigHandler()

	rootCmd := cmd.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrTyposFound) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
