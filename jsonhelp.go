// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package jsonhelp extracts a machine-readable description of a command-line interface from a snapshot of its
// configuration tables and renders it as JSON.
//
// Options are classified by the first type table they appear in, in the order:
//
//	array - an option accepting a list of values
//	string - an option accepting a single value
//	boolean - a switch
//	number - an option accepting a numeric value
//
// Aliases and hidden options are never listed as options of their own. Options and subcommands are sorted by name
// so that the rendered document is byte-identical for identical states.
package jsonhelp

import (
	"bytes"
	"encoding/json"

	"github.com/napalu/jsonhelp/errs"
)

// Extract builds the HelpDocument of the active command described by state. The state is not modified.
// An empty command path yields errs.ErrNoActiveCommandContext.
func Extract(state *State) (*HelpDocument, error) {
	if state == nil {
		return nil, errs.ErrNilState
	}
	if len(state.CommandPath) == 0 {
		return nil, errs.ErrNoActiveCommandContext
	}

	doc := &HelpDocument{
		Name:        state.CommandPath[len(state.CommandPath)-1],
		Options:     extractOptions(state),
		Subcommands: extractSubcommands(state),
	}
	applyUsage(doc, state)

	return doc, nil
}

// Render serializes doc as JSON indented with two spaces, without HTML escaping and without a trailing newline
func Render(doc *HelpDocument) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", errs.ErrRender.Wrap(err)
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// Usage extracts and renders the help document of state. It is what callers invoke once a JSON help request has
// been detected.
func Usage(state *State) (string, error) {
	doc, err := Extract(state)
	if err != nil {
		return "", err
	}

	return Render(doc)
}
