// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crisis detects safety-critical questions and builds the fixed
// urgent-support answer. Detection has the highest priority in the
// pipeline: a single phrase match short-circuits knowledge lookup,
// article search, and synthesis entirely.
package crisis

import "strings"

// phrases is the fixed self-harm/suicide phrase list. Matching is
// case-insensitive substring; one match is decisive, there is no partial
// scoring.
var phrases = []string{
	"suicide",
	"suicidal",
	"kill myself",
	"end my life",
	"ending my life",
	"want to die",
	"wish i was dead",
	"self-harm",
	"self harm",
	"hurt myself",
	"hurting myself",
	"harm myself",
	"ending it all",
	"no reason to live",
	"better off dead",
	"take my own life",
	"don't want to be here",
}

// Detect reports whether the question contains any crisis phrase.
func Detect(question string) bool {
	q := strings.ToLower(question)
	for _, p := range phrases {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}
