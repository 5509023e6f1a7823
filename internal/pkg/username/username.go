// Package username derives login handles from student names and resolves
// them to globally unique usernames.
package username

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is the handle used when a name yields no usable characters.
const Fallback = "user"

// maxProbes bounds the suffix search. The username column carries a unique
// constraint, so the cap only guards against a store that lies about taken
// handles.
const maxProbes = 10000

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FirstToken returns the first whitespace-delimited token of a name field,
// or the empty string if the field is empty.
func FirstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Derive produces the base handle for a person's name: first tokens of the
// first and last name joined by a dot, lower-cased, accents folded away and
// every character outside [a-z0-9._-] removed. Deterministic: the same name
// always yields the same handle.
func Derive(firstName, lastName string) string {
	base := strings.ToLower(FirstToken(firstName) + "." + FirstToken(lastName))

	if folded, _, err := transform.String(stripMarks, base); err == nil {
		base = folded
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	// A name of only stripped characters (or two empty fields, which leave a
	// lone dot) still needs a handle
	if handle := b.String(); handle != "" && handle != "." {
		return handle
	}
	return Fallback
}

// Resolve finds the first free username for a base handle: the base itself if
// available, otherwise base+1, base+2 and so on. The taken check always runs
// against the current candidate, never the bare base, so the search terminates
// as soon as a suffix is free.
func Resolve(ctx context.Context, base string, taken func(ctx context.Context, username string) (bool, error)) (string, error) {
	inUse, err := taken(ctx, base)
	if err != nil {
		return "", fmt.Errorf("checking username %q: %w", base, err)
	}
	if !inUse {
		return base, nil
	}

	for i := 1; i <= maxProbes; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		inUse, err := taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking username %q: %w", candidate, err)
		}
		if !inUse {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no free username found for base %q", base)
}
