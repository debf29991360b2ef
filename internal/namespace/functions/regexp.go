// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"regexp"
	"sync"
)

var (
	patternsLock sync.Mutex
	patterns     = map[string]*regexp.Regexp{}
)

// compile returns the compiled pattern, caching it since stages run once per line.
func compile(pattern string) (*regexp.Regexp, error) {
	patternsLock.Lock()
	defer patternsLock.Unlock()

	if compiled, ok := patterns[pattern]; ok {
		return compiled, nil
	}

	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	patterns[pattern] = compiled
	return compiled, nil
}

// Match reports whether s contains a match of pattern.
func Match(s, pattern string) (bool, error) {
	compiled, err := compile(pattern)
	if err != nil {
		return false, err
	}
	return compiled.MatchString(s), nil
}

// Find returns the first match of pattern in s. When the pattern has capture groups
// the list of groups is returned instead; nil means no match.
func Find(s, pattern string) (any, error) {
	compiled, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	groups := compiled.FindStringSubmatch(s)
	switch {
	case groups == nil:
		return nil, nil
	case len(groups) == 1:
		return groups[0], nil
	default:
		return groups[1:], nil
	}
}

// FindAll returns every non-overlapping match of pattern in s.
func FindAll(s, pattern string) ([]string, error) {
	compiled, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	matches := compiled.FindAllString(s, -1)
	if matches == nil {
		matches = []string{}
	}
	return matches, nil
}

// Sub replaces every match of pattern in s with replacement, which may reference
// groups with $1 or ${name}.
func Sub(s, pattern, replacement string) (string, error) {
	compiled, err := compile(pattern)
	if err != nil {
		return "", err
	}
	return compiled.ReplaceAllString(s, replacement), nil
}

// SplitPattern splits s around every match of pattern.
func SplitPattern(s, pattern string) ([]string, error) {
	compiled, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return compiled.Split(s, -1), nil
}
