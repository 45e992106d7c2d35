// Package lexicon holds the pattern vocabulary for trader behavior analysis
// and the matching primitives shared by every classifier.
package lexicon

import (
	"regexp"
	"sort"

	"github.com/cloudflare/ahocorasick"
	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Fold normalizes text for matching using Unicode case folding.
func Fold(text string) string {
	return folder.String(text)
}

// Group is a named set of patterns matched as a unit. A group is either
// literal (substring matching via an Aho-Corasick automaton) or regex
// (word-boundary anchored, case-insensitive). Groups are immutable after
// construction and safe for concurrent use.
type Group struct {
	name     string
	literals []string
	matcher  *ahocorasick.Matcher
	patterns []*regexp.Regexp
	sources  []string
}

// NewLiteralGroup builds a substring-matching group. Patterns must be
// lowercase; input text is folded by the caller before matching.
func NewLiteralGroup(name string, words ...string) *Group {
	return &Group{
		name:     name,
		literals: words,
		matcher:  ahocorasick.NewStringMatcher(words),
	}
}

// NewRegexGroup builds a word-boundary anchored group. Expressions are
// compiled case-insensitively; a bad expression panics at init time.
func NewRegexGroup(name string, exprs ...string) *Group {
	g := &Group{name: name, sources: exprs}
	for _, expr := range exprs {
		g.patterns = append(g.patterns, regexp.MustCompile(`(?i)`+expr))
	}
	return g
}

// Name returns the group's identifier.
func (g *Group) Name() string { return g.name }

// Size returns the number of patterns in the group.
func (g *Group) Size() int {
	if g.matcher != nil {
		return len(g.literals)
	}
	return len(g.patterns)
}

// Match counts the distinct patterns of the group that occur in text and
// returns them in declaration order. Each pattern contributes at most once
// no matter how often it occurs.
func (g *Group) Match(text string) (int, []string) {
	if g.matcher != nil {
		// Matcher.Match mutates trie state per call; the thread-safe
		// variant keeps shared groups usable from concurrent workers.
		hits := g.matcher.MatchThreadSafe([]byte(text))
		if len(hits) == 0 {
			return 0, nil
		}
		sort.Ints(hits)
		evidence := make([]string, 0, len(hits))
		for _, idx := range hits {
			evidence = append(evidence, g.literals[idx])
		}
		return len(evidence), evidence
	}
	var evidence []string
	for i, re := range g.patterns {
		if re.MatchString(text) {
			evidence = append(evidence, g.sources[i])
		}
	}
	return len(evidence), evidence
}

// Contains reports whether any pattern of the group occurs in text.
func (g *Group) Contains(text string) bool {
	if g.matcher != nil {
		return g.matcher.Contains([]byte(text))
	}
	for _, re := range g.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// LabelGroup binds a classification label to its pattern group.
type LabelGroup struct {
	Label string
	Group *Group
}
