// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package palette implements the command palette.
package palette

import (
	"unicode"

	"golang.org/x/text/cases"
)

// =============================================================================
// FUZZY MATCHING
// =============================================================================

// fold case-folds s for caseless comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

// FuzzyMatch performs fuzzy matching between a query and a target string.
// Returns a score (higher is better) and whether the match succeeded.
//
// Matching rules:
//   - Each character in query must appear in order in target
//   - Consecutive matches get bonus points
//   - Matches at word boundaries get bonus points
//   - Matches at start of string get bonus points
//   - Case-insensitive matching
//
// Any substring of target is also a subsequence, so an exact label substring
// always matches.
func FuzzyMatch(query, target string) (score int, matched bool) {
	if query == "" {
		return 0, true
	}

	queryRunes := []rune(fold(query))
	targetRunes := []rune(fold(target))

	if len(queryRunes) > len(targetRunes) {
		return 0, false
	}

	targetOrigRunes := []rune(target)
	queryOrigRunes := []rune(query)

	queryPos := 0
	lastMatchPos := -1

	for targetPos := 0; targetPos < len(targetRunes) && queryPos < len(queryRunes); targetPos++ {
		if targetRunes[targetPos] != queryRunes[queryPos] {
			continue
		}

		matchScore := 1
		if lastMatchPos == targetPos-1 {
			matchScore += 5
		}
		if targetPos == 0 {
			matchScore += 10
		}
		if isWordBoundary(targetRunes, targetOrigRunes, targetPos) {
			matchScore += 7
		}
		// Exact case match
		if targetPos < len(targetOrigRunes) && queryPos < len(queryOrigRunes) &&
			targetOrigRunes[targetPos] == queryOrigRunes[queryPos] {
			matchScore += 2
		}

		score += matchScore
		lastMatchPos = targetPos
		queryPos++
	}

	matched = queryPos == len(queryRunes)

	// Shorter targets are better matches
	if matched {
		score -= len(targetRunes) / 4
	}

	return score, matched
}

// isWordBoundary returns true if the position follows a separator or sits on
// a lower->upper camelCase transition. folded is the case-folded target and
// orig the target as written; the camelCase check reads orig, and is skipped
// when folding changed the rune count.
func isWordBoundary(folded, orig []rune, pos int) bool {
	if pos == 0 {
		return true
	}
	if pos >= len(folded) {
		return false
	}

	prev := folded[pos-1]
	if prev == ' ' || prev == '/' || prev == '-' || prev == '_' || prev == '(' {
		return true
	}
	if len(orig) != len(folded) {
		return false
	}
	return unicode.IsLower(orig[pos-1]) && unicode.IsUpper(orig[pos])
}

// HighlightMatch returns the rune positions in target matched by query.
// Positions index the case-folded target; callers should only use them when
// folding preserved the rune count.
func HighlightMatch(query, target string) (positions []int) {
	if query == "" {
		return nil
	}

	queryRunes := []rune(fold(query))
	targetRunes := []rune(fold(target))

	queryPos := 0
	for targetPos := 0; targetPos < len(targetRunes) && queryPos < len(queryRunes); targetPos++ {
		if targetRunes[targetPos] == queryRunes[queryPos] {
			positions = append(positions, targetPos)
			queryPos++
		}
	}
	if queryPos < len(queryRunes) {
		return nil
	}
	return positions
}
