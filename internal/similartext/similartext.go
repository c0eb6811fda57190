// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package similartext produces "did you mean" suggestions for unknown
// names. The catalog uses it for unknown table names; column and
// variable lookups do not add suggestions.
package similartext

import "strings"

// Find returns a suggestion suffix (", maybe you mean X?" or
// ", maybe you mean X or Y?" when several names tie for closest) for
// candidate against names, or "" if candidate is empty or nothing is
// close enough.
func Find(names []string, candidate string) string {
	if candidate == "" || len(names) == 0 {
		return ""
	}

	threshold := len(candidate) / 2
	if threshold < 1 {
		threshold = 1
	}

	best := -1
	var matches []string
	for _, name := range names {
		d := levenshtein(candidate, name)
		if d > threshold {
			continue
		}
		switch {
		case best == -1 || d < best:
			best = d
			matches = []string{name}
		case d == best:
			matches = append(matches, name)
		}
	}

	if len(matches) == 0 {
		return ""
	}
	return ", maybe you mean " + strings.Join(matches, " or ") + "?"
}

// FindFromMap is Find over the key set of names, for catalog/schema
// lookups that are already indexed by a map.
func FindFromMap(names map[string]int, candidate string) string {
	if len(names) == 0 {
		return ""
	}
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	return Find(keys, candidate)
}

// levenshtein computes the classic edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
