package stats

import (
	"strings"

	"github.com/liavyona/covid-stats-bot/pkg/errs"
)

// MatchFold returns the entities whose key equals name, ignoring case.
func MatchFold[T any](entities []T, name string, key func(T) string) []T {
	var matches []T
	for _, entity := range entities {
		if strings.EqualFold(key(entity), name) {
			matches = append(matches, entity)
		}
	}
	return matches
}

func exactlyOne[T any](entities []T, name string, key func(T) string) (T, error) {
	matches := MatchFold(entities, name, key)
	if len(matches) != 1 {
		var zero T
		return zero, &errs.CountryError{Name: name, Matches: len(matches)}
	}
	return matches[0], nil
}
