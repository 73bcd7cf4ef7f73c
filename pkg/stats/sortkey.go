package stats

import (
	"strings"

	"github.com/liavyona/covid-stats-bot/pkg/errs"
)

// SortKey names a numeric CountryRecord field the gateway can sort on.
type SortKey string

const (
	SortCases               SortKey = "cases"
	SortTodayCases          SortKey = "todayCases"
	SortDeaths              SortKey = "deaths"
	SortTodayDeaths         SortKey = "todayDeaths"
	SortRecovered           SortKey = "recovered"
	SortActive              SortKey = "active"
	SortCritical            SortKey = "critical"
	SortCasesPerOneMillion  SortKey = "casesPerOneMillion"
	SortDeathsPerOneMillion SortKey = "deathsPerOneMillion"
	SortTests               SortKey = "tests"
	SortTestsPerOneMillion  SortKey = "testsPerOneMillion"
)

var SortKeys = []SortKey{
	SortCases, SortTodayCases, SortDeaths, SortTodayDeaths, SortRecovered, SortActive,
	SortCritical, SortCasesPerOneMillion, SortDeathsPerOneMillion, SortTests, SortTestsPerOneMillion,
}

// ParseSortKey accepts a key in any letter case.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", errs.InvalidSortKey(s)
}

func (k SortKey) Valid() bool {
	for _, v := range SortKeys {
		if v == k {
			return true
		}
	}
	return false
}
