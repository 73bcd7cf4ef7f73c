package stats

import (
	"encoding/json"
)

// Count is a cumulative counter. The upstream sometimes sends counters as
// floats or null; fractions are truncated toward zero and null reads as 0.
type Count int64

func (c *Count) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*c = Count(f)
	return nil
}

// CountryRecord is one row of the countries table. Field order is display order.
type CountryRecord struct {
	Country             string  `json:"country"`
	Cases               Count   `json:"cases"`
	TodayCases          Count   `json:"todayCases"`
	Deaths              Count   `json:"deaths"`
	TodayDeaths         Count   `json:"todayDeaths"`
	Recovered           Count   `json:"recovered"`
	Active              Count   `json:"active"`
	Critical            Count   `json:"critical"`
	CasesPerOneMillion  float64 `json:"casesPerOneMillion"`
	DeathsPerOneMillion float64 `json:"deathsPerOneMillion"`
	Tests               Count   `json:"tests"`
	TestsPerOneMillion  float64 `json:"testsPerOneMillion"`
	Updated             int64   `json:"updated"`
}

// Value returns the field a leaderboard is ranked on.
func (r CountryRecord) Value(k SortKey) float64 {
	switch k {
	case SortCases:
		return float64(r.Cases)
	case SortTodayCases:
		return float64(r.TodayCases)
	case SortDeaths:
		return float64(r.Deaths)
	case SortTodayDeaths:
		return float64(r.TodayDeaths)
	case SortRecovered:
		return float64(r.Recovered)
	case SortActive:
		return float64(r.Active)
	case SortCritical:
		return float64(r.Critical)
	case SortCasesPerOneMillion:
		return r.CasesPerOneMillion
	case SortDeathsPerOneMillion:
		return r.DeathsPerOneMillion
	case SortTests:
		return float64(r.Tests)
	case SortTestsPerOneMillion:
		return r.TestsPerOneMillion
	}
	return 0
}

// GlobalRecord is the worldwide summary.
type GlobalRecord struct {
	CountryRecord
	AffectedCountries Count `json:"affectedCountries"`
}

// StateRecord is one row of the US states table.
type StateRecord struct {
	State              string  `json:"state"`
	Cases              Count   `json:"cases"`
	TodayCases         Count   `json:"todayCases"`
	Deaths             Count   `json:"deaths"`
	TodayDeaths        Count   `json:"todayDeaths"`
	Recovered          Count   `json:"recovered"`
	Active             Count   `json:"active"`
	Tests              Count   `json:"tests"`
	TestsPerOneMillion float64 `json:"testsPerOneMillion"`
	Updated            int64   `json:"updated"`
}
