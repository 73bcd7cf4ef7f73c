// Package format turns records into labelled display fields.
package format

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/structs"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const TimestampLayout = "2006/01/02 - 15:04:05 UTC"

// Labels holds the keys whose display label is not just the title-cased key.
var Labels = map[string]string{
	"todayCases":          "Cases Today",
	"todayDeaths":         "Deaths Today",
	"casesPerOneMillion":  "Cases per 1M",
	"deathsPerOneMillion": "Deaths per 1M",
	"testsPerOneMillion":  "Tests per 1M",
	"affectedCountries":   "Affected Countries",
}

// title keys name the record and are rendered as the response title instead
var titleKeys = map[string]bool{"country": true, "state": true}

// Field is one labelled line of a response.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Response is what a host shows for one command.
type Response struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
	Image  []byte  `json:"image,omitempty"`
}

// Pair is a raw key/value as it came from a record.
type Pair struct {
	Key   string
	Value interface{}
}

func Label(key string) string {
	if l, ok := Labels[key]; ok {
		return l + ":"
	}
	return cases.Title(language.Und).String(key) + ":"
}

// Value renders updated as a UTC timestamp and any other number with thousands
// separators. Numbers go through integer coercion, so fractions are dropped
// (0.99 per million shows as 0). Values that are not numbers are shown as is.
func Value(key string, v interface{}) string {
	v = widen(v)
	if key == "updated" {
		if ms, err := cast.ToInt64E(v); err == nil {
			return time.UnixMilli(ms).UTC().Format(TimestampLayout)
		}
	}
	if n, err := cast.ToInt64E(v); err == nil {
		return humanize.Comma(n)
	}
	return fmt.Sprint(v)
}

// widen strips named numeric types so cast sees plain int64/float64.
func widen(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

// Fields labels and renders pairs in order, leaving out the title keys.
func Fields(pairs []Pair) []Field {
	out := make([]Field, 0, len(pairs))
	for _, p := range pairs {
		if titleKeys[p.Key] {
			continue
		}
		out = append(out, Field{Name: Label(p.Key), Value: Value(p.Key, p.Value)})
	}
	return out
}

// Pairs lists a struct's scalar fields in declaration order, keyed by their
// json names. Embedded structs are flattened.
func Pairs(record interface{}) []Pair {
	s := structs.New(record)
	s.TagName = "json"
	return appendPairs(nil, s.Fields())
}

func appendPairs(pairs []Pair, fields []*structs.Field) []Pair {
	for _, f := range fields {
		if !f.IsExported() {
			continue
		}
		if f.IsEmbedded() {
			pairs = appendPairs(pairs, f.Fields())
			continue
		}
		name := strings.Split(f.Tag("json"), ",")[0]
		if name == "-" || f.Kind() == reflect.Struct {
			continue
		}
		if name == "" {
			name = f.Name()
		}
		pairs = append(pairs, Pair{Key: name, Value: f.Value()})
	}
	return pairs
}

// Record is Fields(Pairs(record)).
func Record(record interface{}) []Field {
	return Fields(Pairs(record))
}
