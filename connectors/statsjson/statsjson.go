package statsjson

import (
	"uptime-stats/domain/drilldown"
	"uptime-stats/domain/uptime"

	"github.com/tidwall/gjson"
)

// Package statsjson maps raw upstream payloads onto domain types. Field
// presence is checked explicitly so an absent value is never confused with zero.

// DecodeStats reads a JSON array of stat objects. ok is false when the payload
// is not an array, which callers must treat as "no table" rather than an empty one.
// Array elements that are not objects are skipped.
func DecodeStats(payload []byte) ([]uptime.StatRecord, bool) {
	root := gjson.ParseBytes(payload)
	if !root.IsArray() {
		return nil, false
	}
	records := []uptime.StatRecord{}
	root.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		r := uptime.StatRecord{
			Env:           stringField(item, "env"),
			Month:         stringField(item, "month"),
			MaxTotalCells: int(item.Get("max_total_cells").Int()),
		}
		if v := item.Get("uptime"); v.Type == gjson.Number {
			f := v.Float()
			r.Uptime = &f
		}
		if v := item.Get("red_cells"); v.Type == gjson.Number {
			n := int(v.Int())
			r.RedCells = &n
		}
		records = append(records, r)
		return true
	})
	return records, true
}

// Table decodes and aggregates a stats payload in one step.
func Table(payload []byte) (uptime.Table, bool) {
	records, ok := DecodeStats(payload)
	if !ok {
		return nil, false
	}
	return uptime.Aggregate(records), true
}

// DecodeDrilldown reads a category -> records object. Anything that is not an
// object yields an empty table; categories whose value is not an array are dropped.
func DecodeDrilldown(payload []byte) drilldown.Table {
	out := drilldown.Table{}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return out
	}
	root.ForEach(func(category, items gjson.Result) bool {
		if !items.IsArray() {
			return true
		}
		records := []drilldown.Record{}
		items.ForEach(func(_, item gjson.Result) bool {
			if item.IsObject() {
				records = append(records, drilldown.Record{
					Database: item.Get("database").String(),
					Cluster:  item.Get("cluster").String(),
					Count:    int(item.Get("count").Int()),
				})
			}
			return true
		})
		out[category.String()] = records
		return true
	})
	return out
}

// stringField returns the field only when it is a JSON string.
func stringField(item gjson.Result, name string) string {
	v := item.Get(name)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}
