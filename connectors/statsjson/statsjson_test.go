package statsjson

import (
	"testing"

	"uptime-stats/domain/drilldown"
	"uptime-stats/domain/uptime"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeStats_NotAnArray(t *testing.T) {
	for _, payload := range []string{`{"env":"prod"}`, `null`, `"oops"`, ``, `42`} {
		if records, ok := DecodeStats([]byte(payload)); ok || records != nil {
			t.Errorf("DecodeStats(%q) = %v, %v; want nil, false", payload, records, ok)
		}
		if table, ok := Table([]byte(payload)); ok || table != nil {
			t.Errorf("Table(%q) = %v, %v; want nil, false", payload, table, ok)
		}
	}
}

func TestDecodeStats(t *testing.T) {
	payload := `[
		{"env":"prod","month":"Jan/2025","uptime":99.95,"red_cells":1,"max_total_cells":1000},
		{"env":"prod","month":"Feb/2025","uptime":null,"max_total_cells":1000},
		{"month":"Mar/2025","max_total_cells":5},
		7
	]`
	up := 99.95
	red := 1
	want := []uptime.StatRecord{
		{Env: "prod", Month: "Jan/2025", Uptime: &up, RedCells: &red, MaxTotalCells: 1000},
		{Env: "prod", Month: "Feb/2025", MaxTotalCells: 1000},
		{Month: "Mar/2025", MaxTotalCells: 5},
	}
	got, ok := DecodeStats([]byte(payload))
	if !ok {
		t.Fatal("DecodeStats() reported non-array")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeStats() mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_EmptyArray(t *testing.T) {
	table, ok := Table([]byte(`[]`))
	if !ok || table == nil || len(table) != 0 {
		t.Errorf("Table([]) = %v, %v; want empty table, true", table, ok)
	}
}

func TestTable_SkipsRecordsWithoutKeys(t *testing.T) {
	table, ok := Table([]byte(`[{"month":"Mar/2025","max_total_cells":5},{"env":"qa","month":"Mar/2025","red_cells":2,"max_total_cells":5}]`))
	if !ok {
		t.Fatal("Table() reported non-array")
	}
	want := uptime.Table{"qa": {"Mar/2025": {Red: 2, Green: 3, Total: 5}}}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("Table() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeDrilldown(t *testing.T) {
	payload := `{
		"replication": [{"database":"orders","cluster":"c2","count":4}, "junk"],
		"disk": [],
		"broken": "not a list"
	}`
	want := drilldown.Table{
		"replication": {{Database: "orders", Cluster: "c2", Count: 4}},
		"disk":        {},
	}
	if diff := cmp.Diff(want, DecodeDrilldown([]byte(payload))); diff != "" {
		t.Errorf("DecodeDrilldown() mismatch (-want +got):\n%s", diff)
	}
	if got := DecodeDrilldown([]byte(`[1,2]`)); len(got) != 0 {
		t.Errorf("DecodeDrilldown(array) = %v, want empty", got)
	}
}
