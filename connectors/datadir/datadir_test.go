package datadir

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDrilldownPath(t *testing.T) {
	got := DrilldownPath("data", "prod 2", "Apr/2025")
	want := filepath.Join("data", "drilldown", "prod_2", "Apr_2025.json")
	if got != want {
		t.Errorf("DrilldownPath() = %q, want %q", got, want)
	}
	if got := DrilldownPath("data", "../etc", "Apr/2025"); filepath.Dir(filepath.Dir(got)) != filepath.Join("data", "drilldown") {
		t.Errorf("DrilldownPath() escaped the data dir: %q", got)
	}
}

func TestReadTable(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := ReadTable(dir); !os.IsNotExist(err) {
		t.Fatalf("ReadTable(missing) err = %v, want not-exist", err)
	}

	write(t, StatsPath(dir), `{"unexpected":"object"}`)
	if table, ok, err := ReadTable(dir); err != nil || ok || table != nil {
		t.Errorf("ReadTable(object) = %v, %v, %v; want nil, false, nil", table, ok, err)
	}

	write(t, StatsPath(dir), `[{"env":"prod","month":"Jan/2025","red_cells":1,"max_total_cells":4}]`)
	table, ok, err := ReadTable(dir)
	if err != nil || !ok {
		t.Fatalf("ReadTable() = %v, %v", ok, err)
	}
	if c, found := table.Lookup("prod", "Jan/2025"); !found || c.Green != 3 {
		t.Errorf("prod Jan/2025 = %+v, %v", c, found)
	}
}

func TestReadDrilldown(t *testing.T) {
	dir := t.TempDir()
	write(t, DrilldownPath(dir, "prod", "Jan/2025"), `{"disk":[{"database":"a","cluster":"c1","count":2}]}`)
	got, err := ReadDrilldown(dir, "prod", "Jan/2025")
	if err != nil {
		t.Fatalf("ReadDrilldown: %v", err)
	}
	if len(got["disk"]) != 1 || got["disk"][0].Count != 2 {
		t.Errorf("ReadDrilldown() = %+v", got)
	}
	if _, err := ReadDrilldown(dir, "prod", "Feb/2025"); !os.IsNotExist(err) {
		t.Errorf("ReadDrilldown(missing) err = %v", err)
	}
}
