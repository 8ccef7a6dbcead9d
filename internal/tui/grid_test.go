package tui

import (
	"testing"
	"time"

	"github.com/existflow/ironplan/internal/schedule"
	"github.com/existflow/ironplan/internal/store"
)

func sampleGrid(cfg schedule.Config) *weekGrid {
	d := store.Sample()
	g := newWeekGrid(schedule.WeekOf(sampleClock()))
	g.SetData(schedule.Project(d.Employees, d.Tasks), cfg)
	return g
}

func TestWeekGrid_Paging(t *testing.T) {
	cfg := schedule.DefaultConfig()
	cfg.MaxRecordsPerPage = 2
	g := sampleGrid(cfg)

	if g.pageCount() != 3 {
		t.Fatalf("pageCount() = %d, want 3", g.pageCount())
	}
	if rows := g.visibleRows(); len(rows) != 2 || rows[0].ID != "1" {
		t.Errorf("first page = %+v", rows)
	}

	g.movePage(5)
	if g.page != 2 || len(g.visibleRows()) != 1 {
		t.Errorf("page = %d with %d rows, want last page with 1 row", g.page, len(g.visibleRows()))
	}

	if !g.focusResource("3") || g.page != 1 || g.row != 0 {
		t.Errorf("focusResource(3) -> page %d row %d", g.page, g.row)
	}
	if g.focusResource("nobody") {
		t.Error("expected unknown resource to be rejected")
	}
}

func TestWeekGrid_ClickReportsTile(t *testing.T) {
	g := sampleGrid(schedule.DefaultConfig())

	var got []schedule.Click
	g.OnTileClick(func(c schedule.Click) {
		got = append(got, c)
	})

	g.click()
	g.moveRow(2) // Sophie
	g.click()
	g.moveCol(3) // Thursday, nothing planned
	g.click()

	want := []schedule.Click{
		{ResourceID: "1", EventID: "2"},
		{ResourceID: "3", EventID: "3"},
		{ResourceID: "3"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d clicks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("click %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWeekGrid_ClickWithoutHandler(t *testing.T) {
	g := sampleGrid(schedule.DefaultConfig())
	g.click()
}

func TestWeekGrid_CycleItem(t *testing.T) {
	d := store.Sample()
	tasks := append(d.Tasks, d.Tasks[1])
	tasks[len(tasks)-1].ID = "7"
	tasks[len(tasks)-1].StartDate = time.Date(2024, time.December, 23, 15, 0, 0, 0, time.Local)
	tasks[len(tasks)-1].EndDate = time.Date(2024, time.December, 23, 16, 0, 0, 0, time.Local)

	g := newWeekGrid(schedule.WeekOf(sampleClock()))
	g.SetData(schedule.Project(d.Employees, tasks), schedule.DefaultConfig())

	if len(g.cell()) != 2 {
		t.Fatalf("expected 2 tasks in Marie's Monday cell, got %d", len(g.cell()))
	}
	g.cycleItem()
	if _, e, ok := g.current(); !ok || e.ID != "7" {
		t.Errorf("current after cycle = %q, %v", e.ID, ok)
	}
	g.cycleItem()
	if _, e, _ := g.current(); e.ID != "2" {
		t.Errorf("cycle did not wrap, current = %q", e.ID)
	}
}

func TestWeekGrid_ClampsOnShrink(t *testing.T) {
	g := sampleGrid(schedule.DefaultConfig())
	g.moveRow(4)
	g.SetData(g.rows[:2], schedule.DefaultConfig())
	if g.row != 1 {
		t.Errorf("row = %d after shrinking to 2 rows", g.row)
	}

	g.SetData(nil, schedule.DefaultConfig())
	if _, _, ok := g.current(); ok {
		t.Error("expected no current tile without rows")
	}
	g.click()
}

func TestWeekGrid_ZoomWidensColumns(t *testing.T) {
	cfg := schedule.DefaultConfig()
	cfg.Zoom = 0
	g := sampleGrid(cfg)
	narrow := g.colWidth()

	cfg.Zoom = 2
	g.SetData(g.rows, cfg)
	if g.colWidth() <= narrow {
		t.Errorf("zoom 2 width %d not wider than zoom 0 width %d", g.colWidth(), narrow)
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := truncate("Développement", 6); got != "Dével…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 5); got != "abc" {
		t.Errorf("truncate short = %q", got)
	}
	if got := pad("é", 3); got != "é  " {
		t.Errorf("pad = %q", got)
	}
	if got := truncate("abc", 0); got != "" {
		t.Errorf("truncate zero = %q", got)
	}
}
