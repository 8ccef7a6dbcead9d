package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/existflow/ironplan/internal/model"
)

func TestSample_IsValid(t *testing.T) {
	d := Sample()
	if err := d.Validate(); err != nil {
		t.Fatalf("sample dataset invalid: %v", err)
	}
	if len(d.Employees) != 5 || len(d.Tasks) != 6 {
		t.Errorf("expected 5 employees and 6 tasks, got %d and %d", len(d.Employees), len(d.Tasks))
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := NewCatalog(Sample())

	e, ok := c.Employee("2")
	if !ok || e.FullName() != "Pierre Martin" {
		t.Errorf("Employee(2) = %+v, %v", e, ok)
	}
	if _, ok := c.Employee("99"); ok {
		t.Error("expected unknown employee to be missing")
	}

	task, ok := c.Task("1")
	if !ok || task.Title != "Réunion équipe hebdomadaire" {
		t.Errorf("Task(1) = %+v, %v", task, ok)
	}
	if _, ok := c.Task(""); ok {
		t.Error("expected empty task id to be missing")
	}
}

func TestCatalog_DuplicateIDsResolveToFirst(t *testing.T) {
	c := NewCatalog(model.Dataset{
		Employees: []model.Employee{
			{ID: "1", FirstName: "First"},
			{ID: "1", FirstName: "Second"},
		},
	})
	e, _ := c.Employee("1")
	if e.FirstName != "First" {
		t.Errorf("expected first record, got %q", e.FirstName)
	}
}

func TestCatalog_Summary(t *testing.T) {
	got := NewCatalog(Sample()).Summary()
	want := Summary{TotalTasks: 6, CompletedTasks: 0, Available: 4, Busy: 1}
	if got != want {
		t.Errorf("Summary() = %+v, want %+v", got, want)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		dsn     string
		wantErr bool
		unknown bool
	}{
		{name: "empty driver is builtin", driver: ""},
		{name: "builtin", driver: "builtin"},
		{name: "case insensitive", driver: " YAML ", dsn: "plan.yaml"},
		{name: "sqlite", driver: "sqlite", dsn: "plan.db"},
		{name: "postgres", driver: "postgres", dsn: "postgres://localhost/plan"},
		{name: "http", driver: "http", dsn: "http://localhost:8080"},
		{name: "missing dsn", driver: "yaml", wantErr: true},
		{name: "sqlite default path", driver: "sqlite"},
		{name: "unknown", driver: "mongo", dsn: "x", wantErr: true, unknown: true},
		{name: "unknown without dsn", driver: "mongo", wantErr: true, unknown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Open(tt.driver, tt.dsn)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if tt.unknown && !errors.Is(err, ErrUnknownDriver) {
					t.Errorf("expected ErrUnknownDriver, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if src == nil {
				t.Fatal("expected a source")
			}
		})
	}
}

func TestLoad_RejectsInvalidDataset(t *testing.T) {
	src := SourceFunc(func(context.Context) (model.Dataset, error) {
		return model.Dataset{Employees: []model.Employee{{ID: ""}}}, nil
	})
	if _, err := Load(context.Background(), src); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_PropagatesSourceError(t *testing.T) {
	boom := errors.New("boom")
	src := SourceFunc(func(context.Context) (model.Dataset, error) {
		return model.Dataset{}, boom
	})
	if _, err := Load(context.Background(), src); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestExport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, format := range []string{DriverYAML, DriverSQLite} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "plan."+format)
			if err := Export(ctx, format, path, Sample()); err != nil {
				t.Fatalf("Export: %v", err)
			}

			c, err := OpenCatalog(ctx, format, path)
			if err != nil {
				t.Fatalf("OpenCatalog: %v", err)
			}
			assertSampleCatalog(t, c)
		})
	}
}

func TestOpenCatalog_MissingSQLiteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")
	path := filepath.Join(dir, "planning.db")

	c, err := OpenCatalog(context.Background(), DriverSQLite, path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got catalog=%v err=%v", c, err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("loading a missing dataset created %s", dir)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	err := Export(context.Background(), "csv", filepath.Join(t.TempDir(), "x"), Sample())
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestRemoteSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != DatasetPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Sample())
	}))
	defer srv.Close()

	c, err := OpenCatalog(context.Background(), DriverHTTP, srv.URL+"/")
	if err != nil {
		t.Fatalf("OpenCatalog: %v", err)
	}
	assertSampleCatalog(t, c)
}

func TestRemoteSource_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := OpenCatalog(context.Background(), DriverHTTP, srv.URL)
	if err == nil || !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "maintenance") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func assertSampleCatalog(t *testing.T, c *Catalog) {
	t.Helper()

	want := Sample()
	if len(c.Employees()) != len(want.Employees) || len(c.Tasks()) != len(want.Tasks) {
		t.Fatalf("got %d employees and %d tasks", len(c.Employees()), len(c.Tasks()))
	}
	for i, e := range want.Employees {
		if c.Employees()[i] != e {
			t.Errorf("employee %d = %+v, want %+v", i, c.Employees()[i], e)
		}
	}
	for i, task := range want.Tasks {
		got := c.Tasks()[i]
		if got.ID != task.ID || got.Title != task.Title || got.EmployeeID != task.EmployeeID || got.Status != task.Status {
			t.Errorf("task %d = %+v, want %+v", i, got, task)
		}
		if !got.StartDate.Equal(task.StartDate) || !got.EndDate.Equal(task.EndDate) {
			t.Errorf("task %d times = %v..%v, want %v..%v", i, got.StartDate, got.EndDate, task.StartDate, task.EndDate)
		}
	}
}
