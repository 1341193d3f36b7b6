package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/pictopt/pkg/model"
)

func TestLoadSuiteCSV_ReprojectsToDeclaredOrder(t *testing.T) {
	m, err := model.BuildModel([]model.RawParameter{
		{DisplayName: "Browser", Values: []string{"Chrome", "Firefox"}},
		{DisplayName: "OS", Values: []string{"Windows", "Linux"}},
	})
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "suite.csv")
	// Header columns deliberately reversed relative to the model's declared order.
	content := "OS,Browser\nWindows,Chrome\nLinux,Firefox\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rows, err := loadSuiteCSV(path, m)
	if err != nil {
		t.Fatalf("loadSuiteCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Chrome" || rows[0][1] != "Windows" {
		t.Errorf("row 0 not reprojected to declared order: %v", rows[0])
	}
}

func TestLoadSuiteCSV_MissingColumnIsAnError(t *testing.T) {
	m, err := model.BuildModel([]model.RawParameter{
		{DisplayName: "Browser", Values: []string{"Chrome", "Firefox"}},
		{DisplayName: "OS", Values: []string{"Windows", "Linux"}},
	})
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "suite.csv")
	if err := os.WriteFile(path, []byte("Browser\nChrome\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := loadSuiteCSV(path, m); err == nil {
		t.Fatal("expected an error for a missing OS column")
	}
}
