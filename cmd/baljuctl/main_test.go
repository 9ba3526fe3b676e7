package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"baljuseo/internal/model"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	origConfig, origVersion := configPath, version
	t.Cleanup(func() {
		configPath, version = origConfig, origVersion
	})
	configPath, version = "", 0

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, dir string) string {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetName(0)
	rows := [][]interface{}{
		{"주문번호", "등록옵션명", "구매수(수량)", "수취인이름", "우편번호", "수취인 주소", "수취인전화번호", "배송메세지", "구매자"},
		{"1", "특대(16mm~18mm)_박스_400g", 3, "a", "1", "b", "c", "d", "e"},
		{"2", "기타옵션", 1, "a", "1", "b", "c", "d", "e"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := wb.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	path := filepath.Join(dir, "orders.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "out.xlsx")

	stdout, stderr, err := runCLI(t,
		"convert", input,
		"-o", output,
		"--config", filepath.Join(dir, "missing.toml"),
		"--order-version", "2",
	)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(stdout, "(2행)") {
		t.Fatalf("stdout=%q", stdout)
	}
	if !strings.Contains(stdout, "16mm이상 400g") {
		t.Fatalf("summary not printed: %q", stdout)
	}
	if !strings.Contains(stderr, "기타옵션") {
		t.Fatalf("expected unpriced warning, stderr=%q", stderr)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != model.SheetOrder || sheets[1] != model.SheetSummary {
		t.Fatalf("sheets=%v", sheets)
	}
}

func TestConvertCommand_MissingInput(t *testing.T) {
	_, _, err := runCLI(t, "convert", filepath.Join(t.TempDir(), "nope.xlsx"))
	if err == nil || !strings.Contains(err.Error(), "파일을 찾을 수 없습니다") {
		t.Fatalf("err=%v", err)
	}
}

func TestNormalizeCommand(t *testing.T) {
	stdout, _, err := runCLI(t,
		"normalize", "대(14mm~16mm)_택배_600g", "기타옵션",
		"--config", filepath.Join(t.TempDir(), "missing.toml"),
	)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("stdout=%q", stdout)
	}
	if lines[0] != "대(14mm~16mm)_택배_600g\t14mm이상 600g\t21000" {
		t.Fatalf("line 0=%q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "(인식 불가)") {
		t.Fatalf("line 1=%q", lines[1])
	}
}

func TestPricesCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "prices", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("prices failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "14mm이상 1kg\t33000\n") {
		t.Fatalf("stdout=%q", stdout)
	}
}

func TestInitCommand_WritesDefaultsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	stdout, _, err := runCLI(t, "init", path)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(stdout, path) {
		t.Fatalf("stdout=%q", stdout)
	}

	stdout, _, err = runCLI(t, "prices", "--config", path)
	if err != nil {
		t.Fatalf("prices failed: %v", err)
	}
	if !strings.Contains(stdout, "18mm이상 1kg\t47000") {
		t.Fatalf("saved prices not loaded: %q", stdout)
	}

	if _, _, err := runCLI(t, "init", path); err == nil {
		t.Fatalf("expected error when config exists")
	}
	if _, _, err := runCLI(t, "init", path, "--force"); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
}
