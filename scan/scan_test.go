package scan

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestScannerRecords(t *testing.T) {
	tmpDir := t.TempDir()

	testFile1 := filepath.Join(tmpDir, "file1.MP4")
	testFile2 := filepath.Join(tmpDir, "file2.txt")
	testDir := filepath.Join(tmpDir, "subdir", "deeper")
	testFile3 := filepath.Join(testDir, "file3.jpg")

	if err := os.WriteFile(testFile1, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(testFile2, []byte("world!"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(testDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(testFile3, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	records := NewScanner(0).Collect(context.Background(), tmpDir)
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Path < records[j].Path })

	expected := []struct {
		path string
		size int64
		ext  string
	}{
		{testFile1, 5, ".mp4"},
		{testFile2, 6, ".txt"},
		{testFile3, 4, ".jpg"},
	}
	for i, want := range expected {
		got := records[i]
		if got.Path != want.path || got.Size != want.size || got.Extension != want.ext {
			t.Errorf("record %d = %+v, expected path=%s size=%d ext=%s", i, got, want.path, want.size, want.ext)
		}
	}
}

func TestScannerMultipleRoots(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	for _, p := range []string{filepath.Join(a, "one.mp3"), filepath.Join(b, "two.mp3")} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	records := NewScanner(2).Collect(context.Background(), a, b)
	if len(records) != 2 {
		t.Errorf("Expected 2 records across roots, got %d", len(records))
	}
}

func TestScannerSkipsMissingRoot(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "a.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	var skipped []string
	s := NewScanner(1)
	s.Logf = func(format string, v ...any) {
		skipped = append(skipped, format)
	}

	records := s.Collect(context.Background(), filepath.Join(tmpDir, "missing"), tmpDir)
	if len(records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(records))
	}
	if len(skipped) != 1 {
		t.Errorf("Expected the missing root to be logged once, got %d", len(skipped))
	}
}

func TestScannerSkipsUnreadableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	tmpDir := t.TempDir()
	locked := filepath.Join(tmpDir, "locked")
	if err := os.Mkdir(locked, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(locked, "hidden.mp4"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "visible.mp4"), []byte("xy"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	s := NewScanner(0)
	s.Logf = func(string, ...any) {}
	records := s.Collect(context.Background(), tmpDir)
	if len(records) != 1 || records[0].Name() != "visible.mp4" {
		t.Errorf("Expected only visible.mp4, got %+v", records)
	}
}

func TestScannerSkipsSymlinks(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real.wav")
	if err := os.WriteFile(target, []byte("wave"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(tmpDir, "link.wav")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	records := NewScanner(0).Collect(context.Background(), tmpDir)
	if len(records) != 1 {
		t.Errorf("Expected symlink to be ignored, got %d records", len(records))
	}
}

func TestScannerEarlyBreak(t *testing.T) {
	tmpDir := t.TempDir()
	for i := 0; i < 50; i++ {
		dir := filepath.Join(tmpDir, "d", string(rune('a'+i%26)))
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		name := filepath.Join(dir, string(rune('a'+i%26))+string(rune('0'+i/26))+".ogg")
		if err := os.WriteFile(name, []byte("o"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	count := 0
	for range NewScanner(4).Records(context.Background(), tmpDir) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("Expected to stop after 3 records, got %d", count)
	}
}

func TestScannerCancelledContext(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "a.mkv"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := NewScanner(0).Collect(ctx, tmpDir)
	if len(records) != 0 {
		t.Errorf("Expected no records from a cancelled scan, got %d", len(records))
	}
}

func TestToHumanSize(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{-1, "-"},
		{0, "0  B"},
		{500, "500  B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
		{1099511627776, "1.00 TB"},
	}

	for _, test := range tests {
		result := ToHumanSize(test.input)
		if result != test.expected {
			t.Errorf("ToHumanSize(%d) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		7:       "7",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
	}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%d) = %s, expected %s", in, got, want)
		}
	}
}
