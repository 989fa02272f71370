package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dshills/cerascan/internal/collect"
)

func writeFile(t *testing.T, root, name, content string) collect.File {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return collect.File{Path: path}
}

func TestHeader(t *testing.T) {
	h := Header("https://example.com/repo.git", "main", "")

	for _, want := range []string{
		"https://example.com/repo.git",
		"Branch: main",
		"CRITICAL INSTRUCTIONS",
		"security|bug|quality|performance",
		"CRITICAL|HIGH|MEDIUM|LOW",
		`"issues"`,
	} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestHeader_PrefixPrepended(t *testing.T) {
	h := Header("u", "b", "Focus on the auth module.")
	if !strings.HasPrefix(h, "Focus on the auth module.\n") {
		t.Errorf("prefix should come first, got %q", h[:60])
	}
}

func TestBuild_FileBlocks(t *testing.T) {
	root := t.TempDir()
	f := writeFile(t, root, "a.py", "print('hi')\n")

	p := Build([]collect.File{f}, root, "u", "b", Options{}, zap.NewNop())

	if !strings.Contains(p, "--- FILE: a.py ---") {
		t.Error("prompt should contain a delimited block for a.py")
	}
	if !strings.Contains(p, "print('hi')") {
		t.Error("prompt should contain the file content")
	}
}

func TestBuild_PerFileTruncation(t *testing.T) {
	root := t.TempDir()
	long := strings.Repeat("x", MaxFileChars+500)
	f := writeFile(t, root, "big.go", long)

	p := Build([]collect.File{f}, root, "u", "b", Options{}, zap.NewNop())

	if strings.Contains(p, long) {
		t.Error("content should be truncated to the per-file cap")
	}
	if !strings.Contains(p, long[:MaxFileChars]) {
		t.Error("prompt should contain exactly the capped prefix")
	}
}

func TestBuild_BodyBudget(t *testing.T) {
	root := t.TempDir()
	var files []collect.File
	content := strings.Repeat("y", MaxFileChars)
	for i := 0; i < 15; i++ {
		files = append(files, writeFile(t, root, fmt.Sprintf("f%02d.py", i), content))
	}

	p := Build(files, root, "u", "b", Options{}, zap.NewNop())

	body := p[len(Header("u", "b", ""))+1:]
	if len(body) > MaxBodyChars {
		t.Errorf("body is %d chars, budget is %d", len(body), MaxBodyChars)
	}

	// Files past the budget must be wholly absent, not partially included.
	included := 0
	for i := range files {
		marker := fmt.Sprintf("--- FILE: f%02d.py ---", i)
		if strings.Contains(p, marker) {
			included++
			if n := strings.Count(body, marker); n != 1 {
				t.Errorf("file %d appears %d times", i, n)
			}
		}
	}
	if included == 0 || included == len(files) {
		t.Errorf("expected a strict subset of files, got %d of %d", included, len(files))
	}
	for i := included; i < len(files); i++ {
		if strings.Contains(p, fmt.Sprintf("f%02d.py", i)) {
			t.Errorf("file %d should be entirely absent once the budget is hit", i)
		}
	}
}

func TestBuild_SkipsNonTextFiles(t *testing.T) {
	root := t.TempDir()
	bin := writeFile(t, root, "blob.c", string([]byte{0xff, 0xfe, 0x00, 0x80, 0x81}))
	ok := writeFile(t, root, "ok.c", "int main(void) { return 0; }\n")

	p := Build([]collect.File{bin, ok}, root, "u", "b", Options{}, zap.NewNop())

	if strings.Contains(p, "blob.c") {
		t.Error("non-UTF-8 file should be skipped with no placeholder")
	}
	if !strings.Contains(p, "ok.c") {
		t.Error("readable file should still be included")
	}
}

func TestBuild_RedactOption(t *testing.T) {
	root := t.TempDir()
	f := writeFile(t, root, "cfg.py", `password = "hunter2hunter2"`)

	raw := Build([]collect.File{f}, root, "u", "b", Options{}, zap.NewNop())
	if !strings.Contains(raw, "hunter2hunter2") {
		t.Error("content should be raw by default")
	}

	scrubbed := Build([]collect.File{f}, root, "u", "b", Options{Redact: true}, zap.NewNop())
	if strings.Contains(scrubbed, "hunter2hunter2") {
		t.Error("secret should be redacted when the option is on")
	}
}

func TestDisplayPath_Fallback(t *testing.T) {
	if got := displayPath("/workspace/root", "/elsewhere/file.go"); got != "file.go" {
		t.Errorf("displayPath fallback = %q, want bare filename", got)
	}
	if got := displayPath("/w", "/w/sub/file.go"); got != "sub/file.go" {
		t.Errorf("displayPath = %q, want sub/file.go", got)
	}
}
