package collect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func collectedSet(t *testing.T, root string) map[string]bool {
	t.Helper()
	files, err := SourceFiles(root)
	if err != nil {
		t.Fatalf("SourceFiles: %v", err)
	}
	set := make(map[string]bool)
	for _, f := range files {
		rel, err := filepath.Rel(root, f.Path)
		if err != nil {
			t.Fatal(err)
		}
		set[filepath.ToSlash(rel)] = true
	}
	return set
}

func TestSourceFiles_ExtensionFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go")
	writeFile(t, root, "app.py")
	writeFile(t, root, "lib/util.ts")
	writeFile(t, root, "README.md")
	writeFile(t, root, "image.png")
	writeFile(t, root, "Makefile")

	got := collectedSet(t, root)

	for _, want := range []string{"main.go", "app.py", "lib/util.ts"} {
		if !got[want] {
			t.Errorf("missing %q in %v", want, got)
		}
	}
	for _, reject := range []string{"README.md", "image.png", "Makefile"} {
		if got[reject] {
			t.Errorf("%q should not be collected", reject)
		}
	}
}

func TestSourceFiles_ExtensionCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "legacy.PY")
	writeFile(t, root, "Widget.JAVA")

	got := collectedSet(t, root)
	if !got["legacy.PY"] || !got["Widget.JAVA"] {
		t.Errorf("uppercase extensions should match, got %v", got)
	}
}

func TestSourceFiles_DenylistedDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ok.js")
	writeFile(t, root, "node_modules/dep/index.js")
	writeFile(t, root, ".git/hooks/sample.py")
	writeFile(t, root, "dist/bundle.js")
	writeFile(t, root, "build/out.c")
	writeFile(t, root, "venv/lib/site.py")
	writeFile(t, root, "src/__pycache__/mod.py")
	writeFile(t, root, "src/deep/node_modules/x/y.ts")

	files, err := SourceFiles(root)
	if err != nil {
		t.Fatalf("SourceFiles: %v", err)
	}

	for _, f := range files {
		for part := range map[string]struct{}{
			"node_modules": {}, ".git": {}, "dist": {}, "build": {}, "venv": {}, "__pycache__": {},
		} {
			if strings.Contains(filepath.ToSlash(f.Path), "/"+part+"/") {
				t.Errorf("collected path %q contains denylisted component %q", f.Path, part)
			}
		}
	}

	got := collectedSet(t, root)
	if !got["ok.js"] {
		t.Error("ok.js should be collected")
	}
	if len(got) != 1 {
		t.Errorf("only ok.js should survive, got %v", got)
	}
}

func TestSourceFiles_SkipsNonRegularEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "real.go")

	// Symlink to a directory must be skipped, symlink to a file kept.
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(root, "sub"), filepath.Join(root, "dirlink.go")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "real.go"), filepath.Join(root, "filelink.go")); err != nil {
		t.Fatal(err)
	}

	got := collectedSet(t, root)
	if got["dirlink.go"] {
		t.Error("symlink to directory should be skipped")
	}
	if !got["filelink.go"] {
		t.Error("symlink to a regular file should be collected")
	}
	if !got["real.go"] {
		t.Error("real.go should be collected")
	}
}

func TestSourceFiles_MissingRoot(t *testing.T) {
	_, err := SourceFiles(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("SourceFiles on a missing root should fail")
	}
}
