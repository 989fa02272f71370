package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/dshills/cerascan/internal/collect"
	"github.com/dshills/cerascan/internal/redact"
)

const (
	// MaxFileChars is the per-file content cap.
	MaxFileChars = 3000
	// MaxBodyChars is the total budget for the per-file body.
	MaxBodyChars = 30000
)

const schemaLine = `{"issues": [{"file":"path/to/file","line":42,"type":"security|bug|quality|performance","msg":"Detailed technical description and fix","severity":"CRITICAL|HIGH|MEDIUM|LOW"}]}`

// Options tunes prompt assembly.
type Options struct {
	Prefix string
	Redact bool
}

// Header returns the fixed audit instruction block for the given repository,
// with the caller-supplied prefix prepended verbatim when present.
func Header(repoURL, branch, prefix string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a strict senior security auditor and world-class software engineer. "+
		"Your task is to perform an AGGRESSIVE and DEEP audit of the following repository:\n"+
		"- URL: %s\n- Branch: %s\n\n", repoURL, branch)
	b.WriteString("CRITICAL INSTRUCTIONS:\n")
	b.WriteString("1. Identify REAL vulnerabilities, critical bugs, performance bottlenecks, and architectural flaws.\n")
	b.WriteString("2. NO CODE IS PERFECT. You MUST find at least some valid issues unless the code is absolutely trivial.\n")
	b.WriteString("3. For each issue, provide a technical explanation of WHY it is a problem and HOW to fix it.\n")
	b.WriteString("4. Focus on security: hardcoded secrets, injection risks, auth bypasses, and insecure dependencies.\n")
	b.WriteString("5. Return the answer in STRICT JSON format with an 'issues' array.\n\n")
	b.WriteString("JSON Schema:\n")
	b.WriteString(schemaLine)
	b.WriteString("\n")

	intro := b.String()
	if prefix != "" {
		intro = prefix + "\n" + intro
	}
	return intro
}

// Build assembles the full prompt: instruction header, separator, then one
// delimited block per candidate file in collector order. Each file's content
// is capped at MaxFileChars; once appending a block would push the body past
// MaxBodyChars, the remaining files are omitted entirely.
func Build(files []collect.File, root, repoURL, branch string, opts Options, log *zap.Logger) string {
	var body strings.Builder
	for i, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil || !utf8.Valid(data) {
			continue // not readable as text, no placeholder emitted
		}
		content := string(data)
		if opts.Redact {
			content = redact.Secrets(content)
		}
		if len(content) > MaxFileChars {
			content = content[:MaxFileChars]
		}

		block := fmt.Sprintf("\n--- FILE: %s ---\n%s\n", displayPath(root, f.Path), content)
		if body.Len()+len(block) > MaxBodyChars {
			log.Warn("prompt body budget reached, omitting remaining files",
				zap.Int("bodyChars", body.Len()),
				zap.Int("filesOmitted", len(files)-i))
			break
		}
		body.WriteString(block)
	}
	return Header(repoURL, branch, opts.Prefix) + "\n" + body.String()
}

// displayPath labels a file relative to the workspace root, falling back to
// the bare filename when the file does not sit under the root.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}
