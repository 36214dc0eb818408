package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// every topic listed in readme.md loads, and every topic file is
	// listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// knownCommands are the subcommands of the gbce binary. Kept in sync by
// TestConsoleBlocks failing on any documented command that is not listed.
var knownCommands = []string{
	"init", "trade", "yield", "pe", "vwsp", "index", "summary", "quote", "topic",
}

func TestConsoleBlocks(t *testing.T) {
	// Every `console` code block in the documentation must invoke gbce
	// with an existing subcommand.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			for _, block := range consoleBlocks(t, file) {
				for _, line := range strings.Split(block, "\n") {
					if !strings.HasPrefix(line, "$ gbce") {
						continue
					}
					fields := strings.Fields(line)
					if len(fields) < 3 {
						t.Errorf("command without subcommand: %q", line)
						continue
					}
					if !slices.Contains(knownCommands, fields[2]) {
						t.Errorf("unknown subcommand %q in %q", fields[2], line)
					}
				}
			}
		})
	}
}

// consoleBlocks parses a markdown file and returns the content of its
// `console` fenced code blocks.
func consoleBlocks(t *testing.T, file string) []string {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	var blocks []string
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(fenced.Language(content)) != "console" {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fenced.Lines().Len(); i++ {
			line := fenced.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, b.String())
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown %s: %v", file, err)
	}
	return blocks
}
