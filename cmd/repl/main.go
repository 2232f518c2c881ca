package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"cpp2py/pkg/translator"
	"cpp2py/pkg/utils"
)

func main() {
	if len(os.Args) > 1 {
		if err := translateToStdout(os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "cpp2py-repl: %v\n", err)
			os.Exit(1)
		}
		return
	}
	runREPL()
}

// translateToStdout translates one file and prints the result instead of
// writing a .py next to it.
func translateToStdout(path string) error {
	fullPath, _, err := utils.GetPathInfo(path)
	if err != nil {
		return err
	}
	srcBytes, err := os.ReadFile(fullPath)
	if err != nil {
		return err
	}

	body, diags, err := translator.Translate(string(srcBytes), translator.Options{})
	for _, d := range diags {
		color.Yellow("%s", d)
	}
	if err != nil {
		return err
	}
	fmt.Print(translator.Output(body))
	return nil
}

func runREPL() {
	if !isInteractive() {
		runBufferedREPL(bufio.NewReader(os.Stdin))
		return
	}
	runInteractiveREPL()
}

// needsMore reports whether src still has unbalanced braces or parens, so
// the next line belongs to the same snippet.
func needsMore(src string) bool {
	tokens, _ := translator.Lex(src)
	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case translator.LBRACE, translator.LPAREN:
			depth++
		case translator.RBRACE, translator.RPAREN:
			depth--
		}
	}
	return depth > 0
}

// evalSnippet translates one complete snippet and prints the Python body.
func evalSnippet(src string) {
	if strings.TrimSpace(src) == "" {
		return
	}

	body, diags, err := translator.Translate(src, translator.Options{})
	for _, d := range diags {
		color.Yellow("%s", d)
	}
	if err != nil {
		color.Red("error: %v", err)
		return
	}
	if body != "" {
		fmt.Println(body)
	}
}

func runBufferedREPL(reader *bufio.Reader) {
	var buffer strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				buffer.WriteString(line)
				evalSnippet(buffer.String())
				return
			}
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return
		}

		buffer.WriteString(line)
		if needsMore(buffer.String()) {
			continue
		}
		evalSnippet(buffer.String())
		buffer.Reset()
	}
}

func runInteractiveREPL() {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	if historyPath := replHistoryPath(); historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	var buffer strings.Builder
	for {
		prompt := "cpp2py> "
		if buffer.Len() > 0 {
			prompt = "   ...> "
		}

		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				buffer.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}

		buffer.WriteString(input)
		buffer.WriteString("\n")
		if needsMore(buffer.String()) {
			continue
		}

		src := buffer.String()
		buffer.Reset()
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			state.AppendHistory(trimmed)
		}
		evalSnippet(src)
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".cpp2py_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
