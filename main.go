package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"

	"cpp2py/pkg/translator"
	"cpp2py/pkg/utils"
)

const version = "0.4.0"

var errorColor = color.New(color.FgRed, color.Bold)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	outputFlag = cli.StringFlag{
		Name:  "output, o",
		Usage: "output path (single input only; default: input with .py extension)",
	}
	strictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "fail when generation falls back to a silent default",
	}
	jobsFlag = cli.IntFlag{
		Name:  "jobs, j",
		Usage: "number of files translated in parallel",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colored output",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "cpp2py"
	app.Usage = "translate a restricted C++ subset to Python"
	app.Version = version
	app.ArgsUsage = "<file.cpp>..."
	app.Flags = []cli.Flag{configFileFlag, outputFlag, strictFlag, jobsFlag, noColorFlag}
	app.Action = translateCommand
	app.Commands = []cli.Command{
		{
			Name:      "tokens",
			Usage:     "Print the token stream of a source file",
			ArgsUsage: "<file.cpp>",
			Action:    tokensCommand,
		},
		{
			Name:      "ast",
			Usage:     "Print the syntax tree of a source file",
			ArgsUsage: "<file.cpp>",
			Action:    astCommand,
		},
		{
			Name:      "check",
			Usage:     "Parse files and report errors without writing output",
			ArgsUsage: "<file.cpp>...",
			Action:    checkCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		errorColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// translateCommand is the default action: translate every named file and
// write each result next to its input.
func translateCommand(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.ShowAppHelp(ctx)
	}

	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	if ctx.GlobalIsSet("output") && ctx.NArg() != 1 {
		return fmt.Errorf("--output requires exactly one input file, got %d", ctx.NArg())
	}

	opts := translator.Options{Strict: cfg.Strict}

	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for _, inPath := range ctx.Args() {
		inPath := inPath
		outPath := ctx.GlobalString("output")
		if outPath == "" {
			outPath = utils.OutputPath(inPath)
		}
		g.Go(func() error {
			return translateFile(inPath, outPath, opts)
		})
	}
	return g.Wait()
}

// translateFile translates one source file. The output file is written even
// when translation fails; a failed parse leaves a header-only .py.
func translateFile(inPath, outPath string, opts translator.Options) error {
	srcBytes, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %v", inPath, err)
	}

	body, diags, terr := translator.Translate(string(srcBytes), opts)
	for _, d := range diags {
		color.Yellow("%s: %s", inPath, d)
	}

	if err := os.WriteFile(outPath, []byte(translator.Output(body)), 0o644); err != nil {
		return fmt.Errorf("write %s: %v", outPath, err)
	}
	if terr != nil {
		return fmt.Errorf("%s: %v", inPath, terr)
	}

	color.Green("Translation complete. Wrote %s", outPath)
	return nil
}

// tokensCommand dumps the token stream of a single file as a table.
func tokensCommand(ctx *cli.Context) error {
	path, src, err := readSingle(ctx)
	if err != nil {
		return err
	}

	tokens, diags := translator.Lex(src)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Type", "Lexeme", "Line"})
	for i, tok := range tokens {
		table.Append([]string{
			strconv.Itoa(i),
			tok.Type.String(),
			tok.Lexeme,
			strconv.Itoa(tok.Line),
		})
	}
	table.Render()

	for _, d := range diags {
		color.Yellow("%s: %s", path, d)
	}
	return nil
}

// astCommand parses a single file and dumps the syntax tree.
func astCommand(ctx *cli.Context) error {
	path, src, err := readSingle(ctx)
	if err != nil {
		return err
	}

	tokens, diags := translator.Lex(src)
	prog, err := translator.Parse(tokens, src)
	if err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}

	spew.Dump(prog)
	for _, d := range diags {
		color.Yellow("%s: %s", path, d)
	}
	return nil
}

// checkCommand parses every named file and reports per-file results without
// writing any output.
func checkCommand(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("check requires at least one input file")
	}

	failed := 0
	for _, path := range ctx.Args() {
		srcBytes, err := os.ReadFile(path)
		if err != nil {
			failed++
			errorColor.Printf("%s: %v\n", path, err)
			continue
		}
		src := string(srcBytes)

		tokens, diags := translator.Lex(src)
		if _, err := translator.Parse(tokens, src); err != nil {
			failed++
			errorColor.Printf("%s: %v\n", path, err)
			continue
		}
		for _, d := range diags {
			color.Yellow("%s: %s", path, d)
		}
		color.Green("%s: OK", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, ctx.NArg())
	}
	return nil
}

// readSingle reads the one source file a single-file command expects.
func readSingle(ctx *cli.Context) (path, src string, err error) {
	if ctx.NArg() != 1 {
		return "", "", fmt.Errorf("expected exactly one source file, got %d", ctx.NArg())
	}
	path = ctx.Args().Get(0)
	srcBytes, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %v", path, err)
	}
	return path, string(srcBytes), nil
}
