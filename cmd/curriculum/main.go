// Command curriculum parses study plan documents offline and can attach the
// result to a program in the programs file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"

	"github.com/artem13815/advisor/pkg/advisor"
	"github.com/artem13815/advisor/pkg/curriculum"
	"github.com/artem13815/advisor/pkg/faq"
	"github.com/artem13815/advisor/pkg/logging"
	"github.com/artem13815/advisor/pkg/program"
)

type options struct {
	Registry string        `long:"registry" env:"REGISTRY_FILE" description:"YAML file overriding category or archetype keywords"`
	Timeout  time.Duration `long:"timeout" default:"30s" description:"Download timeout for URL sources"`
	MaxMB    int64         `long:"max-mb" default:"15" description:"Largest document accepted, in MB"`
	Output   string        `short:"o" long:"output" description:"Write parsed plans to this file instead of stdout"`
	Programs string        `long:"programs" env:"PROGRAMS_FILE" description:"Programs file to update with the parsed curriculum"`
	Program  string        `long:"program" description:"Program name in the programs file that receives the curriculum"`
	LogLevel string        `long:"log-level" env:"LOG_LEVEL" default:"info" description:"debug, info, warn or error"`

	Args struct {
		Sources []string `positional-arg-name:"source" required:"1" description:"PDF, DOCX or text files, or http(s) URLs"`
	} `positional-args:"yes"`
}

type parsed struct {
	Source string `json:"source"`
	advisor.ParsedPlan
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "curriculum"
	parser.LongDescription = "Извлекает учебный план из PDF/DOCX/текста и раскладывает дисциплины по категориям."
	if _, err := parser.Parse(); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, opts.LogLevel, "curriculum")
	if err := run(context.Background(), opts, logger, os.Stdout); err != nil {
		logger.Fatal("curriculum", "err", err)
	}
}

func run(ctx context.Context, opts options, logger *log.Logger, stdout io.Writer) error {
	if (opts.Program == "") != (opts.Programs == "") {
		return errors.New("--programs and --program must be given together")
	}
	if opts.Program != "" && len(opts.Args.Sources) != 1 {
		return errors.New("--program takes exactly one source")
	}

	regs, err := advisor.LoadRegistries(opts.Registry)
	if err != nil {
		return err
	}
	empty, err := program.NewCatalog(nil)
	if err != nil {
		return err
	}
	svc := advisor.NewService(advisor.Deps{
		Catalog:    empty,
		Categories: regs.Categories,
		Archetypes: regs.Archetypes,
		Gate:       faq.DefaultGate(),
		Fetcher:    curriculum.NewFetcher(opts.Timeout, opts.MaxMB<<20),
		Logger:     logger,
	})

	results := make([]parsed, 0, len(opts.Args.Sources))
	for _, src := range opts.Args.Sources {
		plan, err := parseSource(ctx, svc, src)
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		if plan.Curriculum.Empty() {
			logger.Warn("no courses found", "source", src)
		}
		results = append(results, parsed{Source: src, ParsedPlan: plan})
	}

	if opts.Program != "" {
		if err := attach(opts.Programs, opts.Program, results[0].Curriculum); err != nil {
			return err
		}
		logger.Info("programs file updated", "file", opts.Programs, "program", opts.Program)
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if opts.Output != "" {
		return os.WriteFile(opts.Output, out, 0o644)
	}
	_, err = stdout.Write(out)
	return err
}

func parseSource(ctx context.Context, svc *advisor.Service, src string) (advisor.ParsedPlan, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return svc.ParseURL(ctx, src)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return advisor.ParsedPlan{}, err
	}
	return svc.ParseDocument(src, data)
}

// attach stores cur under name in the programs file, keeping program order.
func attach(path, name string, cur curriculum.Curriculum) error {
	catalog, err := program.LoadFile(path)
	if err != nil {
		return err
	}
	updated, err := catalog.WithCurriculum(name, cur)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	out, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}
