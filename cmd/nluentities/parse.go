package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/c360studio/nluentities/config"
	"github.com/c360studio/nluentities/language"
	"github.com/c360studio/nluentities/ontology"
	"github.com/c360studio/nluentities/parser"
	"github.com/c360studio/nluentities/service"
)

func parseCmd(configPath, logLevel *string) *cobra.Command {
	var (
		langCode  string
		kindNames []string
		asJSON    bool
		watchPath string
		remote    bool
	)

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Extract builtin entities from text",
		Long: `Parse extracts builtin entities from the given text.

With --watch, parse re-runs on the given file every time it changes
instead of reading text from the arguments.

With --remote, the request is sent to a running nluentities service
over NATS instead of parsing locally.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, *logLevel)
			if err != nil {
				return err
			}
			logger := config.NewLogger(cfg.Log, os.Stderr)

			lang, err := language.FromCode(langCode)
			if err != nil {
				return err
			}
			kinds, err := resolveKinds(kindNames)
			if err != nil {
				return err
			}

			extract := localExtractor(logger)
			if remote {
				client, err := service.NewClient(cfg.NATS.URL, cfg.NATS.Subject, cfg.NATS.RequestTimeout)
				if err != nil {
					return err
				}
				defer client.Close()
				extract = remoteExtractor(client)
			}

			if watchPath != "" {
				return watchAndParse(cmd.Context(), watchPath, lang, kinds, asJSON, extract)
			}

			if len(args) == 0 {
				return fmt.Errorf("text argument is required unless --watch is set")
			}
			text := strings.Join(args, " ")

			entities, err := extract(cmd.Context(), text, lang, kinds)
			if err != nil {
				return err
			}
			return printEntities(text, entities, asJSON)
		},
	}

	cmd.Flags().StringVarP(&langCode, "language", "l", "en", "Language code (de, en, es, fr, ja, ko)")
	cmd.Flags().StringSliceVarP(&kindNames, "kinds", "k", nil, "Entity kind identifiers to extract (default: all supported)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entities as JSON")
	cmd.Flags().StringVarP(&watchPath, "watch", "w", "", "Watch a text file and re-parse it on every change")
	cmd.Flags().BoolVar(&remote, "remote", false, "Parse via a running nluentities service over NATS")

	return cmd
}

// extractFunc abstracts local and remote extraction for the command.
type extractFunc func(ctx context.Context, text string, lang language.Language, kinds []ontology.BuiltinEntityKind) ([]ontology.BuiltinEntity, error)

func localExtractor(logger *slog.Logger) extractFunc {
	p := parser.New(parser.WithLogger(logger))
	return func(ctx context.Context, text string, lang language.Language, kinds []ontology.BuiltinEntityKind) ([]ontology.BuiltinEntity, error) {
		return p.Extract(text, lang, kinds)
	}
}

func remoteExtractor(client *service.Client) extractFunc {
	return func(ctx context.Context, text string, lang language.Language, kinds []ontology.BuiltinEntityKind) ([]ontology.BuiltinEntity, error) {
		resp, err := client.Parse(ctx, text, lang, kinds)
		if err != nil {
			return nil, err
		}
		if resp.Error != "" {
			return nil, fmt.Errorf("%s: %s", resp.ErrorCode, resp.Error)
		}
		return resp.Entities, nil
	}
}

// resolveKinds maps identifiers ("snips/number") to entity kinds. An
// empty list means all supported kinds.
func resolveKinds(names []string) ([]ontology.BuiltinEntityKind, error) {
	if len(names) == 0 {
		return nil, nil
	}
	kinds := make([]ontology.BuiltinEntityKind, 0, len(names))
	for _, name := range names {
		kind, err := ontology.FromIdentifier(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// watchAndParse re-parses the file on every write until the context ends.
func watchAndParse(ctx context.Context, path string, lang language.Language, kinds []ontology.BuiltinEntityKind, asJSON bool, extract extractFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which would
	// drop a watch on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	parseFile := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
			return
		}
		text := strings.TrimRight(string(data), "\n")
		entities, err := extract(ctx, text, lang, kinds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parsing %s: %v\n", path, err)
			return
		}
		if err := printEntities(text, entities, asJSON); err != nil {
			fmt.Fprintf(os.Stderr, "printing entities: %v\n", err)
		}
	}

	parseFile()

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				parseFile()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// printEntities renders the extraction result.
func printEntities(text string, entities []ontology.BuiltinEntity, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(entities, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(entities) == 0 {
		fmt.Println("no entities found")
		return nil
	}

	kindColor := color.New(color.FgCyan)
	valueColor := color.New(color.FgGreen)
	rangeColor := color.New(color.Faint)

	for _, entity := range entities {
		detail, err := json.Marshal(entity.Entity)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s %s %s\n",
			kindColor.Sprint(entity.EntityKind.Identifier()),
			valueColor.Sprintf("%q", entity.Value),
			rangeColor.Sprintf("[%d:%d]", entity.Range.Start, entity.Range.End),
			string(detail))
	}
	return nil
}
