package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c360studio/nluentities/language"
	"github.com/c360studio/nluentities/ontology"
)

func kindsCmd() *cobra.Command {
	var (
		langCode string
		describe bool
		examples bool
	)

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the builtin entity kinds",
		Long: `Kinds lists every builtin entity kind with its wire identifier,
description and supported languages.

With --language, only kinds supported by that language are listed and
--examples adds the curated example utterances for it. With --describe,
a sample of each kind's result values is printed as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lang language.Language
			if langCode != "" {
				var err error
				if lang, err = language.FromCode(langCode); err != nil {
					return err
				}
			}
			if examples && langCode == "" {
				return fmt.Errorf("--examples requires --language")
			}

			idColor := color.New(color.FgCyan, color.Bold)
			dimColor := color.New(color.Faint)

			for _, kind := range ontology.AllKinds() {
				if langCode != "" && !kind.Supports(lang) {
					continue
				}

				codes := make([]string, 0, len(kind.SupportedLanguages()))
				for _, l := range kind.SupportedLanguages() {
					codes = append(codes, l.String())
				}
				fmt.Printf("%s  %s %s\n",
					idColor.Sprint(kind.Identifier()),
					kind.Description(),
					dimColor.Sprintf("(%s)", strings.Join(codes, ", ")))

				if examples {
					for _, example := range kind.Examples(lang) {
						fmt.Printf("    %q\n", example)
					}
				}
				if describe {
					description, err := kind.ResultDescription()
					if err != nil {
						return err
					}
					for _, line := range strings.Split(description, "\n") {
						fmt.Printf("    %s\n", line)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&langCode, "language", "l", "", "Restrict to kinds supported by a language code")
	cmd.Flags().BoolVar(&describe, "describe", false, "Print sample result values for each kind")
	cmd.Flags().BoolVar(&examples, "examples", false, "Print example utterances (requires --language)")

	return cmd
}
