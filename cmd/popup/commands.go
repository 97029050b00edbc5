// ABOUTME: Subcommands for each popup variant: message, select, prompt, palette
// ABOUTME: Each builds the popup from flags, shows it, and prints the result

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/termpopup/pkg/popup"
)

// content joins positional words so quoting the message is optional.
func content(args []string) string {
	return strings.ReplaceAll(strings.Join(args, " "), `\n`, "\n")
}

func newMessageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "message <text>...",
		Short: "Show a message and print the key that closed it",
		Long: `Show a message and print the key that closed it.
A literal \n in the text starts a new line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			m, err := popup.NewMessage(content(args), opts...)
			if err != nil {
				return err
			}
			if err := a.show(m); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(m.Key().String()))
			return nil
		},
	}
}

func newSelectCmd(a *app) *cobra.Command {
	var options []string
	cmd := &cobra.Command{
		Use:   "select <text>... --option A --option B",
		Short: "Pick one option from a list and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			s, err := popup.NewSelect(content(args), options, opts...)
			if err != nil {
				return err
			}
			if err := a.show(s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(s.Value()))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&options, "option", "o", nil, "an option to choose from (repeatable)")
	_ = cmd.MarkFlagRequired("option")
	return cmd
}

func newPromptCmd(a *app) *cobra.Command {
	var (
		placeholder string
		limit       int
	)
	cmd := &cobra.Command{
		Use:   "prompt <text>...",
		Short: "Ask for a line of text and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			opts = append(opts, popup.WithPlaceholder(placeholder))
			if cmd.Flags().Changed("limit") {
				opts = append(opts, popup.WithLimit(limit))
			}
			p, err := popup.NewTextPrompt(content(args), opts...)
			if err != nil {
				return err
			}
			if err := a.show(p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Value())
			return nil
		},
	}
	cmd.Flags().StringVarP(&placeholder, "placeholder", "p", "", "text shown while the input is empty")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of characters")
	return cmd
}

func newPaletteCmd(a *app) *cobra.Command {
	var squares bool
	cmd := &cobra.Command{
		Use:   "palette <text>...",
		Short: "Pick one of the 16 terminal colors and print its index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("squares") {
				squares = a.settings.Squares
			}
			opts = append(opts, popup.WithSquares(squares))
			p, err := popup.NewPalette(content(args), opts...)
			if err != nil {
				return err
			}
			if err := a.show(p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), paletteResult(p.Value()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&squares, "squares", false, "draw block swatches instead of letters")
	return cmd
}
