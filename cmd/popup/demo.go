// ABOUTME: demo subcommand: a select over every popup kind, re-shown until Custom is chosen
// ABOUTME: Each round's popup uses the kind picked in the previous round

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/termpopup/pkg/popup"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Cycle through popup kinds until Custom is selected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			s, err := popup.NewSelectFrom("Select one:", popup.Kinds(), opts...)
			if err != nil {
				return err
			}
			chosen, err := runDemo(s, a.show)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(chosen.String()))
			return nil
		},
	}
}

// runDemo shows s until Custom is picked, echoing the last choice in the
// message and styling the popup as that kind.
func runDemo(s *popup.Select, show func(popup.Interactive) error) (popup.Kind, error) {
	for {
		if err := show(s); err != nil {
			return 0, err
		}
		k, err := popup.ParseKind(s.Value())
		if err != nil {
			return 0, err
		}
		if k == popup.Custom {
			return k, nil
		}
		s.SetKind(k)
		if err := s.SetContent(fmt.Sprintf("You selected: %s\nSelect one:", k), s.Wrap()); err != nil {
			return 0, err
		}
	}
}
