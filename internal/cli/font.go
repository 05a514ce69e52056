package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notepad/internal/errs"
	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/ui"
)

func (a *app) fontCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "font [size]",
		Short: fmt.Sprintf("Show or set the text size (%d-%d)", model.MinFontSize, model.MaxFontSize),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errs.New(errs.InvalidArgument, "usage: notepad font [size]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return errs.New(errs.InvalidArgument, "font: not a number: "+args[0])
				}
				a.np.SetFontSize(cmd.Context(), n)
				if err := a.persisted(); err != nil {
					return err
				}
			}
			size := a.np.FontSize()
			fmt.Fprintf(a.out, "Text size: %s %dpx\n",
				ui.Gauge(size, model.MinFontSize, model.MaxFontSize, 20), size)
			return nil
		},
	}
}
