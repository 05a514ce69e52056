package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notepad/internal/errs"
	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/ui"
)

func (a *app) newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [name...]",
		Short: "Create a note (named \"Untitled <n>\" unless a name is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			n := a.np.Create(ctx)
			if name := strings.TrimSpace(strings.Join(args, " ")); name != "" {
				a.np.Rename(ctx, n.ID, model.BoundName(name))
				n, _ = a.np.Get(n.ID)
			}
			if err := a.persisted(); err != nil {
				return err
			}
			ui.OK(a.out, fmt.Sprintf("created %q (%s)", n.Name, shortID(n.ID)))
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List notes",
		Args:    exactArgs(0, "notepad ls"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.printList()
			return nil
		},
	}
}

func (a *app) printList() {
	t := ui.Current()
	c := func(color, s string) string { return ui.Paint(a.out, color, s) }
	notes := a.np.Notes()
	header := fmt.Sprintf("%s  %s %d  %s %dpx",
		c(t.Title, "Notes"),
		c(t.Accent, "Total"), len(notes),
		c(t.Accent, "Text size"), a.np.FontSize(),
	)

	lines := []string{header, ""}
	if len(notes) == 0 {
		lines = append(lines, c(t.Muted, "no notes"))
	}
	sel, _ := a.np.Selected()
	for i, n := range notes {
		marker := " "
		if n.ID == sel {
			marker = c(t.Marker, t.SymCurrent)
		}
		lines = append(lines, fmt.Sprintf("%s %s %-30s  %s  %s",
			marker,
			c(t.Muted, fmt.Sprintf("%2d.", i+1)),
			n.Name,
			c(t.Muted, shortID(n.ID)),
			c(t.Muted, savedAt(n)),
		))
	}
	lines = append(lines, "", c(t.Muted, "Tip: add with `notepad new \"Shopping\"`"))
	ui.Panel(a.out, lines)
}

func savedAt(n model.Note) string {
	if n.LastModified.IsZero() {
		return "never saved"
	}
	return n.LastModified.Local().Format("2006-01-02 15:04")
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <note>",
		Short: "Print a note's content",
		Args:  exactArgs(1, "notepad show <note>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := resolve(a.np.Notes(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, n.Content)
			if n.Content != "" && !strings.HasSuffix(n.Content, "\n") {
				fmt.Fprintln(a.out)
			}
			return nil
		},
	}
}

func (a *app) renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <note> <name...>",
		Short: fmt.Sprintf("Rename a note (names are cut at %d characters)", model.MaxNameLen),
		Args:  minArgs(2, "notepad rename <note> <name...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := resolve(a.np.Notes(), args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" {
				return errs.New(errs.InvalidArgument, "rename: empty name")
			}
			a.np.Rename(cmd.Context(), n.ID, model.BoundName(name))
			if err := a.persisted(); err != nil {
				return err
			}
			ui.OK(a.out, "renamed")
			return nil
		},
	}
}

func (a *app) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <note> [text...]",
		Short: "Replace a note's content with the given text, or with stdin",
		Args:  minArgs(1, "notepad edit <note> [text...]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := resolve(a.np.Notes(), args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			if len(args) == 1 {
				b, err := io.ReadAll(a.in)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}
			a.np.SetContent(cmd.Context(), n.ID, text)
			if err := a.persisted(); err != nil {
				return err
			}
			ui.OK(a.out, "saved")
			return nil
		},
	}
}

func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <note>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    exactArgs(1, "notepad rm <note>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := resolve(a.np.Notes(), args[0])
			if err != nil {
				return err
			}
			a.np.Delete(cmd.Context(), n.ID)
			if err := a.persisted(); err != nil {
				return err
			}
			ui.OK(a.out, fmt.Sprintf("removed %q", n.Name))
			return nil
		},
	}
}
