package main

import (
	"github.com/spf13/cobra"

	"daynote/internal/dashboard/bootstrap"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/view"
)

func notesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Inspect and edit today's notes",
	}
	addUserFlag(cmd, opts)

	var page int
	list := &cobra.Command{
		Use:   "list",
		Short: "List today's notes, three per page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withNotesView(cmd, opts, func(v *view.NotesView) error {
				for range page - 1 {
					v.Next()
				}
				return renderNotes(cmd.OutOrStdout(), v)
			})
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page number, clamped to the available pages")

	var in entities.NoteInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a note for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withNotesView(cmd, opts, func(v *view.NotesView) error {
				if _, err := v.Save(cmd.Context(), "", in); err != nil {
					return err
				}
				return renderNotes(cmd.OutOrStdout(), v)
			})
		},
	}
	noteFlags(add, &in)

	edit := &cobra.Command{
		Use:   "edit <note-id>",
		Short: "Replace a note's title, description and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNotesView(cmd, opts, func(v *view.NotesView) error {
				if _, err := v.Save(cmd.Context(), args[0], in); err != nil {
					return err
				}
				return renderNotes(cmd.OutOrStdout(), v)
			})
		},
	}
	noteFlags(edit, &in)

	rm := &cobra.Command{
		Use:   "rm <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNotesView(cmd, opts, func(v *view.NotesView) error {
				if err := v.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				return renderNotes(cmd.OutOrStdout(), v)
			})
		},
	}

	cmd.AddCommand(list, add, edit, rm)
	return cmd
}

func noteFlags(cmd *cobra.Command, in *entities.NoteInput) {
	cmd.Flags().StringVar(&in.Title, "title", "", "note title")
	cmd.Flags().StringVar(&in.Description, "description", "", "short description")
	cmd.Flags().StringVar(&in.Content, "content", "", "note body")
	_ = cmd.MarkFlagRequired("title")
}

func withNotesView(cmd *cobra.Command, opts *options, fn func(*view.NotesView) error) error {
	return withService(cmd.Context(), opts, func(svc *bootstrap.Service) error {
		v := view.NewNotesView(svc.UseCases.Notes, opts.userID)
		defer v.Close()

		if err := v.Load(cmd.Context()); err != nil {
			return err
		}
		return fn(v)
	})
}
