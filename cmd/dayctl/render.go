package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/view"
)

// notesPage то, что печатает renderNotes.
type notesPage interface {
	Page() int
	PageCount() int
	Visible() []*entities.Note
}

// todoBoard то, что печатает renderTodo.
type todoBoard interface {
	TodoID() string
	Buckets() entities.Buckets
	Progress(p entities.Period) (done, total, percent int)
}

var (
	_ notesPage = (*view.NotesView)(nil)
	_ todoBoard = (*view.TodoView)(nil)
)

func renderNotes(w io.Writer, v notesPage) error {
	notes := v.Visible()
	if len(notes) == 0 {
		_, err := fmt.Fprintln(w, "no notes today")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "page %d/%d\n", v.Page()+1, v.PageCount())
	fmt.Fprintln(tw, "ID\tCREATED\tTITLE\tDESCRIPTION")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.CreatedAt.Format("15:04"), n.Title, n.Description)
	}
	return tw.Flush()
}

func renderTodo(w io.Writer, v todoBoard) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "todo %s\n", v.TodoID())

	buckets := v.Buckets()
	for _, p := range entities.Periods() {
		done, total, percent := v.Progress(p)
		fmt.Fprintf(tw, "\n%s\t%d/%d\t%d%%\n", p.Heading(), done, total, percent)
		for _, s := range buckets.Get(p) {
			mark := " "
			if s.Completed {
				mark = "x"
			}
			fmt.Fprintf(tw, "  [%s]\t%s\t%s\n", mark, s.Text, s.ID)
		}
	}
	return tw.Flush()
}
