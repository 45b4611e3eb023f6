package main

import (
	"strings"

	"github.com/spf13/cobra"

	"daynote/internal/dashboard/bootstrap"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/view"
)

func todosCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Inspect and edit today's todo list",
	}
	addUserFlag(cmd, opts)

	show := &cobra.Command{
		Use:   "show",
		Short: "Show today's tasks by period with progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withTodoView(cmd, opts, func(v *view.TodoView) error {
				return renderTodo(cmd.OutOrStdout(), v)
			})
		},
	}

	add := &cobra.Command{
		Use:   "add <morning|noon|evening> <text...>",
		Short: "Add a task to a period",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := entities.ParsePeriod(args[0])
			if err != nil {
				return err
			}
			return withTodoView(cmd, opts, func(v *view.TodoView) error {
				if err := v.Open(period); err != nil {
					return err
				}
				v.SetDraft(strings.Join(args[1:], " "))
				if _, err := v.AddDraft(cmd.Context()); err != nil {
					return err
				}
				return renderTodo(cmd.OutOrStdout(), v)
			})
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <slot-id>",
		Short: "Flip a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTodoView(cmd, opts, func(v *view.TodoView) error {
				if err := v.Toggle(cmd.Context(), args[0]); err != nil {
					return err
				}
				return renderTodo(cmd.OutOrStdout(), v)
			})
		},
	}

	rm := &cobra.Command{
		Use:   "rm <slot-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTodoView(cmd, opts, func(v *view.TodoView) error {
				if err := v.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				return renderTodo(cmd.OutOrStdout(), v)
			})
		},
	}

	cmd.AddCommand(show, add, toggle, rm)
	return cmd
}

func withTodoView(cmd *cobra.Command, opts *options, fn func(*view.TodoView) error) error {
	return withService(cmd.Context(), opts, func(svc *bootstrap.Service) error {
		v := view.NewTodoView(svc.UseCases.Todos, opts.userID)
		defer v.Close()

		if err := v.Load(cmd.Context()); err != nil {
			return err
		}
		return fn(v)
	})
}
