package main

import (
	"fmt"
	"time"

	"github.com/amonks/triage/task"
	"github.com/amonks/triage/tracker"
	"github.com/spf13/cobra"
)

// create
var taskCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new pending task",
	Long: `Create a new pending task.

The title is required. Priority defaults to medium. Origin records where
the work came from and must be one of email, phone, or ticket.`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskCreate,
}

var (
	taskCreateDescription string
	taskCreatePriority    string
	taskCreateOrigin      string
)

// next
var taskNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Start the most urgent pending task",
	Long: `Start the most urgent pending task.

Tasks are considered by priority (urgent, high, medium, low) and then by
creation order. At most one task is started per call.`,
	Args: cobra.NoArgs,
	RunE: runTaskNext,
}

// priority
var taskPriorityCmd = &cobra.Command{
	Use:   "priority <id> <priority>",
	Short: "Change the priority of a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskPriority,
}

// complete
var taskCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark an in-progress task as done",
	Aliases: []string{
		"done",
	},
	Args: cobra.ExactArgs(1),
	RunE: runTaskComplete,
}

// delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Logically delete a task",
	Long: `Logically delete a task.

The task stays in the task file with status deleted. Deleting an already
deleted task succeeds without changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskDelete,
}

// archive
var taskArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move old done tasks to the archive file",
	Long: `Move done tasks to the archive file once they have been done for
longer than archive.after-days (7 by default).`,
	Args: cobra.NoArgs,
	RunE: runTaskArchive,
}

func init() {
	rootCmd.AddCommand(taskCreateCmd, taskNextCmd, taskPriorityCmd, taskCompleteCmd, taskDeleteCmd, taskArchiveCmd)

	addCreateFlagAliases(taskCreateCmd)
	taskCreateCmd.Flags().StringVarP(&taskCreateDescription, "description", "d", "", "Task description (markdown)")
	taskCreateCmd.Flags().StringVarP(&taskCreatePriority, "priority", "p", string(task.PriorityMedium), "Priority (urgent, high, medium, low)")
	taskCreateCmd.Flags().StringVarP(&taskCreateOrigin, "origin", "o", "", "Origin (email, phone, ticket)")
	_ = taskCreateCmd.MarkFlagRequired("origin")
}

// mutateAndSave opens a session, runs fn, and saves the active task file.
func mutateAndSave(fn func(*tracker.Tracker) error) error {
	session, err := openTracker()
	if err != nil {
		return err
	}
	if err := fn(session); err != nil {
		return err
	}
	return session.Save()
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	priority, err := task.ParsePriority(taskCreatePriority)
	if err != nil {
		return err
	}
	origin, err := task.ParseOrigin(taskCreateOrigin)
	if err != nil {
		return err
	}

	return mutateAndSave(func(session *tracker.Tracker) error {
		created, err := session.Create(args[0], task.CreateOptions{
			Description: taskCreateDescription,
			Priority:    priority,
			Origin:      origin,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created task %d: %s\n", created.ID, created.Title)
		return nil
	})
}

func runTaskNext(cmd *cobra.Command, args []string) error {
	return mutateAndSave(func(session *tracker.Tracker) error {
		started, ok := session.StartNext()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No pending tasks.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Started task %d: %s (%s)\n", started.ID, started.Title, priorityLabel(started.Priority))
		return nil
	})
}

func runTaskPriority(cmd *cobra.Command, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}
	priority, err := task.ParsePriority(args[1])
	if err != nil {
		return err
	}

	return mutateAndSave(func(session *tracker.Tracker) error {
		updated, err := session.UpdatePriority(id, priority)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d priority to %s\n", updated.ID, priorityLabel(updated.Priority))
		return nil
	})
}

func runTaskComplete(cmd *cobra.Command, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}

	return mutateAndSave(func(session *tracker.Tracker) error {
		completed, err := session.Complete(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Completed task %d: %s\n", completed.ID, completed.Title)
		return nil
	})
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}

	return mutateAndSave(func(session *tracker.Tracker) error {
		deleted, err := session.Delete(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d: %s\n", deleted.ID, deleted.Title)
		return nil
	})
}

func runTaskArchive(cmd *cobra.Command, args []string) error {
	return mutateAndSave(func(session *tracker.Tracker) error {
		archived, err := session.ArchiveOld()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), archiveSummary(len(archived)))
		return nil
	})
}

func archiveSummary(count int) string {
	switch count {
	case 0:
		return "No tasks to archive."
	case 1:
		return "Archived 1 task."
	default:
		return fmt.Sprintf("Archived %d tasks.", count)
	}
}

// taskTimeNow is the reference time for list ages.
var taskTimeNow = time.Now
