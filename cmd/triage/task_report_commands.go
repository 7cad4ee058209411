package main

import (
	"fmt"

	"github.com/amonks/triage/internal/listflags"
	"github.com/amonks/triage/task"
	"github.com/spf13/cobra"
)

// list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in the active task file",
	Long: `List tasks in the active task file.

Deleted tasks are hidden unless --all or --status is given.`,
	Aliases: []string{
		"ls",
	},
	Args: cobra.NoArgs,
	RunE: runTaskList,
}

var (
	taskListStatus string
	taskListAll    bool
	taskListJSON   bool
)

// show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// report
var taskReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show details for every task in the active task file",
	Args:  cobra.NoArgs,
	RunE:  runTaskReport,
}

// archived
var taskArchivedCmd = &cobra.Command{
	Use:   "archived",
	Short: "List tasks in the archive file",
	Args:  cobra.NoArgs,
	RunE:  runTaskArchived,
}

var taskArchivedJSON bool

func init() {
	rootCmd.AddCommand(taskListCmd, taskShowCmd, taskReportCmd, taskArchivedCmd)

	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status")
	listflags.AddAllFlag(taskListCmd, &taskListAll)
	listflags.AddJSONFlag(taskListCmd, &taskListJSON)
	listflags.AddJSONFlag(taskShowCmd, &taskShowJSON)
	listflags.AddJSONFlag(taskArchivedCmd, &taskArchivedJSON)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	var status task.Status
	if taskListStatus != "" {
		parsed, err := task.ParseStatus(taskListStatus)
		if err != nil {
			return err
		}
		status = parsed
	}

	session, err := openTracker()
	if err != nil {
		return err
	}

	items := filterTasks(session.Tasks(), status, taskListAll)
	if taskListJSON {
		return encodeJSON(cmd.OutOrStdout(), items)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatTaskList(items, taskTimeNow()))
	return nil
}

// filterTasks keeps tasks matching status. An empty status hides deleted
// tasks unless all is set.
func filterTasks(items []task.Task, status task.Status, all bool) []task.Task {
	filtered := make([]task.Task, 0, len(items))
	for _, item := range items {
		switch {
		case status != "":
			if item.Status != status {
				continue
			}
		case !all:
			if item.Status.IsTerminal() {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}

	session, err := openTracker()
	if err != nil {
		return err
	}

	item, err := session.Task(id)
	if err != nil {
		return err
	}

	if taskShowJSON {
		return encodeJSON(cmd.OutOrStdout(), item)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatTaskDetail(item))
	return nil
}

func runTaskReport(cmd *cobra.Command, args []string) error {
	session, err := openTracker()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatTaskReport(session.Tasks()))
	return nil
}

func runTaskArchived(cmd *cobra.Command, args []string) error {
	session, err := openTracker()
	if err != nil {
		return err
	}

	archived, err := session.Archived()
	if err != nil {
		return err
	}

	if taskArchivedJSON {
		return encodeJSON(cmd.OutOrStdout(), archived)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatArchivedReport(archived, archivedLineWidth))
	return nil
}
