package main

import (
	"fmt"
	"io"
	"strconv"

	"tasklist/internal/config"
	models "tasklist/internal/domain/models/tasks"
	tasksSvc "tasklist/internal/domain/services/tasks"
	"tasklist/internal/repository/postgres"
	"tasklist/internal/seed"

	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create the lists and items tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if cfg.Store != config.StorePostgres {
				return fmt.Errorf("schema requires the %s store", config.StorePostgres)
			}
			if drop {
				if err := requireDestructiveAllowed(cfg, "schema --drop"); err != nil {
					return err
				}
			}

			rt, err := newRuntime(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			if drop {
				if err := postgres.DropSchema(cmd.Context(), rt.pool, rt.tables); err != nil {
					return fmt.Errorf("failed to drop tables: %w", err)
				}
				if err := postgres.EnsureSchema(cmd.Context(), rt.pool, rt.tables); err != nil {
					return fmt.Errorf("failed to recreate tables: %w", err)
				}
				rt.logger.Info("schema recreated", "lists", rt.tables.Lists, "items", rt.tables.Items)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schema ready: %s, %s\n", rt.tables.Lists, rt.tables.Items)
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "Drop the tables and recreate them (loses all data)")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var clearData bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo lists and items for an owner",
		Long: `Seed creates two demo lists with items for --owner. When no owner is
given a new one is generated and printed. Owners that already have lists
are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if clearData {
				if err := requireDestructiveAllowed(cfg, "seed --clear"); err != nil {
					return err
				}
			}

			rt, err := newRuntime(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			if clearData && rt.pool != nil {
				if err := postgres.ClearData(cmd.Context(), rt.pool, rt.tables); err != nil {
					return fmt.Errorf("failed to clear data: %w", err)
				}
				rt.logger.Info("cleared all lists and items")
			}

			owner := ownerID
			if owner == "" {
				owner = seed.NewOwnerID()
			}

			seeder, err := rt.newSeeder()
			if err != nil {
				return err
			}
			result, err := seeder.Seed(cmd.Context(), owner)
			if err != nil {
				return err
			}

			return output(cmd.OutOrStdout(), result, func(w io.Writer) error {
				return renderSeedResult(w, result)
			})
		},
	}

	cmd.Flags().BoolVar(&clearData, "clear", false, "Delete every list and item before seeding")
	return cmd
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show the owner's lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			lists, err := rt.lists.ListLists(cmd.Context(), owner)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), lists, func(w io.Writer) error {
				return renderLists(w, lists)
			})
		},
	}
}

func newShowCmd() *cobra.Command {
	var (
		page    int
		size    int
		sortKey string
		desc    bool
	)

	cmd := &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show one page of a list's items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("list", args[0])
			if err != nil {
				return err
			}

			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			resp, err := rt.lists.GetListPage(cmd.Context(), id, owner, &tasksSvc.PageRequest{
				PageNumber: page,
				PageSize:   size,
				SortBy:     sortKey,
				Descending: desc,
			})
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), resp, func(w io.Writer) error {
				return renderPage(w, resp)
			})
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number (clamped to the last page)")
	cmd.Flags().IntVarP(&size, "size", "s", 0, "Items per page (default $DEFAULT_PAGE_SIZE)")
	cmd.Flags().StringVar(&sortKey, "sort", "id", "Sort key: id|priority|status")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort in descending order")
	return cmd
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Count the owner's items by status and priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			result, err := rt.dashboard.GetDashboard(cmd.Context(), owner)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), result, func(w io.Writer) error {
				return renderDashboard(w, result)
			})
		},
	}
}

func newItemsCmd() *cobra.Command {
	var listID int64

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Show every item of the owner, or of one list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			var items []tasksSvc.ItemResponse
			if listID != 0 {
				items, err = rt.items.ListItemsByList(cmd.Context(), listID, owner)
			} else {
				items, err = rt.items.ListItems(cmd.Context(), owner)
			}
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), items, func(w io.Writer) error {
				return renderItems(w, items)
			})
		},
	}

	cmd.Flags().Int64Var(&listID, "list", 0, "Only show items of this list")
	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Get, create, update or delete a list",
	}

	var title, description string

	get := &cobra.Command{
		Use:   "get <list-id>",
		Short: "Show a list with all of its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			list, err := rt.lists.GetList(cmd.Context(), id, owner)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), list, func(w io.Writer) error {
				return renderList(w, list)
			})
		},
	}

	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			list, err := rt.lists.CreateList(cmd.Context(), owner, &tasksSvc.CreateListRequest{
				Title:       args[0],
				Description: description,
			})
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), list, func(w io.Writer) error {
				return renderList(w, list)
			})
		},
	}
	create.Flags().StringVarP(&description, "description", "d", "", "List description")

	update := &cobra.Command{
		Use:   "update <list-id>",
		Short: "Replace a list's title and description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			// Unset flags keep their current values
			current, err := rt.lists.GetList(cmd.Context(), id, owner)
			if err != nil {
				return err
			}
			req := &tasksSvc.UpdateListRequest{Title: current.Title, Description: current.Description}
			if cmd.Flags().Changed("title") {
				req.Title = title
			}
			if cmd.Flags().Changed("description") {
				req.Description = description
			}

			list, err := rt.lists.UpdateList(cmd.Context(), id, owner, req)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), list, func(w io.Writer) error {
				return renderList(w, list)
			})
		},
	}
	update.Flags().StringVarP(&title, "title", "t", "", "New title")
	update.Flags().StringVarP(&description, "description", "d", "", "New description")

	del := &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a list and all of its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			deleted, err := rt.lists.DeleteList(cmd.Context(), id, owner)
			if err != nil {
				return err
			}
			return renderDeleted(cmd.OutOrStdout(), "list", id, deleted)
		},
	}

	cmd.AddCommand(get, create, update, del)
	return cmd
}

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Get, add, update or delete an item",
	}

	var (
		title       string
		description string
		itemType    string
		status      string
		priority    string
	)

	get := &cobra.Command{
		Use:   "get <item-id>",
		Short: "Show an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("item", args[0])
			if err != nil {
				return err
			}
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			item, err := rt.items.GetItem(cmd.Context(), id, owner)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), item, func(w io.Writer) error {
				return renderItem(w, item)
			})
		},
	}

	add := &cobra.Command{
		Use:   "add <list-id> <title>",
		Short: "Add an item to a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			statusCode, err := parseStatusArg(status)
			if err != nil {
				return err
			}
			priorityCode, err := parsePriorityArg(priority)
			if err != nil {
				return err
			}

			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			item, err := rt.items.CreateItem(cmd.Context(), owner, &tasksSvc.CreateItemRequest{
				Title:       args[1],
				Description: description,
				Type:        itemType,
				Status:      statusCode,
				Priority:    priorityCode,
				ListID:      listID,
			})
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), item, func(w io.Writer) error {
				return renderItem(w, item)
			})
		},
	}
	add.Flags().StringVarP(&description, "description", "d", "", "Item description")
	add.Flags().StringVar(&itemType, "type", "", "Free-form item type, e.g. Report")
	add.Flags().StringVar(&status, "status", "not_started", "Status name or code")
	add.Flags().StringVar(&priority, "priority", "low", "Priority name or code")

	update := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Replace an item's fields; unset flags keep their values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("item", args[0])
			if err != nil {
				return err
			}
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			current, err := rt.items.GetItem(cmd.Context(), id, owner)
			if err != nil {
				return err
			}
			req := &tasksSvc.UpdateItemRequest{
				Title:       current.Title,
				Description: current.Description,
				Type:        current.Type,
				Status:      int(current.Status),
				Priority:    int(current.Priority),
				ListID:      current.ListID,
			}
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = title
			}
			if flags.Changed("description") {
				req.Description = description
			}
			if flags.Changed("type") {
				req.Type = itemType
			}
			if flags.Changed("status") {
				if req.Status, err = parseStatusArg(status); err != nil {
					return err
				}
			}
			if flags.Changed("priority") {
				if req.Priority, err = parsePriorityArg(priority); err != nil {
					return err
				}
			}

			item, err := rt.items.UpdateItem(cmd.Context(), id, owner, req)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), item, func(w io.Writer) error {
				return renderItem(w, item)
			})
		},
	}
	update.Flags().StringVarP(&title, "title", "t", "", "New title")
	update.Flags().StringVarP(&description, "description", "d", "", "New description")
	update.Flags().StringVar(&itemType, "type", "", "New item type")
	update.Flags().StringVar(&status, "status", "", "New status name or code")
	update.Flags().StringVar(&priority, "priority", "", "New priority name or code")

	setStatus := &cobra.Command{
		Use:   "status <item-id> <status>",
		Short: "Change an item's status (not_started, in_progress, done or 0-2)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("item", args[0])
			if err != nil {
				return err
			}
			code, err := parseStatusArg(args[1])
			if err != nil {
				return err
			}
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			item, err := rt.items.UpdateItemStatus(cmd.Context(), id, owner, code)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), item, func(w io.Writer) error {
				return renderItem(w, item)
			})
		},
	}

	setPriority := &cobra.Command{
		Use:   "priority <item-id> <priority>",
		Short: "Change an item's priority (low, medium, high or 0-2)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("item", args[0])
			if err != nil {
				return err
			}
			code, err := parsePriorityArg(args[1])
			if err != nil {
				return err
			}
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			item, err := rt.items.UpdateItemPriority(cmd.Context(), id, owner, code)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), item, func(w io.Writer) error {
				return renderItem(w, item)
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("item", args[0])
			if err != nil {
				return err
			}
			rt, owner, err := ownerRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			deleted, err := rt.items.DeleteItem(cmd.Context(), id, owner)
			if err != nil {
				return err
			}
			return renderDeleted(cmd.OutOrStdout(), "item", id, deleted)
		},
	}

	cmd.AddCommand(get, add, update, setStatus, setPriority, del)
	return cmd
}

func parseID(resource, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", resource, arg)
	}
	return id, nil
}

// parseStatusArg accepts a wire code ("2") or a name ("done", "In Progress").
// Out-of-range codes are passed through so the service can reject them.
func parseStatusArg(arg string) (int, error) {
	if code, err := strconv.Atoi(arg); err == nil {
		return code, nil
	}
	s, ok := models.ParseStatus(arg)
	if !ok {
		return 0, fmt.Errorf("unknown status %q (want not_started, in_progress or done)", arg)
	}
	return int(s), nil
}

// parsePriorityArg accepts a wire code ("1") or a name ("medium")
func parsePriorityArg(arg string) (int, error) {
	if code, err := strconv.Atoi(arg); err == nil {
		return code, nil
	}
	p, ok := models.ParsePriority(arg)
	if !ok {
		return 0, fmt.Errorf("unknown priority %q (want low, medium or high)", arg)
	}
	return int(p), nil
}
