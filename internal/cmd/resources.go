package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crcs-platform/campusctl/internal/tui"
	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

var resourcesCmd = &cobra.Command{
	Use:     "resources",
	Aliases: []string{"resource"},
	Short:   "Browse and manage campus resources",
	Long: `List, inspect and manage bookable campus resources: rooms, labs,
halls, equipment and the rest of the catalog.

Examples:
  campusctl resources list
  campusctl resources list --type LAB --page 2
  campusctl resources get 4f2a...
  campusctl resources browse`,
}

var (
	resourceListType      string
	resourceListAvailable bool
	resourceListOwner     string
	resourceListPage      int
	resourceListSize      int
)

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources",
	RunE:  runResourcesList,
}

var resourcesGetCmd = &cobra.Command{
	Use:   "get <resource-id>",
	Short: "Show one resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesGet,
}

var resourcesBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse resources interactively",
	RunE:  runResourcesBrowse,
}

var (
	resourceCreateType        string
	resourceCreateDescription string
	resourceCreateLocation    string
	resourceCreateCapacity    int
	resourceCreateResponsible string
)

var resourcesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Register a new resource",
	Long: `Register a new bookable resource. Requires a manager role
(ADMIN, RESOURCE_MANAGER or FACILITY_MANAGER).`,
	Args: cobra.ExactArgs(1),
	RunE: runResourcesCreate,
}

var (
	resourceUpdateName        string
	resourceUpdateDescription string
	resourceUpdateLocation    string
	resourceUpdateCapacity    int
)

var resourcesUpdateCmd = &cobra.Command{
	Use:   "update <resource-id>",
	Short: "Update a resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesUpdate,
}

var resourcesStatusCmd = &cobra.Command{
	Use:   "status <resource-id> <status>",
	Short: "Change a resource's availability status",
	Long: `Change a resource's availability status to one of
AVAILABLE, BOOKED, MAINTENANCE or UNAVAILABLE.`,
	Args: cobra.ExactArgs(2),
	RunE: runResourcesStatus,
}

var resourcesDeleteCmd = &cobra.Command{
	Use:   "delete <resource-id>",
	Short: "Remove a resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesDelete,
}

func init() {
	resourcesListCmd.Flags().StringVar(&resourceListType, "type", "", "filter by resource type (ROOM, LAB, HALL, ...)")
	resourcesListCmd.Flags().BoolVar(&resourceListAvailable, "available", false, "only currently available resources")
	resourcesListCmd.Flags().StringVar(&resourceListOwner, "owner", "", "only resources owned by this user ID")
	resourcesListCmd.Flags().IntVar(&resourceListPage, "page", 0, "page number (zero-based)")
	resourcesListCmd.Flags().IntVar(&resourceListSize, "size", 0, "page size")

	resourcesCreateCmd.Flags().StringVar(&resourceCreateType, "type", "", "resource type (required)")
	resourcesCreateCmd.Flags().StringVar(&resourceCreateDescription, "description", "", "description")
	resourcesCreateCmd.Flags().StringVar(&resourceCreateLocation, "location", "", "location")
	resourcesCreateCmd.Flags().IntVar(&resourceCreateCapacity, "capacity", 0, "capacity")
	resourcesCreateCmd.Flags().StringVar(&resourceCreateResponsible, "responsible", "", "responsible person")
	_ = resourcesCreateCmd.MarkFlagRequired("type")

	resourcesUpdateCmd.Flags().StringVar(&resourceUpdateName, "name", "", "new name")
	resourcesUpdateCmd.Flags().StringVar(&resourceUpdateDescription, "description", "", "new description")
	resourcesUpdateCmd.Flags().StringVar(&resourceUpdateLocation, "location", "", "new location")
	resourcesUpdateCmd.Flags().IntVar(&resourceUpdateCapacity, "capacity", 0, "new capacity")

	resourcesCmd.AddCommand(resourcesListCmd)
	resourcesCmd.AddCommand(resourcesGetCmd)
	resourcesCmd.AddCommand(resourcesBrowseCmd)
	resourcesCmd.AddCommand(resourcesCreateCmd)
	resourcesCmd.AddCommand(resourcesUpdateCmd)
	resourcesCmd.AddCommand(resourcesStatusCmd)
	resourcesCmd.AddCommand(resourcesDeleteCmd)

	rootCmd.AddCommand(resourcesCmd)
}

func runResourcesList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if resourceListOwner != "" {
		resources, err := a.client.ListResourcesByOwner(cmd.Context(), resourceListOwner)
		if err != nil {
			return err
		}
		page := &types.Page[types.Resource]{
			Content:       resources,
			TotalPages:    1,
			TotalElements: int64(len(resources)),
			Last:          true,
			First:         true,
		}
		return renderResourcePage(cmd, a, page)
	}

	q := types.PageQuery{Page: resourceListPage, Size: resourceListSize}

	var page *types.Page[types.Resource]
	switch {
	case resourceListAvailable:
		page, err = a.client.ListAvailableResources(cmd.Context(), q)
	case resourceListType != "":
		page, err = a.client.ListResourcesByType(cmd.Context(), types.ResourceType(strings.ToUpper(resourceListType)), q)
	default:
		page, err = a.client.ListResources(cmd.Context(), q)
	}
	if err != nil {
		return err
	}
	return renderResourcePage(cmd, a, page)
}

func renderResourcePage(cmd *cobra.Command, a *app, page *types.Page[types.Resource]) error {
	if a.textOutput() {
		return tui.RenderResources(cmd.OutOrStdout(), page)
	}
	f, err := a.formatter(cmd)
	if err != nil {
		return err
	}
	return f.Format(page)
}

func runResourcesGet(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	resource, err := a.client.GetResource(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if a.textOutput() {
		return tui.RenderResourceDetail(cmd.OutOrStdout(), resource)
	}
	f, err := a.formatter(cmd)
	if err != nil {
		return err
	}
	return f.Format(resource)
}

func runResourcesBrowse(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return tui.RunBrowser(cmd.Context(), a.client, resourceListSize)
}

func runResourcesCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("creating resources",
		types.RoleAdmin, types.RoleResourceManager, types.RoleFacilityManager); err != nil {
		return err
	}

	req := types.CreateResourceRequest{
		Name:              args[0],
		Type:              types.ResourceType(strings.ToUpper(resourceCreateType)),
		Description:       resourceCreateDescription,
		Location:          resourceCreateLocation,
		Capacity:          resourceCreateCapacity,
		ResponsiblePerson: resourceCreateResponsible,
	}

	resource, err := a.client.CreateResource(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created resource %s (%s)\n", resource.Name, resource.ID)
	return nil
}

func runResourcesUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("updating resources",
		types.RoleAdmin, types.RoleResourceManager, types.RoleFacilityManager); err != nil {
		return err
	}

	req := types.UpdateResourceRequest{}
	if resourceUpdateName != "" {
		req.Name = &resourceUpdateName
	}
	if resourceUpdateDescription != "" {
		req.Description = &resourceUpdateDescription
	}
	if resourceUpdateLocation != "" {
		req.Location = &resourceUpdateLocation
	}
	if resourceUpdateCapacity > 0 {
		req.Capacity = &resourceUpdateCapacity
	}

	resource, err := a.client.UpdateResource(cmd.Context(), args[0], req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated resource %s\n", resource.ID)
	return nil
}

func runResourcesStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("changing resource status",
		types.RoleAdmin, types.RoleResourceManager, types.RoleFacilityManager); err != nil {
		return err
	}

	status := types.ResourceStatus(strings.ToUpper(args[1]))
	if err := a.client.UpdateResourceStatus(cmd.Context(), args[0], status); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Resource %s is now %s\n", args[0], status)
	return nil
}

func runResourcesDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("deleting resources",
		types.RoleAdmin, types.RoleResourceManager, types.RoleFacilityManager); err != nil {
		return err
	}

	if tui.IsInteractive() {
		confirmed, err := tui.PromptForConfirmation(
			fmt.Sprintf("Delete resource %s? Existing bookings will be orphaned.", args[0]), false)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := a.client.DeleteResource(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted resource %s\n", args[0])
	return nil
}
