package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crcs-platform/campusctl/internal/tui"
	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"user"},
	Short:   "Manage user profiles",
	Long: `Inspect and manage user profiles. Most subcommands require the
ADMIN role; 'profile' and 'update' work on your own account.

Examples:
  campusctl users profile
  campusctl users update --name "Ada Lovelace" --bio "Numerical analysis"
  campusctl users list`,
}

var (
	userListPage int
	userListSize int
)

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user profiles",
	RunE:  runUsersList,
}

var usersProfileCmd = &cobra.Command{
	Use:   "profile [user-id]",
	Short: "Show a user profile (your own by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUsersProfile,
}

var (
	userUpdateName  string
	userUpdateBio   string
	userUpdatePhone string
)

var usersUpdateCmd = &cobra.Command{
	Use:   "update [user-id]",
	Short: "Update a profile (your own by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUsersUpdate,
}

var (
	userCreateEmail string
	userCreateName  string
	userCreateRole  string
)

var usersCreateCmd = &cobra.Command{
	Use:   "create <user-id>",
	Short: "Create a profile record directly",
	Long: `Create a profile record for an existing account ID. Normal accounts
are created through 'campusctl auth signup'; this is the admin path for
provisioning profiles out of band.`,
	Args: cobra.ExactArgs(1),
	RunE: runUsersCreate,
}

var usersDeactivateCmd = &cobra.Command{
	Use:   "deactivate <user-id>",
	Short: "Deactivate an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersDeactivate,
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersDelete,
}

func init() {
	usersListCmd.Flags().IntVar(&userListPage, "page", 0, "page number (zero-based)")
	usersListCmd.Flags().IntVar(&userListSize, "size", 0, "page size")

	usersUpdateCmd.Flags().StringVar(&userUpdateName, "name", "", "new display name")
	usersUpdateCmd.Flags().StringVar(&userUpdateBio, "bio", "", "new bio")
	usersUpdateCmd.Flags().StringVar(&userUpdatePhone, "phone", "", "new phone number")

	usersCreateCmd.Flags().StringVar(&userCreateEmail, "email", "", "account email (required)")
	usersCreateCmd.Flags().StringVar(&userCreateName, "name", "", "display name")
	usersCreateCmd.Flags().StringVar(&userCreateRole, "role", "", "role (default USER)")
	_ = usersCreateCmd.MarkFlagRequired("email")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersProfileCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeactivateCmd)
	usersCmd.AddCommand(usersDeleteCmd)

	rootCmd.AddCommand(usersCmd)
}

// targetUserID resolves an optional positional user ID, defaulting to the
// signed-in user.
func (a *app) targetUserID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if user := a.store.User(); user != nil {
		return user.UserID
	}
	return ""
}

func runUsersList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("listing users", types.RoleAdmin); err != nil {
		return err
	}

	page, err := a.client.ListUsers(cmd.Context(), types.PageQuery{Page: userListPage, Size: userListSize})
	if err != nil {
		return err
	}

	if a.textOutput() {
		return tui.RenderUsers(cmd.OutOrStdout(), page)
	}
	f, err := a.formatter(cmd)
	if err != nil {
		return err
	}
	return f.Format(page)
}

func runUsersProfile(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) > 0 && args[0] != a.store.User().UserID {
		if err := a.requireRole("viewing another user's profile", types.RoleAdmin); err != nil {
			return err
		}
	}

	profile, err := a.client.GetUserProfile(cmd.Context(), a.targetUserID(args))
	if err != nil {
		return err
	}

	if !a.textOutput() {
		f, err := a.formatter(cmd)
		if err != nil {
			return err
		}
		return f.Format(profile)
	}

	out := cmd.OutOrStdout()
	name := "-"
	if profile.Name != nil {
		name = *profile.Name
	}
	fmt.Fprintf(out, "ID:     %s\n", profile.UserID)
	fmt.Fprintf(out, "Email:  %s\n", profile.Email)
	fmt.Fprintf(out, "Name:   %s\n", name)
	fmt.Fprintf(out, "Role:   %s\n", profile.Role)
	if profile.Bio != nil {
		fmt.Fprintf(out, "Bio:    %s\n", *profile.Bio)
	}
	if profile.PhoneNumber != nil {
		fmt.Fprintf(out, "Phone:  %s\n", *profile.PhoneNumber)
	}
	fmt.Fprintf(out, "Active: %t\n", profile.IsActive)
	return nil
}

func runUsersUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) > 0 && args[0] != a.store.User().UserID {
		if err := a.requireRole("updating another user's profile", types.RoleAdmin); err != nil {
			return err
		}
	}

	req := types.UpdateUserProfileRequest{}
	if userUpdateName != "" {
		req.Name = &userUpdateName
	}
	if userUpdateBio != "" {
		req.Bio = &userUpdateBio
	}
	if userUpdatePhone != "" {
		req.PhoneNumber = &userUpdatePhone
	}

	profile, err := a.client.UpdateUserProfile(cmd.Context(), a.targetUserID(args), req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated profile for %s\n", profile.Email)
	return nil
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("creating user profiles", types.RoleAdmin); err != nil {
		return err
	}

	profile, err := a.client.CreateUserProfile(cmd.Context(), types.CreateUserProfileRequest{
		UserID: args[0],
		Email:  userCreateEmail,
		Name:   userCreateName,
		Role:   types.Role(userCreateRole),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s for %s\n", profile.UserID, profile.Email)
	return nil
}

func runUsersDeactivate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("deactivating users", types.RoleAdmin); err != nil {
		return err
	}

	resp, err := a.client.DeactivateUser(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	msg := resp.Message
	if msg == "" {
		msg = fmt.Sprintf("User %s deactivated", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("deleting users", types.RoleAdmin); err != nil {
		return err
	}

	if tui.IsInteractive() {
		confirmed, err := tui.PromptForConfirmation(
			fmt.Sprintf("Permanently delete user %s?", args[0]), false)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	resp, err := a.client.DeleteUser(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	msg := resp.Message
	if msg == "" {
		msg = fmt.Sprintf("User %s deleted", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
