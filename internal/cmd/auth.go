package cmd

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/crcs-platform/campusctl/internal/errors"
	"github.com/crcs-platform/campusctl/internal/tui"
	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your session with the campus platform",
	Long: `Sign in, sign up and inspect the local session.

Tokens are stored under the campusctl home directory (default ~/.campusctl)
and refreshed automatically when the gateway reports them expired.

Examples:
  campusctl auth login --email ada@campus.edu
  campusctl auth status
  campusctl auth logout`,
}

var (
	loginEmail    string
	loginPassword string
)

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store a session",
	RunE:  runAuthLogin,
}

var (
	signupEmail    string
	signupPassword string
	signupName     string
	signupRole     string
)

var authSignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE:  runAuthSignup,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the local session",
	Long: `Discard the local session. The gateway is notified best-effort;
the local session is cleared even when that notification fails.`,
	RunE: runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session status",
	RunE:  runAuthStatus,
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	RunE:  runAuthWhoami,
}

func init() {
	authLoginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	authLoginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")

	authSignupCmd.Flags().StringVar(&signupEmail, "email", "", "account email")
	authSignupCmd.Flags().StringVar(&signupPassword, "password", "", "account password (prompted when omitted)")
	authSignupCmd.Flags().StringVar(&signupName, "name", "", "display name")
	authSignupCmd.Flags().StringVar(&signupRole, "role", "", "requested role (default USER)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authSignupCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authWhoamiCmd)

	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	email, password := loginEmail, loginPassword
	if email == "" || password == "" {
		if !tui.IsInteractive() {
			return errors.New(errors.ErrCodeInvalidArgs, "email and password are required").
				WithSuggestion("Pass --email and --password, or run in a terminal for prompts")
		}
		in, err := tui.PromptLogin()
		if err != nil {
			return err
		}
		if email == "" {
			email = in.Email
		}
		if password == "" {
			password = in.Password
		}
	}

	if err := a.store.Login(cmd.Context(), email, password); err != nil {
		return errors.Wrap(errors.ErrCodeLoginFailed, a.store.LastError(), err)
	}

	user := a.store.User()
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.DisplayName(), user.Role)
	return nil
}

func runAuthSignup(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	email, password, name := signupEmail, signupPassword, signupName
	if email == "" || password == "" {
		if !tui.IsInteractive() {
			return errors.New(errors.ErrCodeInvalidArgs, "email and password are required").
				WithSuggestion("Pass --email and --password, or run in a terminal for prompts")
		}
		req, err := tui.PromptSignup()
		if err != nil {
			return err
		}
		email, password, name = req.Email, req.Password, req.Name
	}

	if err := a.store.Signup(cmd.Context(), email, password, name, types.Role(signupRole)); err != nil {
		return errors.Wrap(errors.ErrCodeSignupFailed, a.store.LastError(), err)
	}

	user := a.store.User()
	fmt.Fprintf(cmd.OutOrStdout(), "Account created. Logged in as %s (%s)\n", user.DisplayName(), user.Role)
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if !a.store.IsAuthenticated() {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		return nil
	}

	a.store.Logout(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	return nil
}

// sessionStatus is the status command's output shape for json/yaml.
type sessionStatus struct {
	Authenticated bool   `json:"authenticated" yaml:"authenticated"`
	Email         string `json:"email,omitempty" yaml:"email,omitempty"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Role          string `json:"role,omitempty" yaml:"role,omitempty"`
	TokenExpires  string `json:"tokenExpires,omitempty" yaml:"tokenExpires,omitempty"`
	Gateway       string `json:"gateway" yaml:"gateway"`
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	status := sessionStatus{
		Authenticated: a.store.IsAuthenticated(),
		Gateway:       a.cfg.APIURL,
	}
	if user := a.store.User(); user != nil {
		status.Email = user.Email
		if user.Name != nil {
			status.Name = *user.Name
		}
		status.Role = string(user.Role)
	}
	if exp := tokenExpiry(a.store.AccessToken()); !exp.IsZero() {
		status.TokenExpires = exp.Format(time.RFC3339)
	}

	if !a.textOutput() {
		f, err := a.formatter(cmd)
		if err != nil {
			return err
		}
		return f.Format(status)
	}

	out := cmd.OutOrStdout()
	if !status.Authenticated {
		fmt.Fprintln(out, "Not logged in.")
		fmt.Fprintln(out, "Use 'campusctl auth login' to authenticate.")
		return nil
	}

	fmt.Fprintln(out, "Logged in")
	fmt.Fprintf(out, "Email:   %s\n", status.Email)
	if status.Name != "" {
		fmt.Fprintf(out, "Name:    %s\n", status.Name)
	}
	fmt.Fprintf(out, "Role:    %s\n", status.Role)
	fmt.Fprintf(out, "Gateway: %s\n", status.Gateway)
	if status.TokenExpires != "" {
		fmt.Fprintf(out, "Token:   expires %s\n", status.TokenExpires)
	}
	return nil
}

func runAuthWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	user := a.store.User()
	if !a.textOutput() {
		f, err := a.formatter(cmd)
		if err != nil {
			return err
		}
		return f.Format(user)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) <%s>\n", user.DisplayName(), user.Role, user.Email)
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client has no key material and only wants the timestamp for display.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
