package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crcs-platform/campusctl/internal/errors"
	"github.com/crcs-platform/campusctl/internal/tui"
	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

var bookingsCmd = &cobra.Command{
	Use:     "bookings",
	Aliases: []string{"booking"},
	Short:   "Create and manage resource bookings",
	Long: `Book resources, inspect bookings and move them through their
lifecycle (pending, confirmed, cancelled, completed).

Examples:
  campusctl bookings create --resource 4f2a... --start 2026-09-02T10:00:00Z --end 2026-09-02T11:00:00Z
  campusctl bookings list
  campusctl bookings cancel 7c1b...`,
}

var (
	bookingListUser     string
	bookingListResource string
	bookingListPage     int
	bookingListSize     int
)

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookings (your own by default)",
	RunE:  runBookingsList,
}

var bookingsGetCmd = &cobra.Command{
	Use:   "get <booking-id>",
	Short: "Show one booking",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookingsGet,
}

var (
	bookingCreateResource string
	bookingCreateStart    string
	bookingCreateEnd      string
	bookingCreatePurpose  string
	bookingCreateForce    bool
)

var bookingsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Book a resource",
	Long: `Book a resource for a time window. Availability is checked first
and a conflicting window is rejected before the booking is submitted;
--force skips that pre-check and lets the server decide.`,
	RunE: runBookingsCreate,
}

var bookingsApproveCmd = &cobra.Command{
	Use:   "approve <booking-id>",
	Short: "Approve a pending booking",
	Long:  `Approve a pending booking. Requires ADMIN or FACILITY_MANAGER.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBookingsApprove,
}

var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookingsCancel,
}

var bookingsStatusCmd = &cobra.Command{
	Use:   "status <booking-id> <status>",
	Short: "Set a booking's lifecycle state",
	Long: `Set a booking's lifecycle state to one of PENDING, CONFIRMED,
CANCELLED or COMPLETED. Requires ADMIN or FACILITY_MANAGER.`,
	Args: cobra.ExactArgs(2),
	RunE: runBookingsStatus,
}

var (
	availabilityStart string
	availabilityEnd   string
)

var bookingsAvailabilityCmd = &cobra.Command{
	Use:   "availability <resource-id>",
	Short: "Check whether a resource is free for a window",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookingsAvailability,
}

func init() {
	bookingsListCmd.Flags().StringVar(&bookingListUser, "user", "", "list another user's bookings (requires a manager role)")
	bookingsListCmd.Flags().StringVar(&bookingListResource, "resource", "", "list bookings against a resource")
	bookingsListCmd.Flags().IntVar(&bookingListPage, "page", 0, "page number (zero-based)")
	bookingsListCmd.Flags().IntVar(&bookingListSize, "size", 0, "page size")

	bookingsCreateCmd.Flags().StringVar(&bookingCreateResource, "resource", "", "resource ID (required)")
	bookingsCreateCmd.Flags().StringVar(&bookingCreateStart, "start", "", "start time, RFC 3339 (required)")
	bookingsCreateCmd.Flags().StringVar(&bookingCreateEnd, "end", "", "end time, RFC 3339 (required)")
	bookingsCreateCmd.Flags().StringVar(&bookingCreatePurpose, "purpose", "", "purpose of the booking")
	bookingsCreateCmd.Flags().BoolVar(&bookingCreateForce, "force", false, "skip the availability pre-check")
	_ = bookingsCreateCmd.MarkFlagRequired("resource")
	_ = bookingsCreateCmd.MarkFlagRequired("start")
	_ = bookingsCreateCmd.MarkFlagRequired("end")

	bookingsAvailabilityCmd.Flags().StringVar(&availabilityStart, "start", "", "start time, RFC 3339 (required)")
	bookingsAvailabilityCmd.Flags().StringVar(&availabilityEnd, "end", "", "end time, RFC 3339 (required)")
	_ = bookingsAvailabilityCmd.MarkFlagRequired("start")
	_ = bookingsAvailabilityCmd.MarkFlagRequired("end")

	bookingsCmd.AddCommand(bookingsListCmd)
	bookingsCmd.AddCommand(bookingsGetCmd)
	bookingsCmd.AddCommand(bookingsCreateCmd)
	bookingsCmd.AddCommand(bookingsApproveCmd)
	bookingsCmd.AddCommand(bookingsCancelCmd)
	bookingsCmd.AddCommand(bookingsStatusCmd)
	bookingsCmd.AddCommand(bookingsAvailabilityCmd)

	rootCmd.AddCommand(bookingsCmd)
}

func runBookingsList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	q := types.PageQuery{Page: bookingListPage, Size: bookingListSize}

	var page *types.Page[types.Booking]
	switch {
	case bookingListResource != "":
		page, err = a.client.ListResourceBookings(cmd.Context(), bookingListResource, q)
	case bookingListUser != "":
		if err := a.requireRole("listing another user's bookings",
			types.RoleAdmin, types.RoleFacilityManager); err != nil {
			return err
		}
		page, err = a.client.ListUserBookings(cmd.Context(), bookingListUser, q)
	default:
		page, err = a.client.ListUserBookings(cmd.Context(), a.store.User().UserID, q)
	}
	if err != nil {
		return err
	}

	if a.textOutput() {
		return tui.RenderBookings(cmd.OutOrStdout(), page)
	}
	f, err := a.formatter(cmd)
	if err != nil {
		return err
	}
	return f.Format(page)
}

func runBookingsGet(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	booking, err := a.client.GetBooking(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if a.textOutput() {
		return tui.RenderBookingDetail(cmd.OutOrStdout(), booking)
	}
	f, err := a.formatter(cmd)
	if err != nil {
		return err
	}
	return f.Format(booking)
}

func runBookingsCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	req := types.CreateBookingRequest{
		ResourceID: bookingCreateResource,
		StartTime:  bookingCreateStart,
		EndTime:    bookingCreateEnd,
		Purpose:    bookingCreatePurpose,
	}

	if !bookingCreateForce {
		check, err := a.client.CheckAvailabilityForBooking(cmd.Context(), req)
		if err != nil {
			return err
		}
		if !check.Available {
			msg := check.Message
			if msg == "" {
				msg = "the requested window is not available"
			}
			return errors.New(errors.ErrCodeRequestFailed, msg).
				WithSuggestion("Pick another window, or check 'campusctl bookings availability'")
		}
	}

	booking, err := a.client.CreateBooking(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Booked %s from %s to %s (%s, booking %s)\n",
		booking.ResourceName, booking.StartTime, booking.EndTime, booking.Status, booking.ID)
	return nil
}

func runBookingsApprove(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("approving bookings",
		types.RoleAdmin, types.RoleFacilityManager); err != nil {
		return err
	}

	booking, err := a.client.ApproveBooking(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Booking %s is now %s\n", booking.ID, booking.Status)
	return nil
}

func runBookingsCancel(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	resp, err := a.client.CancelBooking(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	msg := resp.Message
	if msg == "" {
		msg = fmt.Sprintf("Booking %s cancelled", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func runBookingsStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.requireRole("setting booking status",
		types.RoleAdmin, types.RoleFacilityManager); err != nil {
		return err
	}

	status := types.BookingStatus(strings.ToUpper(args[1]))
	booking, err := a.client.UpdateBookingStatus(cmd.Context(), args[0], status)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Booking %s is now %s\n", booking.ID, booking.Status)
	return nil
}

func runBookingsAvailability(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	check, err := a.client.CheckAvailability(cmd.Context(), args[0], availabilityStart, availabilityEnd)
	if err != nil {
		return err
	}

	if !a.textOutput() {
		f, err := a.formatter(cmd)
		if err != nil {
			return err
		}
		return f.Format(check)
	}

	out := cmd.OutOrStdout()
	if check.Available {
		fmt.Fprintf(out, "Available: %s is free from %s to %s\n", args[0], availabilityStart, availabilityEnd)
	} else {
		msg := check.Message
		if msg == "" {
			msg = "the window conflicts with an existing booking"
		}
		fmt.Fprintf(out, "Not available: %s\n", msg)
	}
	return nil
}
