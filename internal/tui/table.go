package tui

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func pageFooter(w io.Writer, styles Styles, page, totalPages int, totalElements int64) {
	if totalPages <= 1 {
		return
	}
	fmt.Fprintln(w, styles.Muted.Render(
		fmt.Sprintf("Page %d of %d (%d total)", page+1, totalPages, totalElements)))
}

// RenderResources writes a resource page as an aligned table.
func RenderResources(w io.Writer, page *types.Page[types.Resource]) error {
	styles := DefaultStyles()
	if len(page.Content) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("No resources found."))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, styles.Header.Render("ID\tNAME\tTYPE\tSTATUS\tLOCATION\tCAPACITY"))
	for _, r := range page.Content {
		capacity := "-"
		if r.Capacity != nil {
			capacity = strconv.Itoa(*r.Capacity)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Type,
			styles.StatusStyle(string(r.Status)).Render(string(r.Status)),
			deref(r.Location), capacity)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(w, styles, page.Page, page.TotalPages, page.TotalElements)
	return nil
}

// RenderResourceDetail writes one resource with all its fields.
func RenderResourceDetail(w io.Writer, r *types.Resource) error {
	styles := DefaultStyles()
	fmt.Fprintln(w, styles.Title.Render(r.Name))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", r.ID)
	fmt.Fprintf(tw, "Type:\t%s\n", r.Type)
	fmt.Fprintf(tw, "Status:\t%s\n", styles.StatusStyle(string(r.Status)).Render(string(r.Status)))
	fmt.Fprintf(tw, "Location:\t%s\n", deref(r.Location))
	if r.Capacity != nil {
		fmt.Fprintf(tw, "Capacity:\t%d\n", *r.Capacity)
	}
	fmt.Fprintf(tw, "Description:\t%s\n", deref(r.Description))
	fmt.Fprintf(tw, "Responsible:\t%s\n", deref(r.ResponsiblePerson))
	return tw.Flush()
}

// RenderBookings writes a booking page as an aligned table.
func RenderBookings(w io.Writer, page *types.Page[types.Booking]) error {
	styles := DefaultStyles()
	if len(page.Content) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("No bookings found."))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, styles.Header.Render("ID\tRESOURCE\tSTART\tEND\tSTATUS"))
	for _, b := range page.Content {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.ResourceName, b.StartTime, b.EndTime,
			styles.StatusStyle(string(b.Status)).Render(string(b.Status)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(w, styles, page.Page, page.TotalPages, page.TotalElements)
	return nil
}

// RenderBookingDetail writes one booking with all its fields.
func RenderBookingDetail(w io.Writer, b *types.Booking) error {
	styles := DefaultStyles()
	fmt.Fprintln(w, styles.Title.Render("Booking "+b.ID))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Resource:\t%s (%s)\n", b.ResourceName, b.ResourceID)
	fmt.Fprintf(tw, "Start:\t%s\n", b.StartTime)
	fmt.Fprintf(tw, "End:\t%s\n", b.EndTime)
	fmt.Fprintf(tw, "Status:\t%s\n", styles.StatusStyle(string(b.Status)).Render(string(b.Status)))
	fmt.Fprintf(tw, "Purpose:\t%s\n", deref(b.Purpose))
	return tw.Flush()
}

// RenderUsers writes a user profile page as an aligned table.
func RenderUsers(w io.Writer, page *types.Page[types.UserProfile]) error {
	styles := DefaultStyles()
	if len(page.Content) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("No users found."))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, styles.Header.Render("ID\tEMAIL\tNAME\tROLE\tACTIVE"))
	for _, u := range page.Content {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n",
			u.UserID, u.Email, deref(u.Name), u.Role, u.IsActive)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(w, styles, page.Page, page.TotalPages, page.TotalElements)
	return nil
}
