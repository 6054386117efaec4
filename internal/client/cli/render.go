package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/postdesk/internal/client/services"
	"golang.org/x/term"
)

const ellipsis = "..."

// stdoutWidth reports the width of the terminal on stdout, or 0 when stdout
// is not a terminal.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// truncate shortens s to at most limit runes, marking the cut with an
// ellipsis. limit <= 0 means no limit.
func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string(r[:limit])
	}
	return string(r[:limit-len(ellipsis)]) + ellipsis
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// renderBoard prints the posts screen: banners first, then the table.
// Titles are cut to fit width when it is known.
func renderBoard(w io.Writer, b services.Board, width int) {
	fmt.Fprintln(w, "Posts")

	if b.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", b.Error)
	}
	if b.Success != "" {
		fmt.Fprintln(w, b.Success)
	}
	if b.ActionLoading {
		fmt.Fprintln(w, "Processing...")
	}
	if b.Loading {
		fmt.Fprintln(w, "Loading...")
		return
	}

	if b.EditDraft != nil {
		fmt.Fprintf(w, "Editing post %d: %s ('save' or 'cancel')\n", b.EditDraft.ID, oneLine(b.EditDraft.Title))
	}

	if len(b.Posts) == 0 {
		fmt.Fprintln(w, "No posts.")
		return
	}

	idWidth := len("ID")
	for _, p := range b.Posts {
		if n := len(fmt.Sprint(p.ID)); n > idWidth {
			idWidth = n
		}
	}

	titleWidth := 0
	if width > 0 {
		titleWidth = width - idWidth - len(" | ")
		if titleWidth < 1 {
			titleWidth = 1
		}
	}

	fmt.Fprintf(w, "%-*s | %s\n", idWidth, "ID", "Title")
	for _, p := range b.Posts {
		fmt.Fprintf(w, "%-*d | %s\n", idWidth, p.ID, truncate(oneLine(p.Title), titleWidth))
	}
}
