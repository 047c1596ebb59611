package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"fleetform/pkg/domain"
)

// ContentRenderer transforms the recap before it is printed. The CLI
// plugs in a markdown renderer here; tests and non-TTY runs leave it
// unset and get the raw text.
type ContentRenderer func(string) (string, error)

// buildRecap renders the collected profile as markdown, one line per
// list entry, with wording pluralized off the counts.
func buildRecap(p *domain.Profile) string {
	var b strings.Builder

	b.WriteString("# Onboarding recap\n\n")
	fmt.Fprintf(&b, "%s, here is what we registered about %s:\n\n", p.UserName, p.CompanyName)

	fmt.Fprintf(&b, "- %d %s:\n", p.EmployeeCount, pluralize(p.EmployeeCount, "employee", "employees"))
	for _, name := range p.EmployeeNames {
		fmt.Fprintf(&b, "  - %s\n", name)
	}

	fmt.Fprintf(&b, "- %d %s:\n", p.TruckCount, pluralize(p.TruckCount, "truck", "trucks"))
	for _, vol := range p.TruckVolumes {
		fmt.Fprintf(&b, "  - %s\n", formatVolume(vol))
	}

	fmt.Fprintf(&b, "- truck type: %s\n", p.TruckType)

	return b.String()
}

func pluralize(n int, singular, plural string) string {
	if n > 1 {
		return plural
	}
	return singular
}

// formatVolume prints a volume without trailing zeros: 10 stays
// "10 m3", 20.5 stays "20.5 m3".
func formatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " m3"
}
