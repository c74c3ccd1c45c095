// Package report renders the team comparison summary as a fixed-layout
// text report.
package report

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/team-weather/internal/aggregate"
	"github.com/couchcryptid/team-weather/internal/domain"
)

const noData = "no data"

// Render produces the printable comparison report for a summary.
func Render(s aggregate.Summary) string {
	var b strings.Builder

	b.WriteString("TEAM WEATHER DASHBOARD REPORT\n")
	b.WriteString("=============================\n\n")

	b.WriteString("Overview\n")
	fmt.Fprintf(&b, "  Members:    %d%s\n", s.TotalMembers, nameList(s.Members))
	fmt.Fprintf(&b, "  Cities:     %d%s\n", s.TotalCities, nameList(s.Cities))
	fmt.Fprintf(&b, "  Countries:  %s\n", joinOrDash(s.Countries))
	fmt.Fprintf(&b, "  Records:    %d\n\n", s.TotalRecords)

	b.WriteString("Temperature\n")
	if s.Temperature.HasData() {
		fmt.Fprintf(&b, "  Hottest:    %.1f C%s\n", *s.Temperature.Max, inCity(s.Temperature.HottestCity))
		fmt.Fprintf(&b, "  Coldest:    %.1f C%s\n", *s.Temperature.Min, inCity(s.Temperature.ColdestCity))
		fmt.Fprintf(&b, "  Average:    %.1f C\n", *s.Temperature.Mean)
		fmt.Fprintf(&b, "  Range:      %.1f C\n", *s.Temperature.Max-*s.Temperature.Min)
	} else {
		fmt.Fprintf(&b, "  %s\n", noData)
	}
	b.WriteString("\n")

	b.WriteString("Humidity\n")
	writeStats(&b, s.Humidity, "%.0f%%", "Highest", "Lowest")
	b.WriteString("\n")

	b.WriteString("Wind\n")
	writeStats(&b, s.WindSpeed, "%.1f", "Strongest", "Calmest")
	b.WriteString("\n")

	b.WriteString("Conditions\n")
	fmt.Fprintf(&b, "  %s\n\n", joinOrDash(s.Conditions))

	fmt.Fprintf(&b, "Report generated: %s\n", domain.Now().Format("2006-01-02 15:04:05 MST"))

	return b.String()
}

func writeStats(b *strings.Builder, stats aggregate.FieldStats, valueFmt, highLabel, lowLabel string) {
	if !stats.HasData() {
		fmt.Fprintf(b, "  %s\n", noData)
		return
	}
	fmt.Fprintf(b, "  %-11s "+valueFmt+"\n", highLabel+":", *stats.Max)
	fmt.Fprintf(b, "  %-11s "+valueFmt+"\n", lowLabel+":", *stats.Min)
	fmt.Fprintf(b, "  %-11s "+valueFmt+"\n", "Average:", *stats.Mean)
}

func nameList(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return " (" + strings.Join(names, ", ") + ")"
}

func inCity(city string) string {
	if city == "" {
		return ""
	}
	return " in " + city
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
