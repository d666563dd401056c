package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/stoa-vault/models"
)

// renderBuildInfoWindow shows the About page opened with ctrl+v.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	lines := []string{"stoa, an encrypted vault for private notes", ""}
	for _, f := range info.Fields() {
		lines = append(lines, fmt.Sprintf("%-8s %s", f.Label+":", f.Value))
	}
	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
