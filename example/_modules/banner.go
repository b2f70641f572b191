package banner

import (
	"strings"

	"github.com/pthm/elcmp/el"
)

// Render shows the active filter above the list. This module is loaded at
// runtime, so edits show up without rebuilding the server.
func Render(ctx map[string]interface{}) string {
	status, _ := ctx["status"].(string)
	if status == "" {
		return el.Div(`class="banner"`, "Showing everything")
	}
	return el.Div(`class="banner"`, "Showing "+strings.ToLower(el.Text(status))+" todos")
}
