package statusbar

import "github.com/riordanpawley/grove/internal/types"

// GetHints returns the keybinding hints for the given page
func GetHints(page types.Page) string {
	switch page {
	case types.PageTasks:
		return "n: new  x: done  enter: edit  d: delete  f: filter  s: sort  tab: archive  ?: help  q: quit"
	case types.PageArchive:
		return "u: uncomplete  d: delete  r: restore  space: as done  tab: tasks  q: quit"
	default:
		return ""
	}
}
