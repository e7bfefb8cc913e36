package statusbar_test

import (
	"fmt"

	"github.com/riordanpawley/grove/internal/types"
	"github.com/riordanpawley/grove/internal/ui/statusbar"
	"github.com/riordanpawley/grove/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	sb := statusbar.New(types.PageTasks, 80, styles.New())

	// Output includes ANSI codes, so only check it rendered
	fmt.Println(len(sb.Render()) > 0)
	// Output: true
}

// ExampleGetHints shows the archive page hints
func ExampleGetHints() {
	fmt.Println(statusbar.GetHints(types.PageArchive))
	// Output: u: uncomplete  d: delete  r: restore  space: as done  tab: tasks  q: quit
}
