// Package ui provides a terminal widget for browsing accumulated validation
// messages.
package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/quentis/validog/vlog"
)

// levelTags maps each severity to a tview color tag name.
var levelTags = map[vlog.Level]string{
	vlog.LevelTrace:       "gray",
	vlog.LevelDebug:       "darkcyan",
	vlog.LevelInformation: "white",
	vlog.LevelWarning:     "yellow",
	vlog.LevelError:       "red",
}

// ReportView is a scrollable, color-coded view of a validation report.
// It consumes message snapshots; it never touches a live logger.
type ReportView struct {
	*tview.TextView
	warnCount  int
	errorCount int
	onClose    func()
}

// NewReportView creates an empty report view.
func NewReportView() *ReportView {
	v := &ReportView{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(true).
			SetWrap(false),
	}
	v.SetBorder(true)
	v.updateTitle()

	v.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape && v.onClose != nil {
			v.onClose()
			return nil
		}
		return event
	})
	return v
}

// SetCloseFunc sets the callback invoked when the user presses Escape.
func (v *ReportView) SetCloseFunc(onClose func()) *ReportView {
	v.onClose = onClose
	return v
}

// SetMessages replaces the view's content with the given messages, rendered
// in the same nested-brace layout as Logger.String with per-level colors.
func (v *ReportView) SetMessages(messages []vlog.Message) {
	v.warnCount = 0
	v.errorCount = 0

	var builder strings.Builder
	var previous []string
	for _, msg := range messages {
		switch msg.Level {
		case vlog.LevelWarning:
			v.warnCount++
		case vlog.LevelError:
			v.errorCount++
		}

		match := 0
		for match < len(previous) && match < len(msg.Scope) && previous[match] == msg.Scope[match] {
			match++
		}
		for level := len(previous); level > match; level-- {
			fmt.Fprintf(&builder, "%s}\n", strings.Repeat(" ", (level-1)*2))
		}
		previous = msg.Scope
		for i := match; i < len(previous); i++ {
			fmt.Fprintf(&builder, "%s[blue]%s[-] {\n", strings.Repeat(" ", i*2), tview.Escape(previous[i]))
		}
		tag := levelTags[msg.Level]
		fmt.Fprintf(&builder, "%s[%s]%s[-]: %s: %s\n",
			strings.Repeat(" ", len(previous)*2), tag, msg.Level, tview.Escape(msg.Property), tview.Escape(msg.Text))
	}
	for level := len(previous); level > 0; level-- {
		fmt.Fprintf(&builder, "%s}\n", strings.Repeat(" ", (level-1)*2))
	}

	v.SetText(builder.String())
	v.ScrollToBeginning()
	v.updateTitle()
}

// Counts returns the number of warning and error messages currently shown.
func (v *ReportView) Counts() (warnings, errors int) {
	return v.warnCount, v.errorCount
}

func (v *ReportView) updateTitle() {
	v.SetTitle(fmt.Sprintf(" Validation Report ([yellow]%d warnings[-], [red]%d errors[-]) ",
		v.warnCount, v.errorCount))
}
