package panel

import (
	"github.com/jask/pospreview/internal/content"
	"github.com/jask/pospreview/internal/view"
)

// Mark is the icon and tone drawn for a test status.
type Mark struct {
	Icon view.Icon
	Tone view.Tone
}

var (
	PassMark = Mark{Icon: view.IconCheck, Tone: view.ToneSuccess}
	FailMark = Mark{Icon: view.IconCross, Tone: view.ToneError}
)

// MarkFor maps a status to its mark. A value outside the two defined
// variants can only come from an unchecked conversion; unknownStatus
// decides what happens then (panic under the debug build tag, fail
// rendering otherwise).
func MarkFor(s content.Status) Mark {
	switch s {
	case content.StatusPass:
		return PassMark
	case content.StatusFail:
		return FailMark
	default:
		return unknownStatus(s)
	}
}
