//go:build debug

package panel

import (
	"fmt"

	"github.com/jask/pospreview/internal/content"
)

func unknownStatus(s content.Status) Mark {
	panic(fmt.Sprintf("panel: unrecognized test status %d", uint8(s)))
}
