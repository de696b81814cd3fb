package render

import (
	"syscall/js"
)

type Cursor string

const (
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
)

func SetCursor(elem js.Value, c Cursor) {
	elem.Get("style").Set("cursor", string(c))
}
