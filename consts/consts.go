package consts

import "strings"

// devmode is set at link time to enable development behavior
var devmode string = "false"

func IsDevMode() bool {
	return strings.ToLower(devmode) == "true"
}

type SortOrder bool

const (
	Ascending  = SortOrder(false)
	Descending = SortOrder(true)
)
