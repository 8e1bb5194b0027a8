package capstyle

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Terminal formatting from attribute names"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgVersionFormat = "capstyle %s (commit %s, built %s)\n"
	MsgErrNoCommand  = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)

//go:embed topics/*.md
var helpTopics embed.FS
