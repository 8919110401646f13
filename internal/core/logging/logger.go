package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component names. The running command and the open document are added per
// event by ContextHook, so components only name the subsystem.
const (
	CmpService  = "service"
	CmpWatcher  = "watcher"
	CmpNotify   = "notify"
	CmpMarkdown = "markdown"
)

// Component returns a child of the global logger tagged with cmp=name.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
