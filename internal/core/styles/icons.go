package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconClipboard = "\uf0ea" // nf-fa-paste
	IconTab       = "\uf02e" // nf-fa-bookmark
	IconCell      = "\uf15c" // nf-fa-file_text
	IconDirty     = "●"
)

// Notification icons
var (
	IconNotifyInfo    = "\uf05a" // nf-fa-info_circle
	IconNotifyWarning = "\uf071" // nf-fa-warning
	IconNotifyError   = "\uf057" // nf-fa-times_circle
)
