package commands

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/colonyops/multipaste/internal/app"
	"github.com/colonyops/multipaste/internal/clipboard"
	"github.com/colonyops/multipaste/internal/core/logging"
	"github.com/colonyops/multipaste/internal/store/jsonfile"
)

// newService builds an app.Service from the loaded config.
func newService(flags *Flags) *app.Service {
	cfg := flags.Config
	svc := app.NewService(
		jsonfile.NewDocumentStore(),
		clipboard.New(cfg.Clipboard),
		cfg.Author,
		logging.Component(logging.CmpService),
	)
	svc.SetRecent(recentStore(flags))
	return svc
}

func recentStore(flags *Flags) *jsonfile.RecentStore {
	return jsonfile.NewRecentStore(flags.Config.RecentFile())
}

// documentArg resolves the first positional argument to a document path.
func documentArg(flags *Flags, arg string) (string, error) {
	if strings.TrimSpace(arg) == "" {
		return "", fmt.Errorf("document argument is required")
	}
	return flags.Config.DocumentPath(arg), nil
}

// suggest returns the candidate closest to name, or "" when none is close
// enough to be a plausible typo.
func suggest(name string, candidates []string) string {
	target := strings.ToLower(name)
	limit := max(2, len([]rune(target))/3)

	best, bestDist := "", limit+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(target, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// notFound formats a lookup failure with an optional did-you-mean hint.
func notFound(kind, name string, candidates []string) error {
	if s := suggest(name, candidates); s != "" {
		return fmt.Errorf("%s %q not found, did you mean %q?", kind, name, s)
	}
	return fmt.Errorf("%s %q not found", kind, name)
}
