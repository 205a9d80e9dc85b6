package config

import (
	"fmt"

	"github.com/ludo-technologies/repopulse/internal/constants"
)

// GetConfigTemplate returns the documented configuration written by `repopulse init`
func GetConfigTemplate() string {
	def := DefaultConfig()
	return fmt.Sprintf(`# %[1]s configuration
#
# Values here are overridden by environment variables prefixed with %[2]s_,
# e.g. %[2]s_OUTPUT_FORMAT=json or %[2]s_GIT_TIMEOUT=30s.

output:
  # Report format: text, json, yaml
  format: %[3]s

git:
  # git executable used for the commit history check
  binary: %[4]s
  # Upper bound for the git log query; 0 disables the bound.
  # A timeout is reported like any other git failure (No Git Found).
  timeout: %[5]s

analysis:
  # Also exclude files matched by the repository's root .gitignore
  # when counting files for the size check.
  respect_gitignore: %[6]t

log:
  # Diagnostic log level on stderr: debug, info, warn, error
  level: %[7]s
`,
		constants.ToolName,
		constants.EnvVarPrefix,
		def.Output.Format,
		def.Git.Binary,
		def.Git.Timeout,
		def.Analysis.RespectGitignore,
		def.Log.Level,
	)
}
