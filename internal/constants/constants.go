package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "repopulse"

	// ConfigFileName is the default config file name written by init
	ConfigFileName = ".repopulse.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "REPOPULSE"
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Canonical hygiene file names written by fix mode
const (
	LicenseFileName   = "LICENSE"
	GitignoreFileName = ".gitignore"
)

// ReadmeFileNames are the documentation files recognized in the repository root.
var ReadmeFileNames = []string{"README.md", "README", "readme.md"}

// LicenseFileNames are the license files recognized in the repository root.
var LicenseFileNames = []string{"LICENSE", "LICENSE.txt", "license.md"}

// GitignoreFileNames are the ignore files recognized in the repository root.
var GitignoreFileNames = []string{".gitignore"}

// ExcludedSegments are path segments that disqualify a file from the size count.
// Any segment starting with "." is excluded as well.
var ExcludedSegments = []string{
	// Version control and CI
	".git",
	".github",
	// Python environments and caches
	".venv",
	"venv",
	"__pycache__",
	".pytest_cache",
	// Dependencies
	"node_modules",
	".env",
	// Editors
	".idea",
	".vscode",
	// Build outputs
	"dist",
	"build",
}

// Repository size thresholds (inclusive bounds of the Lean band)
const (
	MinLeanFileCount = 5
	MaxLeanFileCount = 100
)

// Commit history settings
const (
	// RecentCommitLimit is how many commit subjects are requested from git
	RecentCommitLimit = 5

	// MinProfessionalCommits is the number of subjects needed for a Professional history
	MinProfessionalCommits = 3
)
