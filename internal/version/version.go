package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/pst966/git/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/pst966/git/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/pst966/git/internal/version.Date={{.Date}}
)
