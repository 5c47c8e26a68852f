package version

// Set at build time with -ldflags
var (
	GitSource   string
	GitBranch   string
	GitTag      string
	GitHash     string
	GoBuildTime string
)
