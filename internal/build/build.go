package build

var (
	// ShortVersion is the released version of the program
	ShortVersion = "0.1.0"

	// LongVersion is overridden at build time with
	// -ldflags "-X github.com/bornholm/workers/internal/build.LongVersion=..."
	LongVersion = ShortVersion
)
