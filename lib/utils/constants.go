package utils

// BuildHash is populated at build-time of the binary via the ldflags
// parameter and reported by `sc version`.
var BuildHash string

func init() {
	if BuildHash == "" {
		BuildHash = "dev"
	}
}
