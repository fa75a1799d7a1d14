package config

import "os"

// Config holds everything the server reads from the environment. It is built
// once in main and passed down explicitly; nothing else touches os.Getenv.
type Config struct {
	Addr string

	// GitHubRepo is the "owner/name" of the repository holding the data files.
	GitHubRepo  string
	GitHubToken string
	// DataBranch isolates frequent data commits from the publishing branch.
	DataBranch string

	AdminPassword string
	// AdminPasswordHash, when set, is a bcrypt hash checked instead of the
	// plain AdminPassword comparison.
	AdminPasswordHash string
	JWTSecret         string

	AllowedOrigin string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Addr:              getEnv("WEDDING_ADDR", ":8080"),
		GitHubRepo:        getEnv("GITHUB_REPO", "igroves001/igroves001.github.io"),
		GitHubToken:       os.Getenv("GITHUB_TOKEN"),
		DataBranch:        getEnv("DATA_BRANCH", "data"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getEnv("ADMIN_JWT_SECRET", "wedding-dev-secret"),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
