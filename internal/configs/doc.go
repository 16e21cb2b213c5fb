// Package configs handles environment loading and persisted user defaults.
//
// Configuration is resolved in priority order: explicit flags, exported
// environment variables (including values loaded from the nearest .env
// file), the saved user config, and finally the git remote of the working
// directory for repository targets.
package configs
