package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/abdushkur/dev-ops/internal/utils"
)

type UserSettings struct {
	UserConfigsPath string
	Username        string
}

var UserDevopsSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	username, err := utils.GetUsername()
	if err != nil {
		log.Fatalf("error getting username: %s", err)
	}

	// This is independent of what repo you are in, so it is ok to init here
	UserDevopsSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "devops"),
		Username:        username,
	}
}
