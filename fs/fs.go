package fs

import (
	"os"
	"path/filepath"

	"xiaoyuan-cli/term"
)

var HomeDir string
var HomeConfigDir string
var HomeSessionPath string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if os.Getenv("XIAOYUAN_ENV") == "development" {
		HomeConfigDir = filepath.Join(home, ".xiaoyuan-dev")
	} else {
		HomeConfigDir = filepath.Join(home, ".xiaoyuan")
	}

	err = os.MkdirAll(HomeConfigDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit(err.Error())
	}

	HomeSessionPath = filepath.Join(HomeConfigDir, "session.json")
	HomeLogPath = filepath.Join(HomeConfigDir, "xiaoyuan.log")
}
