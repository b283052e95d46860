package main

import (
	"log"

	"xiaoyuan-cli/api"
	"xiaoyuan-cli/auth"
	"xiaoyuan-cli/cmd"
	"xiaoyuan-cli/fs"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// inter-package dependency injection to avoid a circular import
	auth.SetApiClient(api.Client)

	// file logger with rotation; the terminal is reserved for term output
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.HomeLogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	})
}

func main() {
	cmd.Execute()
}
