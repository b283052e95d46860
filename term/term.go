package term

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var CmdDesc = map[string][2]string{
	"sign-in":        {"", "sign in to your account"},
	"register":       {"", "create a new account"},
	"sign-out":       {"", "sign out and clear the local session"},
	"whoami":         {"wh", "show the signed-in user"},
	"posts":          {"ps", "browse posts, optionally by category"},
	"search":         {"se", "search posts by free text"},
	"show":           {"sh", "show a single post with its evaluation stats"},
	"new":            {"", "create a post with optional images"},
	"evaluate":       {"ev", "like, neutral, or dislike a post"},
	"verify":         {"", "submit student verification documents"},
	"reset-password": {"", "request or complete a password reset"},
}

func PrintCmds(prefix string, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
		}
		styled := color.New(color.Bold, color.FgHiWhite, color.BgCyan).Sprintf(" xiaoyuan %s ", cmd)

		fmt.Printf("%s%s 👉 %s\n", prefix, styled, desc)
	}
}

func ClearCurrentLine() {
	fmt.Print("\033[2K")
}
