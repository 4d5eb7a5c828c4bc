package main

import (
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/cmd"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	cmd.SetBuildInfo(version, commit, date)
	cmd.Execute()
}
