package main

import "github.com/edupulse/channel-insights/cmd"

func main() {
	cmd.Execute()
}
