package main

import "github.com/crownpanel/crownpanel/cmd/admin/commands"

func main() {
	commands.Execute()
}
