package main

import "github.com/crownpanel/crownpanel/cmd/shop/commands"

func main() {
	commands.Execute()
}
