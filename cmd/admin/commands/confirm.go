package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/crownpanel/crownpanel/internal/shared"
	"github.com/crownpanel/crownpanel/internal/view"
)

type stdinConfirmer struct {
	in *bufio.Reader
}

func (c stdinConfirmer) Confirm(title, message string) bool {
	view.Title(title)
	fmt.Println(message)
	fmt.Print("Proceed? [y/N] ")
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

func newConfirmer(assumeYes bool) shared.Confirmer {
	if assumeYes {
		return shared.AlwaysConfirm
	}
	return stdinConfirmer{in: bufio.NewReader(os.Stdin)}
}
