package main

import (
	"os"

	"github.com/code1iners/ce1pers/pkg/oauth2"
)

func main() {
	cmd := newRootCmd(oauth2.DefaultRegistry(), oauth2.BrowserNavigator{})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
