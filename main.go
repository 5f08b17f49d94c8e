package main

import (
	"fmt"
	"os"
	"overseer/cmd/overseer"
)

func main() {
	if err := overseer.Command.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
