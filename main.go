package main

import (
	"github.com/rnacentral/rnacentral-go/cmd"
)

func main() {
	cmd.Execute()
}
