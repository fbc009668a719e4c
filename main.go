package main

import (
	"os"

	"github.com/llehouerou/titleformat/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
