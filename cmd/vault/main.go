package main

import (
	"os"

	"secretvault/internal/cli"
)

// version is the application version reported by "vault --version".
const version = "v1.0.0"

func main() {
	os.Exit(cli.Execute(version))
}
