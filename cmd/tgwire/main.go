// Command tgwire decodes Telegram Bot API payloads offline, checks fixture
// suites against the expected variants, and smoke-tests a bot token.
package main

import (
	"os"

	"github.com/prilive-com/tgwire/cmd/tgwire/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
