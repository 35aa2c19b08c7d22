package main

import "github.com/nandemo-ya/awscmdlet/internal/cli"

func main() {
	cli.Execute()
}
