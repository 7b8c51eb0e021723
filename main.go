package main

import "github.com/kazuma-desu/lf/cmd"

func main() {
	cmd.Execute()
}
