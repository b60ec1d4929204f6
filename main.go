package main

import "github.com/josephlewis42/structsh/cmd"

func main() {
	cmd.Execute()
}
