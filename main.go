package main

import "github.com/Yates-Labs/groundqa/cmd"

func main() {
	cmd.Execute()
}
