package main

import "github.com/bgraf/figcap/cmd"

func main() {
	cmd.Execute()
}
