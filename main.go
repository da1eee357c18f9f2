package main

import "cmdb/cmd"

func main() {
	cmd.Execute()
}
