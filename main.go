/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/yutaka-ini/taskplan-cli/cmd"

func main() {
	cmd.Execute()
}
