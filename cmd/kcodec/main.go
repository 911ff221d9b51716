/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/rayokota/hentitydb-sub001/cmd/kcodec/cmd"

func main() {
	cmd.Execute()
}
