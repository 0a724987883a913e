package main

import (
	"fmt"

	"github.com/croixal/binsight/cmd/cmd"
	"github.com/croixal/binsight/internal/env"
)

func main() {
	PrintLogo()

	_ = cmd.Execute()
}

func PrintLogo() {
	fmt.Println(" _     _           _       _     _   ")
	fmt.Println("| |__ (_)_ __  ___(_) __ _| |__ | |_ ")
	fmt.Println("| '_ \\| | '_ \\/ __| |/ _` | '_ \\| __|")
	fmt.Println("| |_) | | | | \\__ \\ | (_| | | | | |_ ")
	fmt.Println("|_.__/|_|_| |_|___/_|\\__, |_| |_|\\__|")
	fmt.Println("                     |___/           ")
	fmt.Println()
	fmt.Println("Binary format inspection tool")
	fmt.Println()
	fmt.Printf("Version:   %s\n", env.Version)
	fmt.Printf("Commit:    %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println(" ")
}
