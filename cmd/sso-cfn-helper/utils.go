package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Shared Globals
var (
	configPath string
	profile    string
)

// Color definitions for output
var (
	headerColor = color.New(color.Bold, color.FgCyan)
	idColor     = color.New(color.Bold, color.FgWhite)
)

func promptUser(question string, defaultVal string) bool {
	fmt.Print(question)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		response := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if response == "" {
			response = strings.ToLower(defaultVal)
		}
		return response == "y" || response == "yes"
	}
	return false
}

// printLookupLines prints name/id pairs with the ids aligned in a column.
func printLookupLines(lines [][2]string) {
	maxLen := 0
	for _, line := range lines {
		if len(line[0]) > maxLen {
			maxLen = len(line[0])
		}
	}
	for _, line := range lines {
		fmt.Printf("%-*s %s\n", maxLen+1, line[0]+":", idColor.Sprint(line[1]))
	}
}
