package main

import "github.com/pfrederiksen/calendar-scrape/internal/cli"

func main() {
	cli.Execute()
}
