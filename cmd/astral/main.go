package main

import "os"

func main() {
	rootCmd.AddCommand(briefCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
