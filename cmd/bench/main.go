package main

import "github.com/oliv6362/ecommerce-database-benchmark/internal/cmd"

func main() {
	cmd.Execute()
}
