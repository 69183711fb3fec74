package main

import (
	"log"
	"os"

	"smart-stock-insider/app"
)

func main() {
	logger := log.New(os.Stderr, "[StockInsider] ", log.LstdFlags|log.Lshortfile)
	logger.Printf("[Main] Starting 智股通 (Smart Stock Insider)")

	if err := app.Run(); err != nil {
		logger.Printf("[Main] app.Run() returned error: %v", err)
		panic(err)
	}
}
