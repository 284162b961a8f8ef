package main

import (
	"fmt"
	"log"

	"github.com/Maxme77/School-finance-management-system/app/config"
)

// Verifies that the five ledger tables exist and prints their column layout
// and row counts. Useful after pointing the service at a new database.
func main() {
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	tables := []string{"students", "staff", "payments", "expenses", "salaries"}

	for _, table := range tables {
		fmt.Printf("\n=== %s ===\n", table)

		rows, err := db.Query(`
			SELECT column_name, data_type, is_nullable
			FROM information_schema.columns
			WHERE table_name = $1
			ORDER BY ordinal_position`, table)
		if err != nil {
			log.Fatalf("Failed to inspect %s: %v", table, err)
		}

		found := false
		for rows.Next() {
			var name, dataType, nullable string
			if err := rows.Scan(&name, &dataType, &nullable); err != nil {
				rows.Close()
				log.Fatalf("Scan failed: %v", err)
			}
			found = true
			fmt.Printf("  %-20s %-30s nullable=%s\n", name, dataType, nullable)
		}
		rows.Close()

		if !found {
			fmt.Println("  TABLE MISSING")
			continue
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			log.Fatalf("Failed to count %s: %v", table, err)
		}
		fmt.Printf("  rows: %d\n", count)
	}

	fmt.Println("\nInspection complete.")
}
