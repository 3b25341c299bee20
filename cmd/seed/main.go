// Command main runs the database seeder for NNRG Connect.
package main

import (
	"flag"
	"log"

	"nnrgconnect/internal/config"
	"nnrgconnect/internal/database"
	"nnrgconnect/internal/seed"
)

func main() {
	numStudents := flag.Int("students", 40, "Number of approved students to create")
	numPending := flag.Int("pending", 8, "Number of pending signups to create")
	numConnections := flag.Int("connections", 60, "Number of connections to create")
	adminEmail := flag.String("admin", "admin@nnrg.edu.in", "Admin account email (empty to skip)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeder := seed.NewSeeder(db)
	if _, err := seeder.Run(seed.Options{
		NumStudents:    *numStudents,
		NumPending:     *numPending,
		NumConnections: *numConnections,
		AdminEmail:     *adminEmail,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
