package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	"ritmo_backend/internals/seeds/demo"
)

// Run executes the seeders enabled via SEED_DEMO. Intended for local
// development and staging; no-op in production.
func Run(db *gorm.DB) {
	if os.Getenv("SEED_DEMO") != "true" {
		return
	}
	log.Println("🌱 SEED_DEMO=true, seeding demo data...")
	if err := demo.SeedDemoSchool(db); err != nil {
		log.Printf("❌ Demo seed failed: %v", err)
		return
	}
	log.Println("✅ Demo data seeded")
}
