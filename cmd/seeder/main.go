// Command seeder creates a demo account with a partially filled sample
// inspection, useful for local development and UI work against realistic
// data.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/autovista/inspect-api/internal/catalog"
	"github.com/autovista/inspect-api/internal/config"
	"github.com/autovista/inspect-api/internal/database"
	"github.com/autovista/inspect-api/internal/inspection"
)

// sampleEvaluation is one pre-filled checklist entry for the demo inspection
type sampleEvaluation struct {
	category   string
	item       string
	score      int
	repairCost float64
	notes      string
}

var sampleEvaluations = []sampleEvaluation{
	{"Exterior & Body", "Paint condition", 7, 0, "light swirl marks, original paint"},
	{"Exterior & Body", "Windshield", 4, 180, "stone chip in driver's view, needs resin repair"},
	{"Engine", "Engine oil level", 9, 0, ""},
	{"Engine", "Oil leaks", 5, 350, "seepage at valve cover gasket"},
	{"Engine", "Exhaust smoke", 8, 0, ""},
	{"Brakes", "Brake pads", 3, 220, "front pads below 3mm"},
	{"Brakes", "Brake fluid", 0, 0, "fluid dark, flush recommended at next service"},
	{"Tires & Wheels", "Front tire tread", 6, 0, ""},
	{"Interior", "Seats & upholstery", 8, 0, ""},
	{"Documentation", "Service history", 0, 0, "stamps missing between 60k and 80k"},
}

var sampleVehicle = map[string]string{
	"brand":       "Toyota",
	"model":       "Prado",
	"plate":       "ABC123",
	"year":        "2018",
	"mileage":     "84500",
	"price":       "98500000",
	"seller_name": "Demo Seller",
	"location":    "Medellin",
}

func main() {
	// Command line flags
	email := flag.String("email", "demo@inspectapi.local", "Email for the demo account")
	password := flag.String("password", "demo-password", "Password for the demo account")
	dryRun := flag.Bool("dry-run", false, "Preview changes without writing to database")
	flag.Parse()

	// Load .env
	godotenv.Load()

	// Load config
	cfg := config.Load()
	if !cfg.IsDevelopment() && !*dryRun {
		log.Fatalf("Refusing to seed demo data in %s environment", cfg.Environment)
	}

	// Build the sample state before touching the database so a bad sample
	// fails fast even on a dry run
	state := inspection.Initialize()
	for field, value := range sampleVehicle {
		state = inspection.UpdateVehicleInfo(state, field, value)
	}
	for _, s := range sampleEvaluations {
		var err error
		state, err = inspection.EvaluateItem(state, s.category, s.item, s.score, s.repairCost, s.notes)
		if err != nil {
			log.Fatalf("Sample evaluation %q/%q does not match the catalog: %v", s.category, s.item, err)
		}
	}

	metrics := inspection.ComputeMetrics(state)
	log.Printf("Sample inspection: %d/%d items evaluated, average score %.1f, repair estimate %.0f",
		metrics.Global.EvaluatedItems, catalog.TotalItemCount(),
		metrics.Global.AverageScore, metrics.Global.TotalRepairCost)

	if *dryRun {
		log.Println("Dry run, not writing to database")
		return
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	// Reuse the demo user if a previous run created it
	user, err := db.GetUserByEmail(ctx, *email)
	if err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		username := "demo"
		user, err = db.CreateUser(ctx, *email, string(hashed), &username)
		if err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Demo user created: %s", *email)
	} else {
		log.Printf("Demo user already exists: %s", *email)
	}

	rec, err := db.CreateInspection(ctx, user.ID, state)
	if err != nil {
		log.Fatalf("Failed to create demo inspection: %v", err)
	}

	log.Printf("Demo inspection created: %s (%s %s, plate %s)",
		rec.ID, rec.State.VehicleInfo.Brand, rec.State.VehicleInfo.Model, rec.State.VehicleInfo.Plate)
}
