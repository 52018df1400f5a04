// +build ignore

// Seeds the roads and traffic_samples tables with synthetic data for manual
// testing. Run directly:
//
//	go run scripts/seed_samples.go -dsn "host=localhost port=5432 user=postgres password=postgres dbname=traffic sslmode=disable"
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

type seedRoad struct {
	id            string
	name          string
	roadType      string
	lengthKm      float64
	lanes         int
	intersections int
	baseLoad      float64
}

func main() {
	dsn := flag.String("dsn", "host=localhost port=5432 user=postgres password=postgres dbname=traffic sslmode=disable", "PostgreSQL DSN")
	areaID := flag.String("area", "indiranagar", "area id to seed")
	days := flag.Int("days", 30, "days of samples to generate")
	flag.Parse()

	db, err := sqlx.Connect("pgx", *dsn)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	roads := []seedRoad{
		{"rd-100", "100 Feet Road", "primary", 3.2, 2, 6, 0.85},
		{"rd-cmh", "CMH Road", "secondary", 2.1, 2, 4, 0.72},
		{"rd-old-airport", "Old Airport Road", "highway", 7.8, 4, 9, 0.65},
		{"rd-12th-main", "12th Main Road", "tertiary", 1.4, 2, 3, 0.40},
		{"rd-binnamangala", "Binnamangala 1st Stage", "residential", 0.9, 1, 2, 0.20},
	}

	for _, r := range roads {
		_, err := db.Exec(`
			INSERT INTO roads (id, area_id, name, road_type, length_km, lanes, intersection_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING`,
			r.id, *areaID, r.name, r.roadType, r.lengthKm, r.lanes, r.intersections,
		)
		if err != nil {
			log.Fatalf("Failed to insert road %s: %v", r.id, err)
		}
	}

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC().Truncate(24 * time.Hour)
	total := 0

	for _, r := range roads {
		for d := 0; d < *days; d++ {
			day := now.AddDate(0, 0, -d)
			for _, hour := range []int{8, 9, 10, 13, 17, 18, 19, 21} {
				// Morning and evening peaks ride on top of the base load.
				load := r.baseLoad
				if hour == 9 || hour == 18 || hour == 19 {
					load += 0.15
				}
				load += (rng.Float64() - 0.5) * 0.1
				if load < 0 {
					load = 0
				}
				if load > 1 {
					load = 1
				}

				freeFlow := 60.0
				speed := freeFlow * (1 - load)

				_, err := db.Exec(`
					INSERT INTO traffic_samples (road_id, recorded_at, speed_kmph, free_flow_kmph, vehicle_count)
					VALUES ($1, $2, $3, $4, $5)`,
					r.id, day.Add(time.Duration(hour)*time.Hour), speed, freeFlow, 50+rng.Intn(400),
				)
				if err != nil {
					log.Fatalf("Failed to insert sample for %s: %v", r.id, err)
				}
				total++
			}
		}
	}

	fmt.Printf("Seeded %d roads and %d samples into area %q\n", len(roads), total, *areaID)
}
