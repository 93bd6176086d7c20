package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerates the ent client into gen/ent from the schemas in db/ent/schema.
// Run from the repository root.
func main() {
	cfg := &gen.Config{
		Target:  "gen/ent",
		Package: "github.com/hackybara/expense-tracker/gen/ent",
	}
	if err := entc.Generate("./db/ent/schema", cfg); err != nil {
		log.Fatalf("generating ent client: %v", err)
	}
}
