package main

import (
	"flag"
	"log"

	"github.com/Samgoldwin/hormocare/config"
	"github.com/Samgoldwin/hormocare/routes"
	"github.com/Samgoldwin/hormocare/services"
	"github.com/Samgoldwin/hormocare/utils"
)

func main() {
	seedCSV := flag.String("seed-foods", "", "path to a food catalog CSV to load before serving")
	flag.Parse()

	config.InitDB()
	utils.InitS3()

	if *seedCSV != "" {
		n, err := services.NewFoodService(config.DB).SeedFromCSV(*seedCSV)
		if err != nil {
			log.Fatalf("food catalog seed failed: %v", err)
		}
		log.Printf("seeded %d food items from %s", n, *seedCSV)
	}

	r := routes.SetupRouter()
	r.Run(":8080")
}
