// Command study runs one floater evaluation and prints the summary block.
// Without arguments it uses the built-in 24 MW 6+1 example; with -config it
// loads a JSON study configuration instead.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	floater "Floatex/internal/calc/floater"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON study configuration")
	asJSON := flag.Bool("json", false, "print the result bundle as JSON instead of text")
	flag.Parse()

	cfg := floater.ExampleConfig24MW()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("reading config: %v", err)
		}
		cfg = floater.Config{}
		if err := json.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("parsing config: %v", err)
		}
	}

	res, err := floater.Evaluate(cfg)
	if err != nil {
		log.Fatalf("evaluating study: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatalf("encoding result: %v", err)
		}
		return
	}

	printSummary(res)
}

func printSummary(res floater.Result) {
	fmt.Println("=== Floater summary ===")
	fmt.Printf("Displacement volume   : %8.1f m3\n", res.DisplacementM3)
	fmt.Printf("Displacement mass     : %8.1f t\n", res.DisplacedMassT)
	fmt.Printf("Waterplane area       : %8.1f m2\n", res.WaterplaneM2)
	fmt.Printf("zB (CoB)              : %8.2f m\n", res.ZBM)
	fmt.Printf("zG (CoG)              : %8.2f m\n", res.ZGM)
	fmt.Printf("BG                    : %8.2f m\n", res.BGM)
	fmt.Printf("BM (pitch)            : %8.2f m\n", res.BMM)
	fmt.Printf("GM (pitch)            : %8.2f m\n", res.GMM)
	fmt.Printf("C33 (heave stiff.)    : %8.3e N/m\n", res.C33NM)
	fmt.Printf("Cth (pitch stiff.)    : %8.3e Nm/rad\n", res.CPitchNmRad)
	fmt.Println()
	fmt.Printf("Heave period T33      : %6.2f s\n", res.HeavePeriodS)
	fmt.Printf("Pitch/Roll period Tth : %6.2f s\n", res.PitchPeriodS)
	fmt.Println("=======================")
}
