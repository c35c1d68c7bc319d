// Command agetest renders a tire photo at a series of timeline positions
// and writes the aged frames to disk. Useful for eyeballing the
// deterioration pipeline without running the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"treadscope/internal/age"
	"treadscope/internal/imaging"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	in := flag.String("in", "", "Input photo (JPEG or PNG)")
	outDir := flag.String("out", "aged", "Output directory for rendered frames")
	steps := flag.Int("steps", 5, "Number of timeline positions to render (t=0..1)")
	uneven := flag.Bool("uneven", false, "Boost shoulder wear")
	seed := flag.Int64("seed", age.DefaultSeed, "Crack generator seed")
	maxDim := flag.Int("maxdim", imaging.DefaultMaxDim, "Longest side after downscale")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *steps < 2 {
		log.Fatal("need at least 2 steps")
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("opening %s: %v", *in, err)
	}
	buf, err := imaging.Decode(f, *maxDim)
	f.Close()
	if err != nil {
		log.Fatalf("decoding %s: %v", *in, err)
	}
	log.Printf("Loaded %s (%dx%d after downscale)", *in, buf.W, buf.H)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("creating %s: %v", *outDir, err)
	}

	for i := 0; i < *steps; i++ {
		t := float64(i) / float64(*steps-1)
		frame := age.Render(buf, age.Options{T: t, UnevenWear: *uneven, Seed: *seed})

		name := filepath.Join(*outDir, fmt.Sprintf("aged_t%03d.png", int(t*100)))
		out, err := os.Create(name)
		if err != nil {
			log.Fatalf("creating %s: %v", name, err)
		}
		if err := imaging.EncodePNG(out, frame); err != nil {
			out.Close()
			log.Fatalf("encoding %s: %v", name, err)
		}
		out.Close()
		log.Printf("Wrote %s (t=%.2f)", name, t)
	}
}
