package main

import (
	"context"
	"fmt"
	"log"
	"time"

	ovc "github.com/PMeeske/ouroboros-foundation-sub005"
	"github.com/PMeeske/ouroboros-foundation-sub005/blobstore"
	"github.com/PMeeske/ouroboros-foundation-sub005/distance"
	"github.com/PMeeske/ouroboros-foundation-sub005/testutil"
)

func main() {
	seed := int64(4711)
	dim := 768
	size := 1000

	codec := ovc.New(
		ovc.WithQuantizationBits(8),
		ovc.WithEnergyThreshold(0.95),
	)

	rng := testutil.NewRNG(seed)
	vectors := rng.EmbeddingVectors(size, dim)

	fmt.Println("--- Preview ---")

	preview, err := codec.Preview(vectors[0])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(preview)
	fmt.Println()

	fmt.Println("--- Compress ---")
	fmt.Println("Dimension:", dim)
	fmt.Println("Size:", size)

	start := time.Now()

	store := blobstore.NewMemoryStore()
	events, err := codec.BatchCompressToStore(context.Background(), store,
		func(i int) string { return fmt.Sprintf("vec/%06d", i) }, vectors)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	fmt.Println(ovc.ComputeStats(events))
	fmt.Println()

	fmt.Println("--- Round trip ---")

	data, err := store.Get(context.Background(), "vec/000000")
	if err != nil {
		log.Fatal(err)
	}

	restored, err := codec.Decompress(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Cosine(original, restored): %.4f\n\n", distance.Cosine(vectors[0], restored))

	fmt.Println("--- Compressed-domain similarity ---")

	a, _, err := codec.CompressMethod(vectors[0], ovc.MethodDCT)
	if err != nil {
		log.Fatal(err)
	}
	b, _, err := codec.CompressMethod(vectors[1], ovc.MethodDCT)
	if err != nil {
		log.Fatal(err)
	}

	sim, err := codec.CompressedSimilarity(a, b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Compressed: %.4f\n", sim)
	fmt.Printf("Exact:      %.4f\n", distance.Cosine(vectors[0], vectors[1]))
}
