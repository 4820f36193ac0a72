// Command qrdecode locates and decodes the QR symbol in one or more image
// files.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/sync/errgroup"

	qrdecode "github.com/codemasher/go-qrdecode"

	// Register the QR reader.
	_ "github.com/codemasher/go-qrdecode/qrcode"
)

type scanResult struct {
	result *qrdecode.Result
	err    error
}

func main() {
	pure := flag.Bool("pure", false, "hint that the image is a clean barcode render with minimal border")
	charset := flag.String("charset", "", "force a character set for byte-mode segments (e.g. UTF-8, Shift_JIS)")
	verbose := flag.Bool("v", false, "print version and ECC level alongside the text")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qrdecode [flags] <image-file> [image-file...]\n\n")
		fmt.Fprintf(os.Stderr, "Detect and decode a QR code in image files (PNG, JPEG, GIF).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	opts := &qrdecode.Options{
		PureBarcode:  *pure,
		CharacterSet: *charset,
	}

	paths := flag.Args()
	results := make([]scanResult, len(paths))

	// Each Decode call builds its own Reader (see RegisterReader), so
	// scanning files concurrently needs no synchronization beyond each
	// goroutine owning its own result slot.
	g, ctx := errgroup.WithContext(context.Background())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			result, err := scanFile(ctx, path, opts)
			results[i] = scanResult{result: result, err: err}
			return nil
		})
	}
	_ = g.Wait()

	exitCode := 0
	for i, path := range paths {
		res := results[i]
		if res.err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, res.err)
			exitCode = 1
			continue
		}
		if flag.NArg() > 1 {
			fmt.Printf("%s: ", path)
		}
		if *verbose {
			fmt.Printf("%s\t(version %d, ecc %s)\n", res.result.Text, res.result.Version, res.result.ECCLevel)
		} else {
			fmt.Println(res.result.Text)
		}
	}
	os.Exit(exitCode)
}

func scanFile(ctx context.Context, path string, opts *qrdecode.Options) (*qrdecode.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	source := qrdecode.NewImageLuminanceSource(img)
	return qrdecode.Decode(source, opts)
}
