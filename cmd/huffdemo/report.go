package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	huffman "github.com/chronos-tachyon/huffmantree"
)

type reportOptions struct {
	tree   bool
	packed bool
}

// writeReport encodes text and prints one "symbol codeword" line per
// dictionary entry, then the bits, then the decoded text.  Nothing is
// written unless encoding, decoding, and packing all succeed.
func writeReport(w io.Writer, text string, opts reportOptions) error {
	result, err := huffman.EncodeString(text)
	if err != nil {
		return err
	}
	slog.Debug("encoded", "symbols", result.Count, "alphabet", result.Dictionary.Len(), "bits", result.Bits.Len(), "depth", result.Tree.Depth())

	decoded, err := huffman.DecodeString(result)
	if err != nil {
		return err
	}
	var packed []byte
	if opts.packed {
		if packed, err = result.Bits.Pack(); err != nil {
			return err
		}
	}

	for _, symbol := range result.Dictionary.Symbols() {
		hc, _ := result.Dictionary.Lookup(symbol)
		digits, _ := hc.MarshalText()
		fmt.Fprintf(w, "%s %s\n", string(symbol), digits)
	}

	digits, _ := result.Bits.MarshalText()
	fmt.Fprintf(w, "%s\n", digits)
	fmt.Fprintf(w, "%s\n", decoded)

	if opts.tree {
		fmt.Fprint(w, result.TreeString())
	}
	if opts.packed {
		fmt.Fprintf(w, "%d bits packed: %s\n", result.Bits.Len(), hex.EncodeToString(packed))
	}
	return nil
}

func checkRoundTrip(text string) error {
	result, err := huffman.EncodeString(text)
	if err != nil {
		return err
	}
	decoded, err := huffman.DecodeString(result)
	if err != nil {
		return err
	}
	if decoded != text {
		return fmt.Errorf("decoded %q", decoded)
	}
	slog.Info("round trip", "text", text, "bits", result.Bits.Len())
	return nil
}
