// Package aspect extracts aspect and opinion spans from tokenized text
// using per-token split scores from an ONNX scorer model.
//
// # Quick Start
//
//	ex, err := aspect.New("scorer.onnx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ex.Close()
//
//	spans, err := ex.Extract(ctx, sample)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, sp := range spans {
//	    fmt.Println(sp)
//	}
//
// Samples arrive pre-tokenized: the caller's tokenization pipeline supplies
// token IDs, an attention mask, the word-start mask, the content length,
// and the leading reserved-token offset. See Sample.
//
// # Decoding Without a Model
//
// The span subpackage decodes caller-supplied scores directly:
//
//	d := span.NewDecoder(span.DecoderConfig{Threshold: 0.5})
//	spans, err := d.Decode(scores, wordStarts, length, offset)
//
// # Thread Safety
//
// Extractor is safe for concurrent use. It manages an internal pool of ONNX
// sessions, configurable via WithPoolSize.
package aspect
